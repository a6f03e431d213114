package config

import (
	"time"
)

type OAuthConfig interface {
	GetProviderDomain() string
	GetClientID() string
	GetCallbackPath() string
	GetScopes() []string
	GetExchangeTimeout() time.Duration
}

type OAuth struct {
	// ProviderDomain is the hosted identity provider domain, without scheme.
	ProviderDomain  string        `env:"AUTH_PROVIDER_DOMAIN" envDefault:"codelearn.auth.us-east-1.amazoncognito.com" validate:"required,hostname"`
	ClientID        string        `env:"AUTH_CLIENT_ID" envDefault:"codelearn-web" validate:"required"`
	CallbackPath    string        `env:"AUTH_CALLBACK_PATH" envDefault:"/callback" validate:"required,startswith=/"`
	Scopes          []string      `env:"AUTH_SCOPES" envDefault:"openid,email,profile" envSeparator:"," validate:"required,min=1,dive,required"`
	ExchangeTimeout time.Duration `env:"AUTH_EXCHANGE_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

var _ OAuthConfig = OAuth{}

func (o OAuth) GetProviderDomain() string {
	return o.ProviderDomain
}

func (o OAuth) GetClientID() string {
	return o.ClientID
}

func (o OAuth) GetCallbackPath() string {
	return o.CallbackPath
}

func (o OAuth) GetScopes() []string {
	return o.Scopes
}

func (o OAuth) GetExchangeTimeout() time.Duration {
	return o.ExchangeTimeout
}
