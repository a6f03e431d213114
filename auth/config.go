package auth

import (
	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/codelearn-landing/internal/errors"
)

// Config holds the fixed parameters of the provider login flow.
type Config struct {
	// ProviderDomain is the hosted identity provider, e.g. "codelearn.auth.us-east-1.amazoncognito.com".
	ProviderDomain string `validate:"required,hostname"`
	ClientID       string `validate:"required"`
	// RedirectURI is where the provider sends the authorization code.
	RedirectURI string `validate:"required,url"`
	// LogoutURI is where the provider returns the user agent after logout.
	LogoutURI string   `validate:"required,url"`
	Scopes    []string `validate:"required,min=1,dive,required"`
}

var configValidator = validator.New()

// Validate checks that every field required to build the redirects is present.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "%s", err.Error())
	}
	return nil
}
