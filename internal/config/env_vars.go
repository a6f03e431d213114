package config

import (
	"fmt"
	"strings"
)

type EnvVars struct {
	Port    string `env:"PORT" envDefault:"8080" validate:"required"`
	AppName string `env:"APP_NAME" envDefault:"CodeLearn"`
	Env     string `env:"ENV" envDefault:"DEV"`

	// BaseURL is the public origin of the site, e.g. "https://codelearn.example.com".
	// It is the post-logout target and the prefix of the OAuth redirect URI.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	if strings.HasPrefix(e.Port, ":") {
		return e.Port
	}
	return fmt.Sprintf(":%s", e.Port)
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	if e.Env == "" {
		return "DEV"
	}
	return e.Env
}

func (e EnvVars) GetBaseURL() string {
	return strings.TrimSuffix(e.BaseURL, "/")
}
