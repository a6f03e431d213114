package server

import (
	"context"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/codelearn-landing/auth"
	"github.com/jrsteele09/codelearn-landing/internal/errors"
	"github.com/jrsteele09/codelearn-landing/internal/utils"
	"github.com/jrsteele09/codelearn-landing/oauth2"
	xoauth2 "golang.org/x/oauth2"
)

// CodeExchanger trades an authorization code for the provider's tokens.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (oauth2.TokenResponse, error)
}

// ProviderExchanger exchanges codes at the hosted provider's token endpoint.
// The returned ID token is passed through as is, it is not verified.
type ProviderExchanger struct {
	oauth2Config *xoauth2.Config
	timeout      time.Duration
	client       *http.Client
}

// NewProviderExchanger builds an exchanger for a public client of the provider.
// The provider endpoints are fixed by its domain, so no discovery request is made.
func NewProviderExchanger(ctx context.Context, config auth.Config, timeout time.Duration, client *http.Client) *ProviderExchanger {
	provider := (&oidc.ProviderConfig{
		IssuerURL:   "https://" + config.ProviderDomain,
		AuthURL:     oauth2.AuthURL(config.ProviderDomain),
		TokenURL:    oauth2.TokenURL(config.ProviderDomain),
		UserInfoURL: oauth2.UserInfoURL(config.ProviderDomain),
	}).NewProvider(ctx)

	endpoint := provider.Endpoint()
	endpoint.AuthStyle = xoauth2.AuthStyleInParams // public client, no secret

	if client == nil {
		client = http.DefaultClient
	}

	return &ProviderExchanger{
		oauth2Config: &xoauth2.Config{
			ClientID:    config.ClientID,
			Endpoint:    endpoint,
			RedirectURL: config.RedirectURI,
			Scopes:      config.Scopes,
		},
		timeout: timeout,
		client:  client,
	}
}

func (e *ProviderExchanger) Exchange(ctx context.Context, code string) (oauth2.TokenResponse, error) {
	if code == "" {
		return oauth2.TokenResponse{}, errors.ErrMissingAuthCode
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	ctx = context.WithValue(ctx, xoauth2.HTTPClient, e.client)

	tok, err := e.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return oauth2.TokenResponse{}, errors.Join(errors.ErrExchangeFailed, err)
	}

	idToken, _ := tok.Extra("id_token").(string)
	if idToken == "" {
		return oauth2.TokenResponse{}, errors.ErrMissingIDToken
	}

	expiresIn := tok.ExpiresIn
	if raw, ok := tok.Extra("expires_in").(float64); ok && expiresIn == 0 {
		expiresIn = int64(raw)
	}
	if expiresIn == 0 && !tok.Expiry.IsZero() {
		expiresIn = int64(time.Until(tok.Expiry).Seconds())
	}

	return oauth2.TokenResponse{
		AccessToken: utils.Ptr(tok.AccessToken),
		IdToken:     utils.Ptr(idToken),
		TokenType:   tok.TokenType,
		ExpiresIn:   expiresIn,
	}, nil
}
