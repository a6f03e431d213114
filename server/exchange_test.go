package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jrsteele09/codelearn-landing/auth"
	"github.com/jrsteele09/codelearn-landing/internal/errors"
	"github.com/jrsteele09/codelearn-landing/internal/utils"
	"github.com/jrsteele09/codelearn-landing/server"
	"github.com/stretchr/testify/require"
)

// rewriteTransport sends every request to target, keeping the path
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

func exchangeAuthConfig() auth.Config {
	return auth.Config{
		ProviderDomain: "auth.x.test",
		ClientID:       "abc123",
		RedirectURI:    "https://x.test/callback",
		LogoutURI:      "https://x.test",
		Scopes:         []string{"openid"},
	}
}

func newTokenEndpoint(t *testing.T, handler http.HandlerFunc) *http.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	target, err := url.Parse(ts.URL)
	require.NoError(t, err)
	return &http.Client{Transport: rewriteTransport{target: target}}
}

func TestProviderExchanger_Exchange(t *testing.T) {
	client := newTokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		require.Equal(t, "the-code", r.PostForm.Get("code"))
		require.Equal(t, "abc123", r.PostForm.Get("client_id"))
		require.Equal(t, "https://x.test/callback", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-1",
			"id_token":     "h.p.s",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})

	exchanger := server.NewProviderExchanger(context.Background(), exchangeAuthConfig(), time.Second, client)
	tokens, err := exchanger.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	require.Equal(t, "access-1", utils.Value(tokens.AccessToken))
	require.Equal(t, "h.p.s", utils.Value(tokens.IdToken))
	require.Equal(t, "Bearer", tokens.TokenType)
	require.InDelta(t, 3600, tokens.ExpiresIn, 2)
}

func TestProviderExchanger_Failures(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		exchanger := server.NewProviderExchanger(context.Background(), exchangeAuthConfig(), time.Second, nil)
		_, err := exchanger.Exchange(context.Background(), "")
		require.ErrorIs(t, err, errors.ErrMissingAuthCode)
	})

	t.Run("provider rejects code", func(t *testing.T) {
		client := newTokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		})
		exchanger := server.NewProviderExchanger(context.Background(), exchangeAuthConfig(), time.Second, client)
		_, err := exchanger.Exchange(context.Background(), "stale")
		require.ErrorIs(t, err, errors.ErrExchangeFailed)
	})

	t.Run("no id token", func(t *testing.T) {
		client := newTokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"a","token_type":"Bearer","expires_in":60}`))
		})
		exchanger := server.NewProviderExchanger(context.Background(), exchangeAuthConfig(), time.Second, client)
		_, err := exchanger.Exchange(context.Background(), "c")
		require.ErrorIs(t, err, errors.ErrMissingIDToken)
	})
}
