package oauth2_test

import (
	"net/url"
	"testing"

	"github.com/jrsteele09/codelearn-landing/oauth2"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeURL(t *testing.T) {
	target := oauth2.AuthorizeURL(oauth2.AuthorizeRequest{
		ProviderDomain: "auth.x.test",
		ClientID:       "abc123",
		RedirectURI:    "https://x.test/callback.html",
		Scopes:         []string{"openid", "email", "profile"},
		State:          "deadbeef",
	})

	require.Equal(t,
		"https://auth.x.test/oauth2/authorize?response_type=code&client_id=abc123"+
			"&redirect_uri=https%3A%2F%2Fx.test%2Fcallback.html&scope=openid+email+profile&state=deadbeef",
		target)

	parsed, err := url.Parse(target)
	require.NoError(t, err)
	require.Equal(t, "openid email profile", parsed.Query().Get("scope"))
}

func TestAuthorizeURL_EscapesValues(t *testing.T) {
	target := oauth2.AuthorizeURL(oauth2.AuthorizeRequest{
		ProviderDomain: "auth.x.test",
		ClientID:       "a&b=c",
		RedirectURI:    "https://x.test/cb?next=/dashboard",
		Scopes:         []string{"openid"},
		State:          "s",
	})

	parsed, err := url.Parse(target)
	require.NoError(t, err)
	query := parsed.Query()
	require.Equal(t, "a&b=c", query.Get("client_id"))
	require.Equal(t, "https://x.test/cb?next=/dashboard", query.Get("redirect_uri"))
	require.Equal(t, "code", query.Get("response_type"))
}

func TestLogoutURL(t *testing.T) {
	require.Equal(t,
		"https://auth.x.test/logout?client_id=abc123&logout_uri=https%3A%2F%2Fx.test%2F",
		oauth2.LogoutURL("auth.x.test", "abc123", "https://x.test/"))
}

func TestEndpointURLs(t *testing.T) {
	require.Equal(t, "https://auth.x.test/oauth2/token", oauth2.TokenURL("auth.x.test"))
	require.Equal(t, "https://auth.x.test/oauth2/authorize", oauth2.AuthURL("auth.x.test"))
	require.Equal(t, "https://auth.x.test/oauth2/userInfo", oauth2.UserInfoURL("auth.x.test"))
}
