package oauth2

import (
	"fmt"
	"net/url"
	"strings"
)

// AuthorizeRequest holds the fixed parameters of an authorization request.
type AuthorizeRequest struct {
	ProviderDomain string
	ClientID       string
	RedirectURI    string
	Scopes         []string
	State          string
}

// AuthorizeURL builds the provider authorize redirect. The parameters are
// emitted in a fixed order: response_type, client_id, redirect_uri, scope, state.
func AuthorizeURL(req AuthorizeRequest) string {
	query := orderedQuery{
		{ParamResponseType, string(CodeResponseType)},
		{ParamClientID, req.ClientID},
		{ParamRedirectURI, req.RedirectURI},
		{ParamScope, strings.Join(req.Scopes, " ")},
		{ParamState, req.State},
	}
	return fmt.Sprintf("https://%s%s?%s", req.ProviderDomain, AuthorizePath, query.Encode())
}

// LogoutURL builds the provider logout redirect.
func LogoutURL(providerDomain, clientID, logoutURI string) string {
	query := orderedQuery{
		{ParamClientID, clientID},
		{ParamLogoutURI, logoutURI},
	}
	return fmt.Sprintf("https://%s%s?%s", providerDomain, LogoutPath, query.Encode())
}

// TokenURL returns the provider token endpoint.
func TokenURL(providerDomain string) string {
	return fmt.Sprintf("https://%s%s", providerDomain, TokenPath)
}

// AuthURL returns the provider authorize endpoint without parameters.
func AuthURL(providerDomain string) string {
	return fmt.Sprintf("https://%s%s", providerDomain, AuthorizePath)
}

// UserInfoURL returns the provider userinfo endpoint.
func UserInfoURL(providerDomain string) string {
	return fmt.Sprintf("https://%s%s", providerDomain, UserInfoPath)
}

// orderedQuery is a form-encoded query that keeps insertion order, unlike url.Values.
type orderedQuery [][2]string

func (q orderedQuery) Encode() string {
	var b strings.Builder
	for i, kv := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}
