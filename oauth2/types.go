package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// The provider redirects back with a short-lived code that the callback
	// exchanges for tokens at the token endpoint.
	CodeResponseType ResponseType = "code"
)

// Well-known paths of the hosted identity provider.
const (
	AuthorizePath = "/oauth2/authorize"
	TokenPath     = "/oauth2/token"
	UserInfoPath  = "/oauth2/userInfo"
	LogoutPath    = "/logout"
)

// Query parameter names used by the authorize and logout redirects.
const (
	ParamResponseType = "response_type"
	ParamClientID     = "client_id"
	ParamRedirectURI  = "redirect_uri"
	ParamScope        = "scope"
	ParamState        = "state"
	ParamLogoutURI    = "logout_uri"
	ParamCode         = "code"
	ParamError        = "error"
	ParamErrorDesc    = "error_description"
)
