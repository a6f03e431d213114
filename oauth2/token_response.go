package oauth2

// TokenResponse represents the response from the provider's token endpoint
// after the authorization code has been exchanged (RFC 6749 section 5.1).
type TokenResponse struct {
	// AccessToken is the token used to access protected resources.
	AccessToken *string `json:"access_token,omitempty"`

	// IdToken is the OpenID Connect ID token containing user identity claims.
	// Only present when the "openid" scope was requested.
	IdToken *string `json:"id_token,omitempty"`

	// TokenType indicates how to use the access token, normally "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// The session expiry is computed from it at the moment the session is written.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// RefreshToken is returned by some providers but never stored: sessions are not refreshed.
	RefreshToken *string `json:"refresh_token,omitempty"`
}
