package sessions

import (
	"time"
)

// Storage keys of the tab-scoped volatile store.
const (
	SessionKey = "codelearn_session" // JSON encoded Session
	StateKey   = "oauth_state"       // CSRF state of the in-flight login
)

// Session is the authenticated state of a single browser tab.
// It is created after a successful code exchange and is only valid while
// TokenExpiry is in the future.
type Session struct {
	AccessToken     string `json:"accessToken"`     // OAuth2 access token
	IDToken         string `json:"idToken"`         // OIDC ID token (JWT, never verified here)
	TokenExpiry     int64  `json:"tokenExpiry"`     // Absolute expiry, milliseconds since epoch
	IsAuthenticated bool   `json:"isAuthenticated"` // Always true for a stored session
}

// ExpiresAt returns TokenExpiry as a time.
func (s Session) ExpiresAt() time.Time {
	return time.UnixMilli(s.TokenExpiry)
}

// ExpiredAt reports whether the session has expired at now. A session whose
// expiry equals now is already expired.
func (s Session) ExpiredAt(now time.Time) bool {
	return s.TokenExpiry <= now.UnixMilli()
}
