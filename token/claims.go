package token

import (
	"encoding/json"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/codelearn-landing/internal/errors"
	"github.com/jrsteele09/codelearn-landing/internal/utils"
)

// Claims is the decoded payload of an identity token.
//
// Claims are decoded without verifying the token signature. They are fit for
// display (greeting the user by name, showing an email) and must never be
// used to make an authorization decision.
type Claims map[string]any

// DecodeClaims splits a compact JWT into its three segments and decodes the
// payload. It fails with ErrMalformedToken when the segment count is wrong or
// the payload is not base64url encoded JSON, and with ErrTokenExpired when a
// numeric exp claim lies before now (second precision).
func DecodeClaims(rawToken string, now time.Time) (Claims, error) {
	parts := strings.Split(rawToken, ".")
	if len(parts) != 3 {
		return nil, errors.Wrapf(errors.ErrMalformedToken, "expected 3 segments, got %d", len(parts))
	}

	payload, err := jwtlib.NewParser(jwtlib.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedToken, "payload is not base64url")
	}

	var claims jwtlib.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil || claims == nil {
		return nil, errors.Wrapf(errors.ErrMalformedToken, "payload is not a JSON object")
	}

	// A non-numeric exp is not in the past; the claims are still returned.
	exp, err := claims.GetExpirationTime()
	if err == nil && exp != nil && exp.Unix() < now.Unix() {
		return nil, errors.Wrapf(errors.ErrTokenExpired, "expired at %s", exp.UTC().Format(time.RFC3339))
	}

	return Claims(claims), nil
}

// Subject returns the sub claim.
func (c Claims) Subject() string {
	return c.str("sub")
}

// Email returns the email claim.
func (c Claims) Email() string {
	return c.str("email")
}

// Name returns the name claim, falling back to the local part of the email.
func (c Claims) Name() string {
	if name := c.str("name"); name != "" {
		return name
	}
	email := c.Email()
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// Groups returns the provider group memberships, if any.
func (c Claims) Groups() []string {
	return utils.ToStringSlice(c["cognito:groups"])
}

// ExpiresAt returns the exp claim, or the zero time when absent.
func (c Claims) ExpiresAt() time.Time {
	exp, err := jwtlib.MapClaims(c).GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func (c Claims) str(name string) string {
	v, _ := c[name].(string)
	return strings.TrimSpace(v)
}
