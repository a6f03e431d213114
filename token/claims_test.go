package token_test

import (
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/codelearn-landing/internal/errors"
	"github.com/jrsteele09/codelearn-landing/token"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func rawToken(payload string) string {
	return "eyJhbGciOiJub25lIn0." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

func TestDecodeClaims_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"bad base64", "a.$$$.c"},
		{"not json", rawToken("hello")},
		{"json array", rawToken(`["a"]`)},
		{"json null", rawToken("null")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := token.DecodeClaims(tt.token, now)
			require.Nil(t, claims)
			require.ErrorIs(t, err, errors.ErrMalformedToken)
		})
	}
}

func TestDecodeClaims_Expiry(t *testing.T) {
	t.Run("one second in the past", func(t *testing.T) {
		_, err := token.DecodeClaims(rawToken(`{"exp":`+itoa(now.Unix()-1)+`}`), now)
		require.ErrorIs(t, err, errors.ErrTokenExpired)
	})

	t.Run("expires this second", func(t *testing.T) {
		claims, err := token.DecodeClaims(rawToken(`{"exp":`+itoa(now.Unix())+`}`), now)
		require.NoError(t, err)
		require.Equal(t, now, claims.ExpiresAt().UTC())
	})

	t.Run("one hour in the future", func(t *testing.T) {
		claims, err := token.DecodeClaims(rawToken(`{"exp":`+itoa(now.Add(time.Hour).Unix())+`}`), now)
		require.NoError(t, err)
		require.Equal(t, now.Add(time.Hour), claims.ExpiresAt().UTC())
	})

	t.Run("exp is not a number", func(t *testing.T) {
		claims, err := token.DecodeClaims(rawToken(`{"sub":"u1","exp":"tomorrow"}`), now)
		require.NoError(t, err)
		require.Equal(t, "u1", claims.Subject())
		require.Equal(t, "tomorrow", claims["exp"])
		require.True(t, claims.ExpiresAt().IsZero())
	})

	t.Run("no exp claim", func(t *testing.T) {
		claims, err := token.DecodeClaims(rawToken(`{"sub":"u1"}`), now)
		require.NoError(t, err)
		require.True(t, claims.ExpiresAt().IsZero())
	})
}

func TestDecodeClaims_PaddedPayload(t *testing.T) {
	padded := "h." + base64.URLEncoding.EncodeToString([]byte(`{"sub":"u12"}`)) + ".s"
	require.Contains(t, padded, "=")

	claims, err := token.DecodeClaims(padded, now)
	require.NoError(t, err)
	require.Equal(t, "u12", claims.Subject())
}

func TestDecodeClaims_SignedToken(t *testing.T) {
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub":            "user-42",
		"email":          "  ada@example.com ",
		"cognito:groups": []string{"learners", "beta"},
		"exp":            now.Add(time.Minute).Unix(),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	claims, err := token.DecodeClaims(raw, now)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.Subject())
	require.Equal(t, "ada@example.com", claims.Email())
	require.Equal(t, "ada", claims.Name())
	require.Equal(t, []string{"learners", "beta"}, claims.Groups())
}

func TestClaims_Accessors(t *testing.T) {
	claims := token.Claims{"name": "Grace Hopper", "email": "grace@example.com"}
	require.Equal(t, "Grace Hopper", claims.Name())
	require.Empty(t, claims.Subject())
	require.Empty(t, claims.Groups())

	require.Empty(t, token.Claims{}.Name())
	require.Equal(t, "no-at-sign", token.Claims{"email": "no-at-sign"}.Name())
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
