package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jrsteele09/codelearn-landing/internal/errors"
	"github.com/jrsteele09/codelearn-landing/internal/utils"
	"github.com/jrsteele09/codelearn-landing/oauth2"
	"github.com/jrsteele09/codelearn-landing/sessions"
	"github.com/jrsteele09/codelearn-landing/token"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// csrfTokenLength is the number of random bytes in a CSRF state token (256 bits).
const csrfTokenLength = 32

// SessionService drives the login flow of a single browser tab and is the
// only authority on whether that tab holds a valid session.
//
// It keeps no state between calls: every answer is computed from the tab
// storage it was constructed with.
type SessionService struct {
	config    Config
	storage   sessions.Storage
	navigator Navigator
	entropy   io.Reader        // CSPRNG, crypto/rand by default
	nowTime   func() time.Time // injectable for testing
	logger    zerolog.Logger
}

// SessionServiceOption defines a function type to modify the SessionService instance.
type SessionServiceOption func(*SessionService)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) SessionServiceOption {
	return func(s *SessionService) {
		s.nowTime = nowFunc
	}
}

// WithEntropy replaces the random source used for CSRF tokens. The reader
// must be cryptographically secure outside of tests.
func WithEntropy(r io.Reader) SessionServiceOption {
	return func(s *SessionService) {
		s.entropy = r
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger zerolog.Logger) SessionServiceOption {
	return func(s *SessionService) {
		s.logger = logger
	}
}

// NewSessionService creates a session helper bound to one tab's storage and navigator.
func NewSessionService(config Config, storage sessions.Storage, navigator Navigator, options ...SessionServiceOption) (*SessionService, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("[NewSessionService] %w", err)
	}
	if storage == nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "[NewSessionService] storage is required")
	}
	if navigator == nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "[NewSessionService] navigator is required")
	}

	s := &SessionService{
		config:    config,
		storage:   storage,
		navigator: navigator,
		entropy:   rand.Reader,
		nowTime:   time.Now,
		logger:    log.Logger,
	}

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// GenerateCsrfToken returns 32 random bytes as 64 lowercase hex characters.
func (s *SessionService) GenerateCsrfToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := io.ReadFull(s.entropy, b); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrEntropy, err)
	}
	return hex.EncodeToString(b), nil
}

// BeginLogin stores a fresh CSRF state, replacing any in-flight one, and
// navigates to the provider authorize endpoint.
func (s *SessionService) BeginLogin() error {
	state, err := s.GenerateCsrfToken()
	if err != nil {
		return errors.Wrapf(err, "[BeginLogin] generate state")
	}

	if err := s.storage.Set(sessions.StateKey, state); err != nil {
		s.logger.Error().Err(err).Msg("Error storing login state")
		return errors.Wrapf(err, "[BeginLogin] store state")
	}

	authURL := oauth2.AuthorizeURL(oauth2.AuthorizeRequest{
		ProviderDomain: s.config.ProviderDomain,
		ClientID:       s.config.ClientID,
		RedirectURI:    s.config.RedirectURI,
		Scopes:         s.config.Scopes,
		State:          state,
	})

	if err := s.navigator.Navigate(authURL); err != nil {
		return fmt.Errorf("[BeginLogin] %w: %w", errors.ErrNavigation, err)
	}
	return nil
}

// EndSession clears the tab's session and state, then navigates to the
// provider logout endpoint. Local state is cleared first so that a failed
// navigation never leaves a session behind.
func (s *SessionService) EndSession() error {
	if err := s.ClearSession(); err != nil {
		s.logger.Warn().Err(err).Msg("Logout: failed to clear session")
	}

	logoutURL := oauth2.LogoutURL(s.config.ProviderDomain, s.config.ClientID, s.config.LogoutURI)
	if err := s.navigator.Navigate(logoutURL); err != nil {
		return fmt.Errorf("[EndSession] %w: %w", errors.ErrNavigation, err)
	}
	return nil
}

// IsSessionValid reports whether the tab holds a session with an access
// token that has not expired. An expired session is removed before returning.
func (s *SessionService) IsSessionValid() bool {
	session, err := s.ReadSession()
	if err != nil || session.AccessToken == "" {
		return false
	}

	if session.ExpiredAt(s.nowTime()) {
		if err := s.ClearSession(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to evict expired session")
		}
		return false
	}

	return true
}

// ReadSession returns the stored session. It returns ErrSessionNotFound when
// nothing is stored and ErrSessionUnreadable when the storage cannot be read
// or holds something that is not a session; the cause is logged, not returned.
func (s *SessionService) ReadSession() (*sessions.Session, error) {
	raw, ok, err := s.storage.Get(sessions.SessionKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error reading session")
		return nil, errors.ErrSessionUnreadable
	}
	if !ok {
		return nil, errors.ErrSessionNotFound
	}

	var session *sessions.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Error().Err(err).Msg("Error reading session")
		return nil, errors.ErrSessionUnreadable
	}
	if session == nil {
		return nil, errors.ErrSessionNotFound
	}

	return session, nil
}

// WriteSession stores the tokens of a completed code exchange. The expiry is
// fixed now as the current time plus expires_in seconds. When the storage
// refuses the write the previous session is kept and ErrSessionNotStored is
// returned.
func (s *SessionService) WriteSession(tokens oauth2.TokenResponse) error {
	session := sessions.Session{
		AccessToken:     utils.Value(tokens.AccessToken),
		IDToken:         utils.Value(tokens.IdToken),
		TokenExpiry:     s.nowTime().UnixMilli() + tokens.ExpiresIn*1000,
		IsAuthenticated: true,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSessionNotStored, err)
	}

	if err := s.storage.Set(sessions.SessionKey, string(data)); err != nil {
		s.logger.Error().Err(err).Msg("Error storing session")
		return fmt.Errorf("%w: %w", errors.ErrSessionNotStored, err)
	}

	return nil
}

// ClearSession removes the session and the CSRF state. It is safe to call
// when nothing is stored.
func (s *SessionService) ClearSession() error {
	return errors.Join(
		s.storage.Delete(sessions.SessionKey),
		s.storage.Delete(sessions.StateKey),
	)
}

// VerifyState checks the state returned to the callback against the one
// stored by BeginLogin. A matching state is consumed.
func (s *SessionService) VerifyState(returned string) error {
	stored, ok, err := s.storage.Get(sessions.StateKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error reading login state")
		return errors.ErrInvalidState
	}
	if !ok || stored == "" || returned == "" {
		return errors.Wrapf(errors.ErrInvalidState, "no login in flight")
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(returned)) != 1 {
		return errors.Wrapf(errors.ErrInvalidState, "state mismatch")
	}

	if err := s.storage.Delete(sessions.StateKey); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to consume login state")
	}
	return nil
}

// DecodeIdentityClaims decodes the payload of an ID token for display.
//
// The signature is NOT verified. The result must not be used to grant access;
// IsSessionValid is the only authority for that.
func (s *SessionService) DecodeIdentityClaims(idToken string) (token.Claims, error) {
	claims, err := token.DecodeClaims(idToken, s.nowTime())
	if err != nil {
		if errors.Is(err, errors.ErrTokenExpired) {
			s.logger.Warn().Err(err).Msg("Token expired")
		} else {
			s.logger.Error().Err(err).Msg("Error parsing ID token")
		}
		return nil, err
	}
	return claims, nil
}

// CurrentClaims returns the display claims of the tab's valid session.
func (s *SessionService) CurrentClaims() (token.Claims, error) {
	if !s.IsSessionValid() {
		return nil, errors.ErrSessionNotFound
	}
	session, err := s.ReadSession()
	if err != nil {
		return nil, err
	}
	return s.DecodeIdentityClaims(session.IDToken)
}
