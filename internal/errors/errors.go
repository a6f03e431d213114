package errors

import (
	"errors"
	"fmt"
)

// Common error types for the landing site and its session helper
var (
	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionUnreadable = errors.New("session unreadable")
	ErrSessionNotStored  = errors.New("session not stored")

	// Login flow errors
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrEntropy         = errors.New("entropy source failed")
	ErrNavigation      = errors.New("navigation failed")
	ErrExchangeFailed  = errors.New("token exchange failed")
	ErrMissingIDToken  = errors.New("token response has no id_token")
	ErrMissingAuthCode = errors.New("missing authorization code")

	// Token errors
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")

	// Storage errors
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// Catalog errors
	ErrInvalidCourse = errors.New("invalid course")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils
func Join(errs ...error) error {
	return errors.Join(errs...)
}
