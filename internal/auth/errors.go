package auth

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned for every failed login,
	// whether the username exists or not.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateAccount   = errors.New("username or email already registered")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrWeakPassword       = errors.New("new password must be at least 6 characters")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// ValidationError collects every input-shape rule an operation
// violated, so the form can show them all at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Violations, "; ")
}
