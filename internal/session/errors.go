package session

import "errors"

// Sentinel errors returned by store operations. Callers should match them
// with errors.Is; the message text is the user-facing reason.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so a
	// caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken      = errors.New("email already registered")
	ErrWeakPassword    = errors.New("password must be at least 6 characters")
	ErrAccountNotFound = errors.New("no account found with this email")

	// ErrSuperseded is returned when an operation finished its simulated
	// round trip after a logout invalidated the session it would update.
	ErrSuperseded = errors.New("operation superseded by logout")

	// ErrInvalidToken is returned by ParseToken for malformed or
	// mis-signed tokens.
	ErrInvalidToken = errors.New("invalid token")
)
