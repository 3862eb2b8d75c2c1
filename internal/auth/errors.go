package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for a missing, malformed, expired or
	// wrongly signed token, and for an unknown or expired reset token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingFields is returned when email or password is blank.
	ErrMissingFields = errors.New("email and password are required")

	// ErrNoSecret is returned when no JWT signing secret is configured.
	ErrNoSecret = errors.New("jwt secret is not configured")
)
