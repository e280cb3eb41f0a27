package domain

import "errors"

// Authentication errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountNotEnabled  = errors.New("account not enabled")
)

// Code errors. A lapsed or never-issued code is indistinguishable from a
// wrong one on purpose; both surface as ErrCodeExpired.
var (
	ErrCodeExpired = errors.New("activation code or otp expired or invalid")
)

// Token errors
var (
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token not yet valid")
	ErrTokenMalformed   = errors.New("malformed token")
	ErrTokenRevoked     = errors.New("token revoked or superseded")
)

// Store errors
var (
	ErrSecretNotFound   = errors.New("secret not found")
	ErrCacheUnavailable = errors.New("secret store unavailable")
)

// Programmer errors
var (
	ErrMissingAccountID = errors.New("account id is required")
)
