package domain

import "time"

// Account roles. New accounts default to RoleUser.
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleUser    = "USER"
)

// Account represents a registered identity
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsEnabled    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountCredentials is the login projection: account fields joined with the
// currently stored session token. Token is empty when no token row exists.
type AccountCredentials struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsEnabled    bool
	Token        string
}

// Registration carries the fields needed to create a new account
type Registration struct {
	Username string
	Email    string
	Password string
	Role     string
}

// SessionToken is the single active session row for an account
type SessionToken struct {
	AccountID string
	Token     string
}

// LoginResult represents a login outcome. When OTPRequired is set the account
// holds no valid session yet and Token is empty; the caller must complete the
// OTP exchange to obtain one.
type LoginResult struct {
	AccountID   string
	Username    string
	Token       string
	OTPRequired bool
}

// TokenClaims represents decoded session token claims
type TokenClaims struct {
	AccountID string `json:"user_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
