package domain

import "context"

// AccountRepository defines persistent account data access
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindCredentialsByIdentifier(ctx context.Context, identifier string) (*AccountCredentials, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	GetRole(ctx context.Context, accountID string) (string, error)
	EnableAndSetToken(ctx context.Context, accountID, token string) error
}

// TokenRepository defines session token data access. An account holds at most
// one token row; Replace swaps it transactionally.
type TokenRepository interface {
	FindByAccountID(ctx context.Context, accountID string) (string, error)
	Replace(ctx context.Context, accountID, token string) bool
	DeleteByAccountID(ctx context.Context, accountID string) error
}

// SecretRepository defines the TTL-bound store for activation codes and OTPs,
// keyed by email. Save overwrites any live secret under the same key.
type SecretRepository interface {
	SaveActivationCode(ctx context.Context, email, code string) error
	GetActivationCode(ctx context.Context, email string) (string, error)
	DeleteActivationCode(ctx context.Context, email string) error
	SaveOTP(ctx context.Context, email, code string) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token and secret generation operations
type TokenService interface {
	GenerateSessionToken(accountID, role string) (string, error)
	DecodeSessionToken(token string) (*TokenClaims, error)
	IsSessionTokenStillValid(token string) bool
	GenerateActivationCode() (string, error)
	GenerateOTP() (string, error)
}

// CodeService issues and checks short-lived activation codes and OTPs
type CodeService interface {
	IssueActivationCode(ctx context.Context, email string) (string, error)
	IssueOTP(ctx context.Context, email string) (string, error)
	CheckActivationCode(ctx context.Context, email, candidate string) bool
	CheckOTP(ctx context.Context, email, candidate string) bool
	DeleteActivationCode(ctx context.Context, email string) error
	DeleteOTP(ctx context.Context, email string) error
}

// SessionValidator admits a bearer token only if its signature and expiry
// check out AND it equals the currently stored token for the account.
// Revocation works by replacement: a superseded token must be rejected even
// when its signature is still valid.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*TokenClaims, error)
}

// NotificationService defines the outbound email operations
type NotificationService interface {
	SendActivationEmail(to, code, accountID string) error
	SendOTPEmail(to, code string) error
}

// AuthService defines the authentication state machine
type AuthService interface {
	Register(ctx context.Context, reg Registration) error
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	ValidateEmail(ctx context.Context, activationToken, email, accountID string) (string, error)
	ValidateOTP(ctx context.Context, otp, email, accountID string) (string, error)
	ResendOTP(ctx context.Context, email string) error
	ResendAccountActivation(ctx context.Context, accountID, email string) error
	Logout(ctx context.Context, accountID string) error
}

// UserService defines the public user lookup
type UserService interface {
	GetByID(ctx context.Context, id string) (*Account, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
