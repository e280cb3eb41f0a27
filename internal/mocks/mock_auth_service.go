package mocks

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc                func(ctx context.Context, reg domain.Registration) error
	LoginFunc                   func(ctx context.Context, identifier, password string) (*domain.LoginResult, error)
	ValidateEmailFunc           func(ctx context.Context, activationToken, email, accountID string) (string, error)
	ValidateOTPFunc             func(ctx context.Context, otp, email, accountID string) (string, error)
	ResendOTPFunc               func(ctx context.Context, email string) error
	ResendAccountActivationFunc func(ctx context.Context, accountID, email string) error
	LogoutFunc                  func(ctx context.Context, accountID string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, reg domain.Registration) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAuthService) ValidateEmail(ctx context.Context, activationToken, email, accountID string) (string, error) {
	if m.ValidateEmailFunc != nil {
		return m.ValidateEmailFunc(ctx, activationToken, email, accountID)
	}
	return "", domain.ErrCodeExpired
}

func (m *MockAuthService) ValidateOTP(ctx context.Context, otp, email, accountID string) (string, error) {
	if m.ValidateOTPFunc != nil {
		return m.ValidateOTPFunc(ctx, otp, email, accountID)
	}
	return "", domain.ErrCodeExpired
}

func (m *MockAuthService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResendAccountActivation(ctx context.Context, accountID, email string) error {
	if m.ResendAccountActivationFunc != nil {
		return m.ResendAccountActivationFunc(ctx, accountID, email)
	}
	return domain.ErrAccountNotEnabled
}

func (m *MockAuthService) Logout(ctx context.Context, accountID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accountID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
