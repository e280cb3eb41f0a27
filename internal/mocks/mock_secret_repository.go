package mocks

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// MockSecretRepository implements domain.SecretRepository for testing
type MockSecretRepository struct {
	SaveActivationCodeFunc   func(ctx context.Context, email, code string) error
	GetActivationCodeFunc    func(ctx context.Context, email string) (string, error)
	DeleteActivationCodeFunc func(ctx context.Context, email string) error
	SaveOTPFunc              func(ctx context.Context, email, code string) error
	GetOTPFunc               func(ctx context.Context, email string) (string, error)
	DeleteOTPFunc            func(ctx context.Context, email string) error
}

// NewMockSecretRepository creates a new MockSecretRepository with default behaviors
func NewMockSecretRepository() *MockSecretRepository {
	return &MockSecretRepository{}
}

func (m *MockSecretRepository) SaveActivationCode(ctx context.Context, email, code string) error {
	if m.SaveActivationCodeFunc != nil {
		return m.SaveActivationCodeFunc(ctx, email, code)
	}
	return nil
}

func (m *MockSecretRepository) GetActivationCode(ctx context.Context, email string) (string, error) {
	if m.GetActivationCodeFunc != nil {
		return m.GetActivationCodeFunc(ctx, email)
	}
	return "", domain.ErrSecretNotFound
}

func (m *MockSecretRepository) DeleteActivationCode(ctx context.Context, email string) error {
	if m.DeleteActivationCodeFunc != nil {
		return m.DeleteActivationCodeFunc(ctx, email)
	}
	return nil
}

func (m *MockSecretRepository) SaveOTP(ctx context.Context, email, code string) error {
	if m.SaveOTPFunc != nil {
		return m.SaveOTPFunc(ctx, email, code)
	}
	return nil
}

func (m *MockSecretRepository) GetOTP(ctx context.Context, email string) (string, error) {
	if m.GetOTPFunc != nil {
		return m.GetOTPFunc(ctx, email)
	}
	return "", domain.ErrSecretNotFound
}

func (m *MockSecretRepository) DeleteOTP(ctx context.Context, email string) error {
	if m.DeleteOTPFunc != nil {
		return m.DeleteOTPFunc(ctx, email)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.SecretRepository = (*MockSecretRepository)(nil)
