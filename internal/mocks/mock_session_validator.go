package mocks

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// MockSessionValidator implements domain.SessionValidator for testing
type MockSessionValidator struct {
	ValidateFunc func(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// NewMockSessionValidator creates a new MockSessionValidator with default behaviors
func NewMockSessionValidator() *MockSessionValidator {
	return &MockSessionValidator{}
}

func (m *MockSessionValidator) Validate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, token)
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.SessionValidator = (*MockSessionValidator)(nil)
