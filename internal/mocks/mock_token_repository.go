package mocks

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// MockTokenRepository implements domain.TokenRepository for testing
type MockTokenRepository struct {
	FindByAccountIDFunc   func(ctx context.Context, accountID string) (string, error)
	ReplaceFunc           func(ctx context.Context, accountID, token string) bool
	DeleteByAccountIDFunc func(ctx context.Context, accountID string) error
}

// NewMockTokenRepository creates a new MockTokenRepository with default behaviors
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{}
}

func (m *MockTokenRepository) FindByAccountID(ctx context.Context, accountID string) (string, error) {
	if m.FindByAccountIDFunc != nil {
		return m.FindByAccountIDFunc(ctx, accountID)
	}
	return "", nil
}

func (m *MockTokenRepository) Replace(ctx context.Context, accountID, token string) bool {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, accountID, token)
	}
	return true
}

func (m *MockTokenRepository) DeleteByAccountID(ctx context.Context, accountID string) error {
	if m.DeleteByAccountIDFunc != nil {
		return m.DeleteByAccountIDFunc(ctx, accountID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.TokenRepository = (*MockTokenRepository)(nil)
