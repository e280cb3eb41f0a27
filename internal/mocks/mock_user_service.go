package mocks

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// MockUserService implements domain.UserService for testing
type MockUserService struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Account, error)
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
