package mocks

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc                      func(ctx context.Context, account *domain.Account) error
	FindCredentialsByIdentifierFunc func(ctx context.Context, identifier string) (*domain.AccountCredentials, error)
	EmailExistsFunc                 func(ctx context.Context, email string) (bool, error)
	FindByIDFunc                    func(ctx context.Context, id string) (*domain.Account, error)
	GetRoleFunc                     func(ctx context.Context, accountID string) (string, error)
	EnableAndSetTokenFunc           func(ctx context.Context, accountID, token string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) FindCredentialsByIdentifier(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
	if m.FindCredentialsByIdentifierFunc != nil {
		return m.FindCredentialsByIdentifierFunc(ctx, identifier)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetRole(ctx context.Context, accountID string) (string, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, accountID)
	}
	return domain.RoleUser, nil
}

func (m *MockAccountRepository) EnableAndSetToken(ctx context.Context, accountID, token string) error {
	if m.EnableAndSetTokenFunc != nil {
		return m.EnableAndSetTokenFunc(ctx, accountID, token)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
