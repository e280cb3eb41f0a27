package services

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	accountRepo domain.AccountRepository
}

// NewUserService creates a new user lookup service
func NewUserService(accountRepo domain.AccountRepository) domain.UserService {
	return &UserServiceImpl{accountRepo: accountRepo}
}

// GetByID implements domain.UserService
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountRepo.FindByID(ctx, id)
}
