package mocks

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// MockCodeService implements domain.CodeService for testing
type MockCodeService struct {
	IssueActivationCodeFunc  func(ctx context.Context, email string) (string, error)
	IssueOTPFunc             func(ctx context.Context, email string) (string, error)
	CheckActivationCodeFunc  func(ctx context.Context, email, candidate string) bool
	CheckOTPFunc             func(ctx context.Context, email, candidate string) bool
	DeleteActivationCodeFunc func(ctx context.Context, email string) error
	DeleteOTPFunc            func(ctx context.Context, email string) error
}

// NewMockCodeService creates a new MockCodeService with default behaviors
func NewMockCodeService() *MockCodeService {
	return &MockCodeService{}
}

func (m *MockCodeService) IssueActivationCode(ctx context.Context, email string) (string, error) {
	if m.IssueActivationCodeFunc != nil {
		return m.IssueActivationCodeFunc(ctx, email)
	}
	return "activation_code", nil
}

func (m *MockCodeService) IssueOTP(ctx context.Context, email string) (string, error) {
	if m.IssueOTPFunc != nil {
		return m.IssueOTPFunc(ctx, email)
	}
	return "123456", nil
}

func (m *MockCodeService) CheckActivationCode(ctx context.Context, email, candidate string) bool {
	if m.CheckActivationCodeFunc != nil {
		return m.CheckActivationCodeFunc(ctx, email, candidate)
	}
	return false
}

func (m *MockCodeService) CheckOTP(ctx context.Context, email, candidate string) bool {
	if m.CheckOTPFunc != nil {
		return m.CheckOTPFunc(ctx, email, candidate)
	}
	return false
}

func (m *MockCodeService) DeleteActivationCode(ctx context.Context, email string) error {
	if m.DeleteActivationCodeFunc != nil {
		return m.DeleteActivationCodeFunc(ctx, email)
	}
	return nil
}

func (m *MockCodeService) DeleteOTP(ctx context.Context, email string) error {
	if m.DeleteOTPFunc != nil {
		return m.DeleteOTPFunc(ctx, email)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CodeService = (*MockCodeService)(nil)
