package mocks

import "github.com/you/authnsvc/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateSessionTokenFunc     func(accountID, role string) (string, error)
	DecodeSessionTokenFunc       func(token string) (*domain.TokenClaims, error)
	IsSessionTokenStillValidFunc func(token string) bool
	GenerateActivationCodeFunc   func() (string, error)
	GenerateOTPFunc              func() (string, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateSessionToken(accountID, role string) (string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(accountID, role)
	}
	return "jwt_" + accountID, nil
}

func (m *MockTokenService) DecodeSessionToken(token string) (*domain.TokenClaims, error) {
	if m.DecodeSessionTokenFunc != nil {
		return m.DecodeSessionTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) IsSessionTokenStillValid(token string) bool {
	if m.IsSessionTokenStillValidFunc != nil {
		return m.IsSessionTokenStillValidFunc(token)
	}
	return false
}

func (m *MockTokenService) GenerateActivationCode() (string, error) {
	if m.GenerateActivationCodeFunc != nil {
		return m.GenerateActivationCodeFunc()
	}
	return "activation_code", nil
}

func (m *MockTokenService) GenerateOTP() (string, error) {
	if m.GenerateOTPFunc != nil {
		return m.GenerateOTPFunc()
	}
	return "123456", nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
