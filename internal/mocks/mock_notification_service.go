package mocks

import "github.com/you/authnsvc/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendActivationEmailFunc func(to, code, accountID string) error
	SendOTPEmailFunc        func(to, code string) error
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendActivationEmail(to, code, accountID string) error {
	if m.SendActivationEmailFunc != nil {
		return m.SendActivationEmailFunc(to, code, accountID)
	}
	return nil
}

func (m *MockNotificationService) SendOTPEmail(to, code string) error {
	if m.SendOTPEmailFunc != nil {
		return m.SendOTPEmailFunc(to, code)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
