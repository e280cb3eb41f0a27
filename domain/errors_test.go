package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{name: "ErrAccountNotFound", err: ErrAccountNotFound, expectedMsg: "account not found"},
		{name: "ErrInvalidCredentials", err: ErrInvalidCredentials, expectedMsg: "invalid credentials"},
		{name: "ErrEmailAlreadyExists", err: ErrEmailAlreadyExists, expectedMsg: "email already registered"},
		{name: "ErrAccountNotEnabled", err: ErrAccountNotEnabled, expectedMsg: "account not enabled"},
		{name: "ErrCodeExpired", err: ErrCodeExpired, expectedMsg: "activation code or otp expired or invalid"},
		{name: "ErrTokenExpired", err: ErrTokenExpired, expectedMsg: "token has expired"},
		{name: "ErrTokenRevoked", err: ErrTokenRevoked, expectedMsg: "token revoked or superseded"},
		{name: "ErrSecretNotFound", err: ErrSecretNotFound, expectedMsg: "secret not found"},
		{name: "ErrCacheUnavailable", err: ErrCacheUnavailable, expectedMsg: "secret store unavailable"},
		{name: "ErrMissingAccountID", err: ErrMissingAccountID, expectedMsg: "account id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, tt.err.Error())
			}
		})
	}
}

// Wrapped store errors must still be recognizable through errors.Is, since
// handlers map them to status codes that way.
func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: connection refused", ErrCacheUnavailable)
	if !errors.Is(wrapped, ErrCacheUnavailable) {
		t.Error("expected the wrapped error to match ErrCacheUnavailable")
	}

	doubly := fmt.Errorf("failed to store activation code: %w", wrapped)
	if !errors.Is(doubly, ErrCacheUnavailable) {
		t.Error("expected the doubly wrapped error to match ErrCacheUnavailable")
	}
}

func TestTokenErrorsAreDistinct(t *testing.T) {
	tokenErrs := []error{ErrTokenInvalid, ErrTokenExpired, ErrTokenNotYetValid, ErrTokenMalformed, ErrTokenRevoked}
	for i, a := range tokenErrs {
		for j, b := range tokenErrs {
			if i != j && errors.Is(a, b) {
				t.Errorf("expected %v and %v to be distinct", a, b)
			}
		}
	}
}
