package services

import (
	"context"
	"fmt"
	"log"

	"github.com/you/authnsvc/domain"
)

// CodeServiceImpl implements domain.CodeService on top of the ephemeral
// secret store.
type CodeServiceImpl struct {
	tokenSvc   domain.TokenService
	secretRepo domain.SecretRepository
}

// NewCodeService creates a new code service
func NewCodeService(tokenSvc domain.TokenService, secretRepo domain.SecretRepository) domain.CodeService {
	return &CodeServiceImpl{
		tokenSvc:   tokenSvc,
		secretRepo: secretRepo,
	}
}

// IssueActivationCode implements domain.CodeService: generates a fresh code
// and persists it under the email, superseding any live one.
func (s *CodeServiceImpl) IssueActivationCode(ctx context.Context, email string) (string, error) {
	code, err := s.tokenSvc.GenerateActivationCode()
	if err != nil {
		return "", err
	}
	if err := s.secretRepo.SaveActivationCode(ctx, email, code); err != nil {
		return "", fmt.Errorf("failed to store activation code: %w", err)
	}
	return code, nil
}

// IssueOTP implements domain.CodeService
func (s *CodeServiceImpl) IssueOTP(ctx context.Context, email string) (string, error) {
	otp, err := s.tokenSvc.GenerateOTP()
	if err != nil {
		return "", err
	}
	if err := s.secretRepo.SaveOTP(ctx, email, otp); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return otp, nil
}

// CheckActivationCode implements domain.CodeService. Fail closed: a lookup
// miss, an expired key, and a store failure all read as a mismatch.
func (s *CodeServiceImpl) CheckActivationCode(ctx context.Context, email, candidate string) bool {
	stored, err := s.secretRepo.GetActivationCode(ctx, email)
	if err != nil {
		if err != domain.ErrSecretNotFound {
			log.Printf("activation code lookup failed for %s: %v", email, err)
		}
		return false
	}
	return stored == candidate
}

// CheckOTP implements domain.CodeService, same fail-closed rule.
func (s *CodeServiceImpl) CheckOTP(ctx context.Context, email, candidate string) bool {
	stored, err := s.secretRepo.GetOTP(ctx, email)
	if err != nil {
		if err != domain.ErrSecretNotFound {
			log.Printf("OTP lookup failed for %s: %v", email, err)
		}
		return false
	}
	return stored == candidate
}

// DeleteActivationCode implements domain.CodeService
func (s *CodeServiceImpl) DeleteActivationCode(ctx context.Context, email string) error {
	return s.secretRepo.DeleteActivationCode(ctx, email)
}

// DeleteOTP implements domain.CodeService
func (s *CodeServiceImpl) DeleteOTP(ctx context.Context, email string) error {
	return s.secretRepo.DeleteOTP(ctx, email)
}
