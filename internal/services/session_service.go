package services

import (
	"context"

	"github.com/you/authnsvc/domain"
)

// SessionValidatorImpl implements domain.SessionValidator. It is the single
// place where signature checking and revocation checking meet, so the request
// admission path and the login path cannot drift apart.
type SessionValidatorImpl struct {
	tokenSvc  domain.TokenService
	tokenRepo domain.TokenRepository
}

// NewSessionValidator creates a new session validator
func NewSessionValidator(tokenSvc domain.TokenService, tokenRepo domain.TokenRepository) domain.SessionValidator {
	return &SessionValidatorImpl{
		tokenSvc:  tokenSvc,
		tokenRepo: tokenRepo,
	}
}

// Validate implements domain.SessionValidator: the token must decode cleanly
// AND equal the currently stored token for its account. A signature-valid
// token that has been superseded by a newer login is rejected.
func (s *SessionValidatorImpl) Validate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := s.tokenSvc.DecodeSessionToken(token)
	if err != nil {
		return nil, err
	}

	stored, err := s.tokenRepo.FindByAccountID(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != token {
		return nil, domain.ErrTokenRevoked
	}

	return claims, nil
}
