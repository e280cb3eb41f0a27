package services

import (
	"context"
	"fmt"
	"log"

	"github.com/you/authnsvc/domain"
)

// AuthServiceImpl implements domain.AuthService. All state lives in the
// stores; the service holds nothing mutable between calls.
type AuthServiceImpl struct {
	accountRepo     domain.AccountRepository
	tokenRepo       domain.TokenRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	codeSvc         domain.CodeService
	notificationSvc domain.NotificationService
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	tokenRepo domain.TokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	codeSvc domain.CodeService,
	notificationSvc domain.NotificationService,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo:     accountRepo,
		tokenRepo:       tokenRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		codeSvc:         codeSvc,
		notificationSvc: notificationSvc,
	}
}

// Register implements domain.AuthService. The account starts disabled and
// stays that way until the activation code is presented back.
func (s *AuthServiceImpl) Register(ctx context.Context, reg domain.Registration) error {
	exists, err := s.accountRepo.EmailExists(ctx, reg.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return domain.ErrEmailAlreadyExists
	}

	hash, err := s.passwordSvc.Hash(reg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	role := reg.Role
	if role == "" {
		role = domain.RoleUser
	}

	account := &domain.Account{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         role,
		IsEnabled:    false,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	code, err := s.codeSvc.IssueActivationCode(ctx, reg.Email)
	if err != nil {
		return err
	}
	s.sendActivationEmail(reg.Email, code, account.ID)

	return nil
}

// Login implements domain.AuthService. Outcomes, in decision order: unknown
// identifier, bad password, disabled account (activation email re-sent), no
// valid session (OTP issued, bare account id returned), or the stored
// still-valid session handed straight back with no store mutation.
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.LoginResult, error) {
	creds, err := s.accountRepo.FindCredentialsByIdentifier(ctx, identifier)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}

	if !s.passwordSvc.Verify(creds.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !creds.IsEnabled {
		code, err := s.codeSvc.IssueActivationCode(ctx, creds.Email)
		if err != nil {
			return nil, err
		}
		s.sendActivationEmail(creds.Email, code, creds.ID)
		return nil, domain.ErrAccountNotEnabled
	}

	if creds.Token == "" || !s.tokenSvc.IsSessionTokenStillValid(creds.Token) {
		otp, err := s.codeSvc.IssueOTP(ctx, creds.Email)
		if err != nil {
			return nil, err
		}
		s.sendOTPEmail(creds.Email, otp)
		return &domain.LoginResult{
			AccountID:   creds.ID,
			Username:    creds.Username,
			OTPRequired: true,
		}, nil
	}

	return &domain.LoginResult{
		AccountID: creds.ID,
		Username:  creds.Username,
		Token:     creds.Token,
	}, nil
}

// ValidateEmail implements domain.AuthService: the activation code gates the
// first enablement; enable + token set happen in one transaction.
func (s *AuthServiceImpl) ValidateEmail(ctx context.Context, activationToken, email, accountID string) (string, error) {
	if !s.codeSvc.CheckActivationCode(ctx, email, activationToken) {
		return "", domain.ErrCodeExpired
	}

	role := s.resolveRole(ctx, accountID)

	token, err := s.tokenSvc.GenerateSessionToken(accountID, role)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := s.accountRepo.EnableAndSetToken(ctx, accountID, token); err != nil {
		return "", fmt.Errorf("failed to enable account: %w", err)
	}

	if err := s.codeSvc.DeleteActivationCode(ctx, email); err != nil {
		log.Printf("failed to delete consumed activation code for %s: %v", email, err)
	}

	return token, nil
}

// ValidateOTP implements domain.AuthService. Same shape as ValidateEmail but
// the account is already enabled, so only the token row is replaced.
func (s *AuthServiceImpl) ValidateOTP(ctx context.Context, otp, email, accountID string) (string, error) {
	if !s.codeSvc.CheckOTP(ctx, email, otp) {
		return "", domain.ErrCodeExpired
	}

	role := s.resolveRole(ctx, accountID)

	token, err := s.tokenSvc.GenerateSessionToken(accountID, role)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	if !s.tokenRepo.Replace(ctx, accountID, token) {
		log.Printf("token replace reported failure for account %s", accountID)
	}

	if err := s.codeSvc.DeleteOTP(ctx, email); err != nil {
		log.Printf("failed to delete consumed OTP for %s: %v", email, err)
	}

	return token, nil
}

// ResendOTP implements domain.AuthService. Callable at any time; no
// activation-state check.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) error {
	if err := s.codeSvc.DeleteOTP(ctx, email); err != nil {
		log.Printf("failed to delete previous OTP for %s: %v", email, err)
	}
	otp, err := s.codeSvc.IssueOTP(ctx, email)
	if err != nil {
		return err
	}
	s.sendOTPEmail(email, otp)
	return nil
}

// ResendAccountActivation implements domain.AuthService. This operation never
// represents success to the caller: it re-issues and re-sends the activation
// code, then reports ErrAccountNotEnabled even when everything worked.
func (s *AuthServiceImpl) ResendAccountActivation(ctx context.Context, accountID, email string) error {
	if err := s.codeSvc.DeleteActivationCode(ctx, email); err != nil {
		log.Printf("failed to delete previous activation code for %s: %v", email, err)
	}
	code, err := s.codeSvc.IssueActivationCode(ctx, email)
	if err != nil {
		return err
	}
	s.sendActivationEmail(email, code, accountID)
	return domain.ErrAccountNotEnabled
}

// Logout implements domain.AuthService. Deleting twice is safe; calling with
// no account id is a programmer error, not a validation failure.
func (s *AuthServiceImpl) Logout(ctx context.Context, accountID string) error {
	if accountID == "" {
		return domain.ErrMissingAccountID
	}
	return s.tokenRepo.DeleteByAccountID(ctx, accountID)
}

// resolveRole falls back to the default role when the lookup misses.
func (s *AuthServiceImpl) resolveRole(ctx context.Context, accountID string) string {
	role, err := s.accountRepo.GetRole(ctx, accountID)
	if err != nil || role == "" {
		return domain.RoleUser
	}
	return role
}

// Email dispatch is fire-and-forget: a send failure is logged and never
// blocks or fails the surrounding auth operation.
func (s *AuthServiceImpl) sendActivationEmail(email, code, accountID string) {
	go func() {
		if err := s.notificationSvc.SendActivationEmail(email, code, accountID); err != nil {
			log.Printf("failed to send activation email to %s: %v", email, err)
		}
	}()
}

func (s *AuthServiceImpl) sendOTPEmail(email, otp string) {
	go func() {
		if err := s.notificationSvc.SendOTPEmail(email, otp); err != nil {
			log.Printf("failed to send OTP email to %s: %v", email, err)
		}
	}()
}
