package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/authnsvc/domain"
	"github.com/you/authnsvc/internal/mocks"
)

func newAuthServiceForTest() (domain.AuthService, *mocks.MockAccountRepository, *mocks.MockTokenRepository, *mocks.MockPasswordService, *mocks.MockTokenService, *mocks.MockCodeService, *mocks.MockNotificationService) {
	accountRepo := mocks.NewMockAccountRepository()
	tokenRepo := mocks.NewMockTokenRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()
	codeSvc := mocks.NewMockCodeService()
	notificationSvc := mocks.NewMockNotificationService()
	svc := NewAuthService(accountRepo, tokenRepo, passwordSvc, tokenSvc, codeSvc, notificationSvc)
	return svc, accountRepo, tokenRepo, passwordSvc, tokenSvc, codeSvc, notificationSvc
}

func enabledCredentials() *domain.AccountCredentials {
	return &domain.AccountCredentials{
		ID:           "acc-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_pw1",
		IsEnabled:    true,
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name           string
		identifier     string
		password       string
		setupMocks     func(*mocks.MockAccountRepository, *mocks.MockTokenRepository, *mocks.MockPasswordService, *mocks.MockTokenService, *mocks.MockCodeService)
		expectedError  error
		validateResult func(t *testing.T, result *domain.LoginResult)
	}{
		{
			name:       "unknown identifier",
			identifier: "nobody",
			password:   "pw",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, tokenRepo *mocks.MockTokenRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, codeSvc *mocks.MockCodeService) {
				accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
					return nil, domain.ErrAccountNotFound
				}
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:       "wrong password",
			identifier: "alice",
			password:   "wrong",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, tokenRepo *mocks.MockTokenRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, codeSvc *mocks.MockCodeService) {
				accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
					return enabledCredentials(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:       "password compare error denies",
			identifier: "alice",
			password:   "pw1",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, tokenRepo *mocks.MockTokenRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, codeSvc *mocks.MockCodeService) {
				accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
					return enabledCredentials(), nil
				}
				passwordSvc.VerifyFunc = func(hashedPassword, password string) bool {
					return false
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:       "enabled with no token requires OTP",
			identifier: "alice",
			password:   "pw1",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, tokenRepo *mocks.MockTokenRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, codeSvc *mocks.MockCodeService) {
				accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
					return enabledCredentials(), nil
				}
			},
			validateResult: func(t *testing.T, result *domain.LoginResult) {
				if !result.OTPRequired {
					t.Error("expected OTPRequired")
				}
				if result.AccountID != "acc-1" || result.Username != "alice" {
					t.Errorf("unexpected result: %+v", result)
				}
				if result.Token != "" {
					t.Error("expected no token before OTP exchange")
				}
			},
		},
		{
			name:       "enabled with stale token requires OTP",
			identifier: "alice",
			password:   "pw1",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, tokenRepo *mocks.MockTokenRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, codeSvc *mocks.MockCodeService) {
				accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
					creds := enabledCredentials()
					creds.Token = "expired-token"
					return creds, nil
				}
				tokenSvc.IsSessionTokenStillValidFunc = func(token string) bool { return false }
			},
			validateResult: func(t *testing.T, result *domain.LoginResult) {
				if !result.OTPRequired {
					t.Error("expected OTPRequired for stale token")
				}
			},
		},
		{
			name:       "enabled with valid token returns completed session",
			identifier: "alice",
			password:   "pw1",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, tokenRepo *mocks.MockTokenRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, codeSvc *mocks.MockCodeService) {
				accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
					creds := enabledCredentials()
					creds.Token = "live-token"
					return creds, nil
				}
				tokenSvc.IsSessionTokenStillValidFunc = func(token string) bool { return token == "live-token" }
			},
			validateResult: func(t *testing.T, result *domain.LoginResult) {
				if result.OTPRequired {
					t.Error("did not expect OTPRequired")
				}
				if result.Token != "live-token" {
					t.Errorf("expected stored token back, got %q", result.Token)
				}
			},
		},
		{
			name:       "OTP persist failure propagates",
			identifier: "alice",
			password:   "pw1",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, tokenRepo *mocks.MockTokenRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService, codeSvc *mocks.MockCodeService) {
				accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
					return enabledCredentials(), nil
				}
				codeSvc.IssueOTPFunc = func(ctx context.Context, email string) (string, error) {
					return "", domain.ErrCacheUnavailable
				}
			},
			expectedError: domain.ErrCacheUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, tokenRepo, passwordSvc, tokenSvc, codeSvc, _ := newAuthServiceForTest()
			tt.setupMocks(accountRepo, tokenRepo, passwordSvc, tokenSvc, codeSvc)

			result, err := svc.Login(context.Background(), tt.identifier, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateResult != nil {
				tt.validateResult(t, result)
			}
		})
	}
}

// login against a disabled account always fails AccountNotEnabled and never
// yields a token, and exactly one activation email goes out with the freshly
// issued code.
func TestAuthServiceImpl_Login_NotEnabled(t *testing.T) {
	svc, accountRepo, _, _, _, codeSvc, notificationSvc := newAuthServiceForTest()

	accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
		creds := enabledCredentials()
		creds.IsEnabled = false
		return creds, nil
	}
	codeSvc.IssueActivationCodeFunc = func(ctx context.Context, email string) (string, error) {
		return "fresh-code", nil
	}

	sent := make(chan string, 2)
	notificationSvc.SendActivationEmailFunc = func(to, code, accountID string) error {
		sent <- code
		return nil
	}

	result, err := svc.Login(context.Background(), "alice", "pw1")
	if !errors.Is(err, domain.ErrAccountNotEnabled) {
		t.Fatalf("expected ErrAccountNotEnabled, got %v", err)
	}
	if result != nil {
		t.Fatal("expected no login result for disabled account")
	}

	select {
	case code := <-sent:
		if code != "fresh-code" {
			t.Errorf("expected freshly issued code, got %q", code)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an activation email to be dispatched")
	}
	select {
	case <-sent:
		t.Fatal("expected exactly one activation email")
	case <-time.After(50 * time.Millisecond):
	}
}

// Two sequential logins with a still-valid token return the same pair and
// never touch the token row; the happy path is a pure re-derivation.
func TestAuthServiceImpl_Login_StatelessHappyPath(t *testing.T) {
	svc, accountRepo, tokenRepo, _, tokenSvc, _, _ := newAuthServiceForTest()

	accountRepo.FindCredentialsByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
		creds := enabledCredentials()
		creds.Token = "live-token"
		return creds, nil
	}
	tokenSvc.IsSessionTokenStillValidFunc = func(token string) bool { return true }

	replaced := false
	tokenRepo.ReplaceFunc = func(ctx context.Context, accountID, token string) bool {
		replaced = true
		return true
	}

	first, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.AccountID != second.AccountID || first.Token != second.Token {
		t.Errorf("expected identical results, got %+v then %+v", first, second)
	}
	if replaced {
		t.Error("expected no token mutation on the happy path")
	}
}

func TestAuthServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name          string
		reg           domain.Registration
		setupMocks    func(*mocks.MockAccountRepository, *mocks.MockCodeService)
		expectedError error
	}{
		{
			name: "successful registration stays disabled",
			reg:  domain.Registration{Username: "alice", Email: "a@x.com", Password: "pw1"},
			setupMocks: func(accountRepo *mocks.MockAccountRepository, codeSvc *mocks.MockCodeService) {
				accountRepo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
					if account.IsEnabled {
						return errors.New("account must start disabled")
					}
					if account.Role != domain.RoleUser {
						return errors.New("role must default to USER")
					}
					account.ID = "acc-1"
					return nil
				}
			},
		},
		{
			name: "duplicate email conflicts",
			reg:  domain.Registration{Username: "alice2", Email: "a@x.com", Password: "pw2"},
			setupMocks: func(accountRepo *mocks.MockAccountRepository, codeSvc *mocks.MockCodeService) {
				accountRepo.EmailExistsFunc = func(ctx context.Context, email string) (bool, error) {
					return true, nil
				}
			},
			expectedError: domain.ErrEmailAlreadyExists,
		},
		{
			name: "activation code persist failure propagates",
			reg:  domain.Registration{Username: "bob", Email: "b@x.com", Password: "pw1"},
			setupMocks: func(accountRepo *mocks.MockAccountRepository, codeSvc *mocks.MockCodeService) {
				codeSvc.IssueActivationCodeFunc = func(ctx context.Context, email string) (string, error) {
					return "", domain.ErrCacheUnavailable
				}
			},
			expectedError: domain.ErrCacheUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, _, _, _, codeSvc, _ := newAuthServiceForTest()
			tt.setupMocks(accountRepo, codeSvc)

			err := svc.Register(context.Background(), tt.reg)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthServiceImpl_ValidateEmail(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockAccountRepository, *mocks.MockCodeService)
		expectedError error
		expectedToken string
	}{
		{
			name: "valid code enables account and returns token",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, codeSvc *mocks.MockCodeService) {
				codeSvc.CheckActivationCodeFunc = func(ctx context.Context, email, candidate string) bool {
					return email == "a@x.com" && candidate == "code-1"
				}
			},
			expectedToken: "jwt_acc-1",
		},
		{
			name: "invalid code fails expired",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, codeSvc *mocks.MockCodeService) {
				codeSvc.CheckActivationCodeFunc = func(ctx context.Context, email, candidate string) bool {
					return false
				}
			},
			expectedError: domain.ErrCodeExpired,
		},
		{
			name: "role lookup miss defaults to USER",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, codeSvc *mocks.MockCodeService) {
				codeSvc.CheckActivationCodeFunc = func(ctx context.Context, email, candidate string) bool {
					return true
				}
				accountRepo.GetRoleFunc = func(ctx context.Context, accountID string) (string, error) {
					return "", domain.ErrAccountNotFound
				}
			},
			expectedToken: "jwt_acc-1",
		},
		{
			name: "enable transaction failure propagates",
			setupMocks: func(accountRepo *mocks.MockAccountRepository, codeSvc *mocks.MockCodeService) {
				codeSvc.CheckActivationCodeFunc = func(ctx context.Context, email, candidate string) bool {
					return true
				}
				accountRepo.EnableAndSetTokenFunc = func(ctx context.Context, accountID, token string) error {
					return errors.New("db down")
				}
			},
			expectedError: nil, // wrapped infrastructure error, asserted below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, _, _, _, codeSvc, _ := newAuthServiceForTest()
			tt.setupMocks(accountRepo, codeSvc)

			token, err := svc.ValidateEmail(context.Background(), "code-1", "a@x.com", "acc-1")

			if tt.name == "enable transaction failure propagates" {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.expectedToken {
				t.Errorf("expected token %q, got %q", tt.expectedToken, token)
			}
		})
	}
}

func TestAuthServiceImpl_ValidateEmail_ChecksCodeBeforeRole(t *testing.T) {
	svc, accountRepo, _, _, _, codeSvc, _ := newAuthServiceForTest()

	codeSvc.CheckActivationCodeFunc = func(ctx context.Context, email, candidate string) bool {
		return false
	}
	roleResolved := false
	accountRepo.GetRoleFunc = func(ctx context.Context, accountID string) (string, error) {
		roleResolved = true
		return domain.RoleUser, nil
	}

	_, err := svc.ValidateEmail(context.Background(), "bad", "a@x.com", "acc-1")
	if !errors.Is(err, domain.ErrCodeExpired) {
		t.Fatalf("expected ErrCodeExpired, got %v", err)
	}
	if roleResolved {
		t.Error("role must not be resolved before the code check passes")
	}
}

func TestAuthServiceImpl_ValidateOTP(t *testing.T) {
	t.Run("valid OTP replaces token and consumes the code", func(t *testing.T) {
		svc, _, tokenRepo, _, tokenSvc, codeSvc, _ := newAuthServiceForTest()

		codeSvc.CheckOTPFunc = func(ctx context.Context, email, candidate string) bool {
			return candidate == "654321"
		}
		tokenSvc.GenerateSessionTokenFunc = func(accountID, role string) (string, error) {
			return "new-jwt", nil
		}

		var replacedWith string
		tokenRepo.ReplaceFunc = func(ctx context.Context, accountID, token string) bool {
			replacedWith = token
			return true
		}
		otpDeleted := false
		codeSvc.DeleteOTPFunc = func(ctx context.Context, email string) error {
			otpDeleted = true
			return nil
		}

		token, err := svc.ValidateOTP(context.Background(), "654321", "a@x.com", "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "new-jwt" {
			t.Errorf("expected new-jwt, got %q", token)
		}
		if replacedWith != "new-jwt" {
			t.Errorf("expected token row replaced with new-jwt, got %q", replacedWith)
		}
		if !otpDeleted {
			t.Error("expected consumed OTP to be deleted")
		}
	})

	// A store never seeded with this email reads as a mismatch, not as a
	// distinct lookup error.
	t.Run("unseeded email fails expired", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newAuthServiceForTest()

		_, err := svc.ValidateOTP(context.Background(), "000000", "never-seeded@x.com", "acc-9")
		if !errors.Is(err, domain.ErrCodeExpired) {
			t.Fatalf("expected ErrCodeExpired, got %v", err)
		}
	})

	t.Run("swallowed replace failure still returns the token", func(t *testing.T) {
		svc, _, tokenRepo, _, _, codeSvc, _ := newAuthServiceForTest()

		codeSvc.CheckOTPFunc = func(ctx context.Context, email, candidate string) bool { return true }
		tokenRepo.ReplaceFunc = func(ctx context.Context, accountID, token string) bool { return false }

		token, err := svc.ValidateOTP(context.Background(), "654321", "a@x.com", "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Error("expected a token despite the replace failure")
		}
	})
}

func TestAuthServiceImpl_ResendOTP(t *testing.T) {
	svc, _, _, _, _, codeSvc, notificationSvc := newAuthServiceForTest()

	deleted := false
	codeSvc.DeleteOTPFunc = func(ctx context.Context, email string) error {
		deleted = true
		return nil
	}
	codeSvc.IssueOTPFunc = func(ctx context.Context, email string) (string, error) {
		if !deleted {
			t.Error("previous OTP must be deleted before issuing a new one")
		}
		return "777777", nil
	}

	sent := make(chan string, 1)
	notificationSvc.SendOTPEmailFunc = func(to, code string) error {
		sent <- code
		return nil
	}

	if err := svc.ResendOTP(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case code := <-sent:
		if code != "777777" {
			t.Errorf("expected new OTP in email, got %q", code)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an OTP email to be dispatched")
	}
}

// resendAccountActivation is notify-and-fail: it always ends in
// ErrAccountNotEnabled, even when the issue and the send both succeed.
func TestAuthServiceImpl_ResendAccountActivation_AlwaysFails(t *testing.T) {
	svc, _, _, _, _, codeSvc, notificationSvc := newAuthServiceForTest()

	codeSvc.IssueActivationCodeFunc = func(ctx context.Context, email string) (string, error) {
		return "re-code", nil
	}
	sent := make(chan string, 1)
	notificationSvc.SendActivationEmailFunc = func(to, code, accountID string) error {
		sent <- code
		return nil
	}

	err := svc.ResendAccountActivation(context.Background(), "acc-1", "a@x.com")
	if !errors.Is(err, domain.ErrAccountNotEnabled) {
		t.Fatalf("expected ErrAccountNotEnabled on the success path, got %v", err)
	}

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("expected the activation email to be dispatched anyway")
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	t.Run("deletes tokens for a valid account id", func(t *testing.T) {
		svc, _, tokenRepo, _, _, _, _ := newAuthServiceForTest()

		var deletedFor string
		tokenRepo.DeleteByAccountIDFunc = func(ctx context.Context, accountID string) error {
			deletedFor = accountID
			return nil
		}

		if err := svc.Logout(context.Background(), "acc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deletedFor != "acc-1" {
			t.Errorf("expected delete for acc-1, got %q", deletedFor)
		}
	})

	t.Run("second logout is a safe no-op", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newAuthServiceForTest()

		if err := svc.Logout(context.Background(), "acc-1"); err != nil {
			t.Fatalf("unexpected error on first logout: %v", err)
		}
		if err := svc.Logout(context.Background(), "acc-1"); err != nil {
			t.Fatalf("unexpected error on repeated logout: %v", err)
		}
	})

	t.Run("missing account id is a programmer error", func(t *testing.T) {
		svc, _, tokenRepo, _, _, _, _ := newAuthServiceForTest()

		called := false
		tokenRepo.DeleteByAccountIDFunc = func(ctx context.Context, accountID string) error {
			called = true
			return nil
		}

		err := svc.Logout(context.Background(), "")
		if !errors.Is(err, domain.ErrMissingAccountID) {
			t.Fatalf("expected ErrMissingAccountID, got %v", err)
		}
		if called {
			t.Error("token delete must not run without an account id")
		}
	})
}
