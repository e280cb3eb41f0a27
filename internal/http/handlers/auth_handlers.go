package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/authnsvc/domain"
)

// StatusOTPRequired is the distinguished login status: credentials were
// accepted but no valid session exists yet, so an OTP exchange must follow.
const StatusOTPRequired = 489

// StatusLocked marks a login against an account pending email activation.
const StatusLocked = http.StatusLocked

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN TEACHER USER"`
}

// LoginRequest represents a login request; username may hold an email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.Register(c.Request.Context(), domain.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		case errors.Is(err, domain.ErrCacheUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Service temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register account"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account created successfully"})
}

// Login handles POST /login. A completed session returns 200 with the stored
// token; an account without a valid session returns 489 with the bare
// account id, signalling that an OTP has been emailed.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Account not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		case errors.Is(err, domain.ErrAccountNotEnabled):
			c.JSON(StatusLocked, gin.H{"message": "Account not enabled; activation email sent"})
		case errors.Is(err, domain.ErrCacheUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Service temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		}
		return
	}

	if result.OTPRequired {
		c.JSON(StatusOTPRequired, gin.H{
			"user_id":  result.AccountID,
			"username": result.Username,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": result.AccountID,
		"token":   result.Token,
	})
}

// ValidateEmail handles GET /activate_email
func (h *AuthHandlers) ValidateEmail(c *gin.Context) {
	activationToken := c.Query("activation_token")
	email := c.Query("email")
	accountID := c.Query("id")

	if activationToken == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing activation token or email"})
		return
	}

	token, err := h.authSvc.ValidateEmail(c.Request.Context(), activationToken, email, accountID)
	if err != nil {
		h.writeCodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwt_token": token})
}

// ValidateOTP handles GET /validate_otp. The username query parameter carries
// the email the OTP was issued under.
func (h *AuthHandlers) ValidateOTP(c *gin.Context) {
	otp := c.Query("otp")
	email := c.Query("username")
	accountID := c.Query("id")

	if otp == "" || email == "" || accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing otp, email or account id"})
		return
	}

	token, err := h.authSvc.ValidateOTP(c.Request.Context(), otp, email, accountID)
	if err != nil {
		h.writeCodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwt_token": token})
}

// ResendOTP handles GET /resend_otp
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}

	if err := h.authSvc.ResendOTP(c.Request.Context(), email); err != nil {
		h.writeCodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// ResendAccountActivation handles GET /resend_account_activation. The
// operation reports AccountNotEnabled even after a successful send, so this
// endpoint never answers 2xx.
func (h *AuthHandlers) ResendAccountActivation(c *gin.Context) {
	email := c.Query("email")
	accountID := c.Query("id")
	if email == "" || accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or account id"})
		return
	}

	err := h.authSvc.ResendAccountActivation(c.Request.Context(), accountID, email)
	if errors.Is(err, domain.ErrAccountNotEnabled) {
		c.JSON(StatusLocked, gin.H{"message": "Account not enabled; activation email sent"})
		return
	}
	h.writeCodeError(c, err)
}

// Logout handles POST /logout (authenticated). A request that reached here
// without an account id in context is a programming fault in the admission
// path, flagged with an intentionally unusual status.
func (h *AuthHandlers) Logout(c *gin.Context) {
	accountID := c.GetString("account_id")

	err := h.authSvc.Logout(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingAccountID) {
			c.JSON(http.StatusTeapot, gin.H{"message": "Missing account id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandlers) writeCodeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCodeExpired):
		c.JSON(http.StatusGone, gin.H{"message": "Code expired or invalid"})
	case errors.Is(err, domain.ErrCacheUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Request failed"})
	}
}
