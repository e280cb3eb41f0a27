package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/you/authnsvc/domain"
)

// AuthMW wraps the session validator for middleware wiring
type AuthMW struct {
	sessions domain.SessionValidator
}

// NewAuthMW creates a new auth middleware wrapper
func NewAuthMW(sessions domain.SessionValidator) *AuthMW {
	return &AuthMW{sessions: sessions}
}

// WithJWT returns the bearer token middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.sessions)
}
