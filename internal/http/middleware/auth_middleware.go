package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/authnsvc/domain"
)

// AuthMiddleware admits a request only when the bearer token decodes cleanly
// AND matches the currently stored session token for the account. The second
// check is what gives revocation teeth: a superseded token still carries a
// valid signature.
func AuthMiddleware(sessions domain.SessionValidator) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := tokenParts[1]

		claims, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case errors.Is(err, domain.ErrTokenRevoked):
				c.JSON(http.StatusForbidden, gin.H{"error": "Token revoked or not valid"})
			case errors.Is(err, domain.ErrTokenMalformed), errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenNotYetValid):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
			}
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("user_role", claims.Role)

		c.Next()
	})
}
