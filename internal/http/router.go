package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/authnsvc/internal/http/handlers"
	"github.com/you/authnsvc/internal/http/middleware"
)

// BuildRouter assembles the public and authenticated route groups.
func BuildRouter(ah *handlers.AuthHandlers, uh *handlers.UserHandlers, jwtmw *middleware.AuthMW, cb middleware.CasbinMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/register", ah.Register)
	r.POST("/login", ah.Login)
	r.GET("/activate_email", ah.ValidateEmail)
	r.GET("/validate_otp", ah.ValidateOTP)
	r.GET("/resend_otp", ah.ResendOTP)
	r.GET("/resend_account_activation", ah.ResendAccountActivation)
	r.GET("/users/:id", uh.GetByID)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.POST("/logout", ah.Logout)

	return r
}
