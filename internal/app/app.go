package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/authnsvc/internal/config"
	httpx "github.com/you/authnsvc/internal/http"
	"github.com/you/authnsvc/internal/http/handlers"
	"github.com/you/authnsvc/internal/http/middleware"
	"github.com/you/authnsvc/internal/infrastructure/database"
)

// Run wires the container into a router and serves until the listener stops.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	if err := database.Ping(context.Background(), c.RedisClient); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	userH := handlers.NewUserHandlers(c.UserSvc)

	jwtMW := middleware.NewAuthMW(c.SessionSvc)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, userH, jwtMW, casbinMW)

	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) == 0 {
		c.Casbin.E.AddPolicy("role_user", "/logout", "POST")
		c.Casbin.E.AddPolicy("role_teacher", "/logout", "POST")
		c.Casbin.E.AddPolicy("role_admin", "/logout", "POST")
		_ = c.Casbin.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
