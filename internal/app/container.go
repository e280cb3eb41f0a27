package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/authnsvc/domain"
	"github.com/you/authnsvc/internal/config"
	"github.com/you/authnsvc/internal/infrastructure/auth"
	"github.com/you/authnsvc/internal/infrastructure/database"
	"github.com/you/authnsvc/internal/infrastructure/notifications"
	"github.com/you/authnsvc/internal/infrastructure/repositories"
	"github.com/you/authnsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	AccountRepo domain.AccountRepository
	TokenRepo   domain.TokenRepository
	SecretRepo  domain.SecretRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	CodeSvc         domain.CodeService
	NotificationSvc domain.NotificationService
	SessionSvc      domain.SessionValidator
	AuthSvc         domain.AuthService
	UserSvc         domain.UserService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, err
	}
	c.Casbin = cas

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	c.AccountRepo = repositories.NewAccountRepository(db)
	c.TokenRepo = repositories.NewTokenRepository(db)
	c.SecretRepo = repositories.NewSecretRepository(c.RedisClient, cfg.ActivationTTL, cfg.OTPTTL)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	c.NotificationSvc = notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.BaseURL)

	c.CodeSvc = services.NewCodeService(c.TokenSvc, c.SecretRepo)
	c.SessionSvc = services.NewSessionValidator(c.TokenSvc, c.TokenRepo)
	c.AuthSvc = services.NewAuthService(c.AccountRepo, c.TokenRepo, c.PasswordSvc, c.TokenSvc, c.CodeSvc, c.NotificationSvc)
	c.UserSvc = services.NewUserService(c.AccountRepo)

	return c, nil
}
