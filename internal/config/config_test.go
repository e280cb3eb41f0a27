package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testConfigYAML = `
app:
  port: 9090
  gin_mode: release
database:
  dsn: "host=localhost user=auth dbname=auth"
redis:
  addr: "localhost:6379"
  db: 2
jwt:
  secret: "file-secret"
  issuer: "authnsvc"
  ttl: "2h"
codes:
  activation_ttl: "15m"
  otp_ttl: "3m"
smtp:
  host: ""
  port: 587
  from: "noreply@example.com"
  base_url: "http://localhost:9090"
casbin:
  model_path: "config/casbin_model.conf"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.JWTTTL != 2*time.Hour {
		t.Errorf("expected JWT TTL 2h, got %v", cfg.JWTTTL)
	}
	if cfg.ActivationTTL != 15*time.Minute {
		t.Errorf("expected activation TTL 15m, got %v", cfg.ActivationTTL)
	}
	if cfg.OTPTTL != 3*time.Minute {
		t.Errorf("expected OTP TTL 3m, got %v", cfg.OTPTTL)
	}
	if cfg.RedisDB != 2 {
		t.Errorf("expected redis db 2, got %d", cfg.RedisDB)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("expected file secret, got %q", cfg.JWTSecret)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.JWTSecret != "env-secret" {
		t.Errorf("expected the environment to win, got %q", cfg.JWTSecret)
	}
	if cfg.RedisAddr != "redis.internal:6379" {
		t.Errorf("expected the environment to win, got %q", cfg.RedisAddr)
	}
}

func TestLoad_InvalidDurations(t *testing.T) {
	bad := `
app:
  port: 8080
jwt:
  ttl: "not-a-duration"
codes:
  activation_ttl: "15m"
  otp_ttl: "3m"
`
	t.Setenv("CONFIG_PATH", writeTestConfig(t, bad))

	if _, err := Load(); err == nil {
		t.Error("expected an error for an invalid TTL")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))

	if _, err := Load(); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
