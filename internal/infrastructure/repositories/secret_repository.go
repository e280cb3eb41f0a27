package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/authnsvc/domain"
)

const (
	activationPrefix = "activation:"
	otpPrefix        = "otp:"
)

// SecretRepositoryImpl implements domain.SecretRepository using Redis. A save
// overwrites any live secret under the same key, so at most one activation
// code and one OTP exist per email.
type SecretRepositoryImpl struct {
	client        *redis.Client
	activationTTL time.Duration
	otpTTL        time.Duration
	degraded      atomic.Bool
}

// NewSecretRepository creates a new ephemeral secret repository. The client
// is injected; the repository holds no global connection state.
func NewSecretRepository(client *redis.Client, activationTTL, otpTTL time.Duration) domain.SecretRepository {
	return &SecretRepositoryImpl{
		client:        client,
		activationTTL: activationTTL,
		otpTTL:        otpTTL,
	}
}

// ensure probes the connection once after a previous failure. One bounded
// attempt; a failed probe surfaces as unavailability instead of another
// command timing out.
func (r *SecretRepositoryImpl) ensure(ctx context.Context) error {
	if !r.degraded.Load() {
		return nil
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	r.degraded.Store(false)
	return nil
}

func (r *SecretRepositoryImpl) save(ctx context.Context, key, code string, ttl time.Duration) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, code, ttl).Err(); err != nil {
		r.degraded.Store(true)
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

func (r *SecretRepositoryImpl) get(ctx context.Context, key string) (string, error) {
	if err := r.ensure(ctx); err != nil {
		return "", err
	}
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSecretNotFound
		}
		r.degraded.Store(true)
		return "", fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return val, nil
}

func (r *SecretRepositoryImpl) delete(ctx context.Context, key string) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.degraded.Store(true)
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// SaveActivationCode implements domain.SecretRepository
func (r *SecretRepositoryImpl) SaveActivationCode(ctx context.Context, email, code string) error {
	return r.save(ctx, activationPrefix+email, code, r.activationTTL)
}

// GetActivationCode implements domain.SecretRepository
func (r *SecretRepositoryImpl) GetActivationCode(ctx context.Context, email string) (string, error) {
	return r.get(ctx, activationPrefix+email)
}

// DeleteActivationCode implements domain.SecretRepository
func (r *SecretRepositoryImpl) DeleteActivationCode(ctx context.Context, email string) error {
	return r.delete(ctx, activationPrefix+email)
}

// SaveOTP implements domain.SecretRepository
func (r *SecretRepositoryImpl) SaveOTP(ctx context.Context, email, code string) error {
	return r.save(ctx, otpPrefix+email, code, r.otpTTL)
}

// GetOTP implements domain.SecretRepository
func (r *SecretRepositoryImpl) GetOTP(ctx context.Context, email string) (string, error) {
	return r.get(ctx, otpPrefix+email)
}

// DeleteOTP implements domain.SecretRepository
func (r *SecretRepositoryImpl) DeleteOTP(ctx context.Context, email string) error {
	return r.delete(ctx, otpPrefix+email)
}
