package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds the shared redis client. The client is handed to its
// consumers by construction; nothing holds it as package state.
func NewRedis(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// Ping verifies connectivity before the service starts taking traffic.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
