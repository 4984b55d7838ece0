// Package redisstore provides Redis-backed adapters for the tokens system.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dstokens/tokens-api/internal/ports"
)

// ReturnPathStore keeps the caller-supplied return path for the duration of
// the OAuth round trip, keyed by state. Entries expire via Redis TTL so a
// return path never outlives its window.
type ReturnPathStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewReturnPathStore creates a new Redis-backed return path store.
func NewReturnPathStore(client redis.UniversalClient, ttl time.Duration) *ReturnPathStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReturnPathStore{
		client: client,
		prefix: "oauth_state:",
		ttl:    ttl,
	}
}

func (s *ReturnPathStore) Save(ctx context.Context, state, returnTo string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	// An empty returnTo is valid: it records that the state exists.
	if err := s.client.Set(ctx, s.prefix+state, returnTo, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *ReturnPathStore) Take(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", ports.ErrStateNotFound
	}
	val, err := s.client.GetDel(ctx, s.prefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrStateNotFound
		}
		return "", fmt.Errorf("redis getdel: %w", err)
	}
	return val, nil
}
