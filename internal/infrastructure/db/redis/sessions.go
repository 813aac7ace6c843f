package redis

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// SessionRecords persists the client-readable half of an operator session:
// the user record, keyed by session token. The request-visible half (the
// token cookie) is owned by the session store.
type SessionRecords struct {
	client *redis.Client
}

// NewSessionRecords creates a SessionRecords wrapping the given Redis client.
func NewSessionRecords(client *redis.Client) *SessionRecords {
	return &SessionRecords{client: client}
}

// Save stores the user record under the token's key with the given TTL.
func (s *SessionRecords) Save(ctx context.Context, token string, user domain.User, ttl time.Duration) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), b, ttl).Err(); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

// Load resolves the user record behind a token.
func (s *SessionRecords) Load(ctx context.Context, token string) (domain.User, error) {
	b, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err == redis.Nil {
		return domain.User{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load session record: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(b, &user); err != nil {
		return domain.User{}, fmt.Errorf("decode session record: %w", err)
	}
	return user, nil
}

// Delete removes the record for a token. Deleting a missing record is a no-op.
func (s *SessionRecords) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

// key hashes the token so the raw bearer credential never appears in Redis.
func (s *SessionRecords) key(token string) string {
	return fmt.Sprintf("session:%x", sha256.Sum256([]byte(token)))
}
