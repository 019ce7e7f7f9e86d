package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// sessionStore keeps hashed tokens in Redis; expiry is handled by the
// key TTL, so a missing key covers both revoked and expired sessions.
type sessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) repository.SessionStore {
	return &sessionStore{client: client}
}

func (s *sessionStore) Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+tokenHash, userID.String(), ttl).Err()
}

func (s *sessionStore) Get(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	value, err := s.client.Get(ctx, sessionKeyPrefix+tokenHash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, domain.ErrSessionNotFound
		}
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return userID, nil
}

func (s *sessionStore) Delete(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, sessionKeyPrefix+tokenHash).Err()
}
