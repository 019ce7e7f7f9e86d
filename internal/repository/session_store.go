package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore maps hashed session tokens to user IDs with a TTL.
// Lookups after expiry return domain.ErrSessionNotFound.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string) (uuid.UUID, error)
	Delete(ctx context.Context, tokenHash string) error
}
