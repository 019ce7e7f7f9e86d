package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
)

type ActivityRepository interface {
	InsertBatch(ctx context.Context, activities []*domain.Activity) error
	// ListByUserSince returns one user's activities dated on or after
	// since, chronologically ascending.
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.Activity, error)
	// ListAllSince returns every user's activity rows in the window,
	// left-joined with the owner's profile, in insertion order.
	ListAllSince(ctx context.Context, since time.Time) ([]*domain.LeaderboardRow, error)
}
