package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
)

type BadgeRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error)
}
