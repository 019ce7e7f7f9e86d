package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type badgeRepository struct {
	db *sqlx.DB
}

func NewBadgeRepository(db *sqlx.DB) repository.BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error) {
	var badges []*domain.Badge
	query := `
		SELECT * FROM badges
		WHERE user_id = $1
		ORDER BY earned_at DESC
	`
	err := r.db.SelectContext(ctx, &badges, query, userID)
	return badges, err
}
