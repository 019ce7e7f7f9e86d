package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) InsertBatch(ctx context.Context, activities []*domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	query := `
		INSERT INTO activities (id, user_id, activity_type, steps, distance, duration, calories, activity_date, created_at)
		VALUES (:id, :user_id, :activity_type, :steps, :distance, :duration, :calories, :activity_date, :created_at)
	`
	for _, a := range activities {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now()
		}
	}
	_, err := r.db.NamedExecContext(ctx, query, activities)
	return err
}

func (r *activityRepository) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	query := `
		SELECT * FROM activities
		WHERE user_id = $1 AND activity_date >= $2
		ORDER BY activity_date ASC, created_at ASC
	`
	err := r.db.SelectContext(ctx, &activities, query, userID, since)
	return activities, err
}

func (r *activityRepository) ListAllSince(ctx context.Context, since time.Time) ([]*domain.LeaderboardRow, error) {
	var rows []*domain.LeaderboardRow
	query := `
		SELECT a.user_id, a.steps, p.username, p.avatar_url
		FROM activities a
		LEFT JOIN user_profiles p ON p.id = a.user_id
		WHERE a.activity_date >= $1
		ORDER BY a.created_at ASC
	`
	err := r.db.SelectContext(ctx, &rows, query, since)
	return rows, err
}
