package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	query := `
		SELECT id, user_id, sports_preferences, height, weight,
		       weekly_frequency, fitness_goal, language_preference,
		       created_at, updated_at
		FROM user_preferences WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.ID, &prefs.UserID, pq.Array(&prefs.SportsPreferences),
		&prefs.Height, &prefs.Weight,
		&prefs.WeeklyFrequency, &prefs.FitnessGoal, &prefs.LanguagePreference,
		&prefs.CreatedAt, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

// Upsert keeps exactly one row per user; a second submission overwrites
// the first instead of inserting a duplicate.
func (r *preferenceRepository) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	if prefs.ID == uuid.Nil {
		prefs.ID = uuid.New()
	}
	query := `
		INSERT INTO user_preferences (
			id, user_id, sports_preferences, height, weight,
			weekly_frequency, fitness_goal, language_preference
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET sports_preferences = EXCLUDED.sports_preferences,
		    height = EXCLUDED.height,
		    weight = EXCLUDED.weight,
		    weekly_frequency = EXCLUDED.weekly_frequency,
		    fitness_goal = EXCLUDED.fitness_goal,
		    language_preference = EXCLUDED.language_preference,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		prefs.ID, prefs.UserID, pq.Array(prefs.SportsPreferences),
		prefs.Height, prefs.Weight,
		prefs.WeeklyFrequency, prefs.FitnessGoal, prefs.LanguagePreference,
	).Scan(&prefs.ID, &prefs.CreatedAt, &prefs.UpdatedAt)
}
