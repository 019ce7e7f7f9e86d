package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
)

// PreferenceRepository persists the onboarding questionnaire. GetByUserID
// returns domain.ErrPreferencesNotFound for users who have not completed
// onboarding yet; callers treat that as a normal state.
type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error)
	Upsert(ctx context.Context, prefs *domain.UserPreferences) error
}
