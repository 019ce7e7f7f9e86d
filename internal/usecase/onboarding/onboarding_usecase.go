package onboarding

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

// SampleDataGenerator fabricates first-week history for a new user.
// Generation is fire-and-forget: implementations log their own
// failures and never report them back.
type SampleDataGenerator interface {
	GenerateSampleData(ctx context.Context, userID uuid.UUID, prefs *domain.UserPreferences)
}

type OnboardingUseCase struct {
	prefRepo repository.PreferenceRepository
	seeder   SampleDataGenerator
}

func NewOnboardingUseCase(
	prefRepo repository.PreferenceRepository,
	seeder SampleDataGenerator,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		prefRepo: prefRepo,
		seeder:   seeder,
	}
}

// SubmitRequest carries the onboarding questionnaire. Height and weight
// are optional; frequency and the sport set are not.
type SubmitRequest struct {
	Sports      []string `json:"sports_preferences"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Frequency   int      `json:"weekly_frequency"`
	FitnessGoal string   `json:"fitness_goal"`
	Language    string   `json:"language_preference"`
}

// Validate checks questionnaire bounds before anything is persisted.
func (r *SubmitRequest) Validate() error {
	if len(r.Sports) == 0 {
		return domain.ErrNoSportsSelected
	}
	if r.Frequency < domain.MinWeeklyFrequency || r.Frequency > domain.MaxWeeklyFrequency {
		return domain.ErrFrequencyOutOfRange
	}
	if r.Height != nil && (*r.Height < domain.MinHeightCm || *r.Height > domain.MaxHeightCm) {
		return domain.ErrHeightOutOfRange
	}
	if r.Weight != nil && (*r.Weight < domain.MinWeightKg || *r.Weight > domain.MaxWeightKg) {
		return domain.ErrWeightOutOfRange
	}
	return nil
}

// Submit validates the questionnaire, persists the preference record
// and triggers sample-data generation. Seeding failures are logged by
// the generator and never propagate: once the preference write has
// succeeded, onboarding succeeds.
func (uc *OnboardingUseCase) Submit(ctx context.Context, userID uuid.UUID, req *SubmitRequest) (*domain.UserPreferences, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prefs := &domain.UserPreferences{
		UserID:             userID,
		SportsPreferences:  req.Sports,
		Height:             req.Height,
		Weight:             req.Weight,
		WeeklyFrequency:    req.Frequency,
		FitnessGoal:        req.FitnessGoal,
		LanguagePreference: req.Language,
	}

	if err := uc.prefRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	uc.seeder.GenerateSampleData(ctx, userID, prefs)

	return prefs, nil
}

// HasCompleted reports whether the user already has a preference
// record; a missing record is the signal to show the questionnaire,
// not an error.
func (uc *OnboardingUseCase) HasCompleted(ctx context.Context, userID uuid.UUID) (bool, error) {
	_, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err == domain.ErrPreferencesNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
