package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	prefRepo    repository.PreferenceRepository
	badgeRepo   repository.BadgeRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	prefRepo repository.PreferenceRepository,
	badgeRepo repository.BadgeRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		prefRepo:    prefRepo,
		badgeRepo:   badgeRepo,
	}
}

// Overview is everything the profile center page renders.
type Overview struct {
	Profile     *domain.UserProfile     `json:"profile"`
	Preferences *domain.UserPreferences `json:"preferences,omitempty"`
	Badges      []*domain.Badge         `json:"badges"`
}

// GetOverview loads the profile, its preference record and earned
// badges. A user who skipped onboarding has no preferences yet; the
// page renders without them.
func (uc *ProfileUseCase) GetOverview(ctx context.Context, userID uuid.UUID) (*Overview, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err != nil && err != domain.ErrPreferencesNotFound {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	badges, err := uc.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	return &Overview{
		Profile:     profile,
		Preferences: prefs,
		Badges:      badges,
	}, nil
}

// UpdateProfileRequest represents profile update input.
type UpdateProfileRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=2,max=50"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
}

// UpdateProfile updates only the fields the request carries.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*domain.UserProfile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		profile.Username = *req.Username
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// UpdatePersonalInfoRequest carries the editable body metrics and
// training settings. The same bounds as the onboarding questionnaire
// apply.
type UpdatePersonalInfoRequest struct {
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Frequency   *int     `json:"weekly_frequency"`
	FitnessGoal *string  `json:"fitness_goal"`
}

func (r *UpdatePersonalInfoRequest) Validate() error {
	if r.Height != nil && (*r.Height < domain.MinHeightCm || *r.Height > domain.MaxHeightCm) {
		return domain.ErrHeightOutOfRange
	}
	if r.Weight != nil && (*r.Weight < domain.MinWeightKg || *r.Weight > domain.MaxWeightKg) {
		return domain.ErrWeightOutOfRange
	}
	if r.Frequency != nil && (*r.Frequency < domain.MinWeeklyFrequency || *r.Frequency > domain.MaxWeeklyFrequency) {
		return domain.ErrFrequencyOutOfRange
	}
	return nil
}

// UpdatePersonalInfo patches the stored preference record. It requires
// an existing record; personal info is edited after onboarding, never
// instead of it.
func (uc *ProfileUseCase) UpdatePersonalInfo(ctx context.Context, userID uuid.UUID, req *UpdatePersonalInfoRequest) (*domain.UserPreferences, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prefs, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Height != nil {
		prefs.Height = req.Height
	}
	if req.Weight != nil {
		prefs.Weight = req.Weight
	}
	if req.Frequency != nil {
		prefs.WeeklyFrequency = *req.Frequency
	}
	if req.FitnessGoal != nil {
		prefs.FitnessGoal = *req.FitnessGoal
	}

	if err := uc.prefRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save personal info: %w", err)
	}

	return prefs, nil
}

// UpdateLanguage switches the stored language preference.
func (uc *ProfileUseCase) UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) (*domain.UserPreferences, error) {
	prefs, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs.LanguagePreference = language
	if err := uc.prefRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save language preference: %w", err)
	}

	return prefs, nil
}
