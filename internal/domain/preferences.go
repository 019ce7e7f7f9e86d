package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bounds applied to questionnaire input before persistence.
const (
	MinHeightCm        = 100
	MaxHeightCm        = 230
	MinWeightKg        = 30
	MaxWeightKg        = 200
	MinWeeklyFrequency = 0
	MaxWeeklyFrequency = 7
)

// DefaultFitnessGoal is substituted wherever a user left the goal blank.
const DefaultFitnessGoal = "提升整体健康水平"

const DefaultWeeklyFrequency = 3

// UserPreferences captures the onboarding questionnaire. One row per
// user, upsert semantics; mutated later through the profile center.
type UserPreferences struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	SportsPreferences  []string  `json:"sports_preferences" db:"sports_preferences"`
	Height             *float64  `json:"height" db:"height"`
	Weight             *float64  `json:"weight" db:"weight"`
	WeeklyFrequency    int       `json:"weekly_frequency" db:"weekly_frequency"`
	FitnessGoal        string    `json:"fitness_goal" db:"fitness_goal"`
	LanguagePreference string    `json:"language_preference" db:"language_preference"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// GoalOrDefault returns the fitness goal with the blank-goal fallback applied.
func (p *UserPreferences) GoalOrDefault() string {
	if p == nil || p.FitnessGoal == "" {
		return DefaultFitnessGoal
	}
	return p.FitnessGoal
}

// FrequencyOrDefault mirrors GoalOrDefault for the weekly frequency.
func (p *UserPreferences) FrequencyOrDefault() int {
	if p == nil || p.WeeklyFrequency == 0 {
		return DefaultWeeklyFrequency
	}
	return p.WeeklyFrequency
}
