package domain

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	BadgeType string    `json:"badge_type" db:"badge_type"`
	BadgeName string    `json:"badge_name" db:"badge_name"`
	BadgeIcon string    `json:"badge_icon" db:"badge_icon"`
	EarnedAt  time.Time `json:"earned_at" db:"earned_at"`
}
