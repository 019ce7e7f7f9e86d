package domain

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	ActivityType string    `json:"activity_type" db:"activity_type"`
	Steps        int       `json:"steps" db:"steps"`
	Distance     float64   `json:"distance" db:"distance"`
	Duration     int       `json:"duration" db:"duration"`
	Calories     int       `json:"calories" db:"calories"`
	ActivityDate time.Time `json:"activity_date" db:"activity_date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TimeRange selects the dashboard aggregation window.
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// Days returns the window length in calendar days, defaulting to a week
// for unknown values.
func (r TimeRange) Days() int {
	switch r {
	case RangeDay:
		return 1
	case RangeMonth:
		return 30
	default:
		return 7
	}
}

// WindowStart computes the first day of an inclusive window ending on
// the day of now: a range of N days covers today and the N-1 days
// before it.
func (r TimeRange) WindowStart(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -(r.Days() - 1))
}

// SeriesPoint is one dashboard chart entry. Multiple activities on the
// same date stay separate points; rows are never pre-merged.
type SeriesPoint struct {
	Date     time.Time `json:"date"`
	Steps    int       `json:"steps"`
	Distance float64   `json:"distance"`
}

// ActivityTotals aggregates one user's activities over a window.
type ActivityTotals struct {
	TotalSteps    int           `json:"total_steps"`
	TotalDistance float64       `json:"total_distance"`
	Series        []SeriesPoint `json:"series"`
}

// LeaderboardRow is one activity row joined with the owner's profile,
// as read for leaderboard accumulation. Profile fields are nil when the
// user has no profile row.
type LeaderboardRow struct {
	UserID    uuid.UUID `db:"user_id"`
	Steps     int       `db:"steps"`
	Username  *string   `db:"username"`
	AvatarURL *string   `db:"avatar_url"`
}

// LeaderboardEntry is a derived ranking row, computed fresh per query.
type LeaderboardEntry struct {
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	AvatarURL  string    `json:"avatar_url"`
	TotalSteps int       `json:"total_steps"`
	Rank       int       `json:"rank"`
}
