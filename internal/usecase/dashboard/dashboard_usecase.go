package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

const leaderboardSize = 10

type DashboardUseCase struct {
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

func NewDashboardUseCase(activityRepo repository.ActivityRepository) *DashboardUseCase {
	return &DashboardUseCase{
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// LoadTotals sums one user's steps and distance over the selected
// window and returns the chart series in chronological order. Two rows
// on the same date stay two series points; merging them is a display
// concern this layer does not take on.
func (uc *DashboardUseCase) LoadTotals(ctx context.Context, userID uuid.UUID, timeRange domain.TimeRange) (*domain.ActivityTotals, error) {
	since := timeRange.WindowStart(uc.now())

	activities, err := uc.activityRepo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	totals := &domain.ActivityTotals{
		Series: make([]domain.SeriesPoint, 0, len(activities)),
	}
	for _, activity := range activities {
		totals.TotalSteps += activity.Steps
		totals.TotalDistance += activity.Distance
		totals.Series = append(totals.Series, domain.SeriesPoint{
			Date:     activity.ActivityDate,
			Steps:    activity.Steps,
			Distance: activity.Distance,
		})
	}

	return totals, nil
}

// LoadLeaderboard accumulates per-user step totals across all users in
// the window and returns the top ten, rank 1 first.
//
// Rows whose owner has no profile are dropped only when they are the
// first row seen for that user; once a running total exists, later
// rows still count. Ties are broken by user_id ascending so the
// ordering is deterministic.
func (uc *DashboardUseCase) LoadLeaderboard(ctx context.Context, timeRange domain.TimeRange) ([]*domain.LeaderboardEntry, error) {
	since := timeRange.WindowStart(uc.now())

	rows, err := uc.activityRepo.ListAllSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard activities: %w", err)
	}

	totals := make(map[uuid.UUID]*domain.LeaderboardEntry)
	for _, row := range rows {
		if existing, ok := totals[row.UserID]; ok {
			existing.TotalSteps += row.Steps
			continue
		}
		if row.Username == nil {
			continue
		}
		entry := &domain.LeaderboardEntry{
			UserID:     row.UserID,
			Username:   *row.Username,
			TotalSteps: row.Steps,
		}
		if row.AvatarURL != nil {
			entry.AvatarURL = *row.AvatarURL
		}
		totals[row.UserID] = entry
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalSteps != entries[j].TotalSteps {
			return entries[i].TotalSteps > entries[j].TotalSteps
		}
		return entries[i].UserID.String() < entries[j].UserID.String()
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}
