package seed

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/config"
	"github.com/movemate/movemate-backend/internal/domain"
	"go.uber.org/zap"
)

type stubActivityRepo struct {
	batches [][]*domain.Activity
	err     error
}

func (s *stubActivityRepo) InsertBatch(_ context.Context, activities []*domain.Activity) error {
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, activities)
	return nil
}

func (s *stubActivityRepo) ListByUserSince(context.Context, uuid.UUID, time.Time) ([]*domain.Activity, error) {
	return nil, nil
}

func (s *stubActivityRepo) ListAllSince(context.Context, time.Time) ([]*domain.LeaderboardRow, error) {
	return nil, nil
}

type stubConversationRepo struct {
	convs []*domain.AIConversation
	err   error
}

func (s *stubConversationRepo) Insert(_ context.Context, conv *domain.AIConversation) error {
	s.convs = append(s.convs, conv)
	return nil
}

func (s *stubConversationRepo) InsertBatch(_ context.Context, convs []*domain.AIConversation) error {
	if s.err != nil {
		return s.err
	}
	s.convs = append(s.convs, convs...)
	return nil
}

func (s *stubConversationRepo) ListByUser(context.Context, uuid.UUID, int) ([]*domain.AIConversation, error) {
	return nil, nil
}

type stubUserRepo struct {
	users []*domain.User
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.New()
	s.users = append(s.users, user)
	return nil
}

func (s *stubUserRepo) GetByID(context.Context, uuid.UUID) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

type stubProfileRepo struct {
	profiles []*domain.UserProfile
}

func (s *stubProfileRepo) Create(_ context.Context, profile *domain.UserProfile) error {
	s.profiles = append(s.profiles, profile)
	return nil
}

func (s *stubProfileRepo) GetByID(context.Context, uuid.UUID) (*domain.UserProfile, error) {
	return nil, domain.ErrProfileNotFound
}

func (s *stubProfileRepo) Update(context.Context, *domain.UserProfile) error { return nil }

type stubMessageRepo struct {
	messages []*domain.Message
}

func (s *stubMessageRepo) Insert(_ context.Context, message *domain.Message) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *stubMessageRepo) ListByUser(context.Context, uuid.UUID) ([]*domain.Message, error) {
	return nil, nil
}

func (s *stubMessageRepo) ListBetween(context.Context, uuid.UUID, uuid.UUID) ([]*domain.Message, error) {
	return nil, nil
}

func (s *stubMessageRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fixture struct {
	gen        *Generator
	activities *stubActivityRepo
	convs      *stubConversationRepo
	users      *stubUserRepo
	profiles   *stubProfileRepo
	messages   *stubMessageRepo
}

var fixedNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func newFixture(cfg config.SeedConfig) *fixture {
	f := &fixture{
		activities: &stubActivityRepo{},
		convs:      &stubConversationRepo{},
		users:      &stubUserRepo{},
		profiles:   &stubProfileRepo{},
		messages:   &stubMessageRepo{},
	}
	f.gen = NewGenerator(f.activities, f.convs, f.users, f.profiles, f.messages, cfg, zap.NewNop())
	f.gen.rng = rand.New(rand.NewSource(42))
	f.gen.now = func() time.Time { return fixedNow }
	return f
}

func TestGenerateSampleDataSeedsWeekOfActivities(t *testing.T) {
	f := newFixture(config.SeedConfig{})
	userID := uuid.New()

	f.gen.GenerateSampleData(context.Background(), userID, &domain.UserPreferences{})

	if len(f.activities.batches) != 1 {
		t.Fatalf("expected 1 activity batch, got %d", len(f.activities.batches))
	}
	batch := f.activities.batches[0]
	if len(batch) != 7 {
		t.Fatalf("expected 7 activities, got %d", len(batch))
	}

	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	for i, activity := range batch {
		wantDate := today.AddDate(0, 0, -(6 - i))
		if !activity.ActivityDate.Equal(wantDate) {
			t.Errorf("activity %d: date = %v, want %v", i, activity.ActivityDate, wantDate)
		}
		if activity.UserID != userID {
			t.Errorf("activity %d: user = %v, want %v", i, activity.UserID, userID)
		}
		if activity.ActivityType != "running" {
			t.Errorf("activity %d: type = %q", i, activity.ActivityType)
		}
		if activity.Steps < 8000 || activity.Steps >= 12000 {
			t.Errorf("activity %d: steps %d out of [8000,12000)", i, activity.Steps)
		}
		wantDistance := math.Floor(float64(activity.Steps)/1300*10) / 10
		if activity.Distance != wantDistance {
			t.Errorf("activity %d: distance = %v, want %v", i, activity.Distance, wantDistance)
		}
		if activity.Duration < 30 || activity.Duration >= 60 {
			t.Errorf("activity %d: duration %d out of [30,60)", i, activity.Duration)
		}
		if want := int(float64(activity.Steps) * 0.04); activity.Calories != want {
			t.Errorf("activity %d: calories = %d, want %d", i, activity.Calories, want)
		}
	}
}

func TestGenerateSampleDataSeedsConversations(t *testing.T) {
	f := newFixture(config.SeedConfig{})
	prefs := &domain.UserPreferences{
		FitnessGoal:     "减脂塑形",
		WeeklyFrequency: 5,
	}

	f.gen.GenerateSampleData(context.Background(), uuid.New(), prefs)

	if len(f.convs.convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(f.convs.convs))
	}
	if !strings.Contains(f.convs.convs[0].Message, "膝盖") {
		t.Errorf("first conversation should be the knee pain exchange, got %q", f.convs.convs[0].Message)
	}
	diet := f.convs.convs[1].Response
	if !strings.Contains(diet, "减脂塑形") {
		t.Errorf("diet response should mention the goal: %q", diet)
	}
	if !strings.Contains(diet, fmt.Sprintf("每周%d次", 5)) {
		t.Errorf("diet response should mention the frequency: %q", diet)
	}
}

func TestGenerateSampleDataUsesDefaultsWithoutPreferences(t *testing.T) {
	f := newFixture(config.SeedConfig{})

	f.gen.GenerateSampleData(context.Background(), uuid.New(), nil)

	if len(f.convs.convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(f.convs.convs))
	}
	diet := f.convs.convs[1].Response
	if !strings.Contains(diet, domain.DefaultFitnessGoal) {
		t.Errorf("diet response should fall back to the default goal: %q", diet)
	}
	if !strings.Contains(diet, "每周3次") {
		t.Errorf("diet response should fall back to 3 weekly sessions: %q", diet)
	}
}

func TestGenerateSampleDataSwallowsActivityFailure(t *testing.T) {
	f := newFixture(config.SeedConfig{})
	f.activities.err = errors.New("db down")

	f.gen.GenerateSampleData(context.Background(), uuid.New(), &domain.UserPreferences{})

	if len(f.convs.convs) != 2 {
		t.Fatalf("conversation seeding should still run, got %d conversations", len(f.convs.convs))
	}
}

func TestGenerateSampleDataSeedsDemoLeaderboard(t *testing.T) {
	f := newFixture(config.SeedConfig{DemoLeaderboard: true})

	f.gen.GenerateSampleData(context.Background(), uuid.New(), &domain.UserPreferences{})

	// 8 demo users each get their own profile and weekly batch.
	if len(f.users.users) != 8 {
		t.Fatalf("expected 8 demo users, got %d", len(f.users.users))
	}
	if len(f.profiles.profiles) != 8 {
		t.Fatalf("expected 8 demo profiles, got %d", len(f.profiles.profiles))
	}
	if f.profiles.profiles[0].Username != "运动达人小王" {
		t.Errorf("first demo profile = %q", f.profiles.profiles[0].Username)
	}
	if len(f.activities.batches) != 9 {
		t.Fatalf("expected 9 activity batches (1 user + 8 demo), got %d", len(f.activities.batches))
	}
	for i, batch := range f.activities.batches[1:] {
		if len(batch) != 7 {
			t.Fatalf("demo batch %d: expected 7 rows, got %d", i, len(batch))
		}
		base := demoLeaderboardUsers[i].Steps / 7
		for _, activity := range batch {
			if activity.Steps < base || activity.Steps >= base+2000 {
				t.Errorf("demo batch %d: steps %d out of [%d,%d)", i, activity.Steps, base, base+2000)
			}
		}
	}
}

func TestGenerateSampleDataSeedsDemoMessages(t *testing.T) {
	f := newFixture(config.SeedConfig{DemoMessages: true})
	userID := uuid.New()

	f.gen.GenerateSampleData(context.Background(), userID, &domain.UserPreferences{})

	if len(f.users.users) != 3 {
		t.Fatalf("expected 3 demo friends, got %d", len(f.users.users))
	}
	if len(f.messages.messages) != 6 {
		t.Fatalf("expected 6 seeded messages, got %d", len(f.messages.messages))
	}

	first := f.messages.messages[0]
	if first.ReceiverID != userID || first.Read {
		t.Errorf("first thread message should be unread and addressed to the user")
	}
	if !strings.Contains(first.Content, "晨跑") {
		t.Errorf("Alex's opener should be the morning run invite, got %q", first.Content)
	}
	second := f.messages.messages[1]
	if second.SenderID != userID || !second.Read {
		t.Errorf("the reply should be sent by the user and already read")
	}
}

func TestDistanceForSteps(t *testing.T) {
	cases := []struct {
		steps int
		want  float64
	}{
		{1300, 1.0},
		{8000, 6.1},
		{11999, 9.2},
	}
	for _, tc := range cases {
		if got := distanceForSteps(tc.steps); got != tc.want {
			t.Errorf("distanceForSteps(%d) = %v, want %v", tc.steps, got, tc.want)
		}
	}
}
