package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/config"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Generator fabricates sample data for a freshly onboarded user: a week
// of plausible activity history, two canned coach exchanges and,
// depending on configuration, synthetic leaderboard accounts and demo
// message threads. Everything here is best-effort; failures are logged
// and must never block onboarding.
type Generator struct {
	activities    repository.ActivityRepository
	conversations repository.ConversationRepository
	users         repository.UserRepository
	profiles      repository.ProfileRepository
	messages      repository.MessageRepository
	cfg           config.SeedConfig
	log           *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(
	activities repository.ActivityRepository,
	conversations repository.ConversationRepository,
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	messages repository.MessageRepository,
	cfg config.SeedConfig,
	log *zap.Logger,
) *Generator {
	return &Generator{
		activities:    activities,
		conversations: conversations,
		users:         users,
		profiles:      profiles,
		messages:      messages,
		cfg:           cfg,
		log:           log,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		now:           time.Now,
	}
}

// GenerateSampleData runs every enabled seeding step. The steps are
// independent and order-insensitive; a failing step is logged and the
// rest still run.
func (g *Generator) GenerateSampleData(ctx context.Context, userID uuid.UUID, prefs *domain.UserPreferences) {
	if err := g.seedActivities(ctx, userID); err != nil {
		g.log.Warn("seeding activities failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if err := g.seedConversations(ctx, userID, prefs); err != nil {
		g.log.Warn("seeding conversations failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if g.cfg.DemoLeaderboard {
		g.seedLeaderboardUsers(ctx)
	}
	if g.cfg.DemoMessages {
		g.seedDemoMessages(ctx, userID)
	}
}

// Daily step range for seeded history and the stride constant used to
// derive distance from steps.
const (
	seedStepsBase   = 8000
	seedStepsSpread = 4000
	stepsPerKm      = 1300
	caloriesPerStep = 0.04
)

// seedActivities emits exactly one running activity per day for the
// seven days ending today, no gaps, no duplicate dates.
func (g *Generator) seedActivities(ctx context.Context, userID uuid.UUID) error {
	today := g.today()

	activities := make([]*domain.Activity, 0, 7)
	for i := 6; i >= 0; i-- {
		steps := seedStepsBase + g.intn(seedStepsSpread)
		activities = append(activities, &domain.Activity{
			UserID:       userID,
			ActivityType: "running",
			Steps:        steps,
			Distance:     distanceForSteps(steps),
			Duration:     30 + g.intn(30),
			Calories:     int(float64(steps) * caloriesPerStep),
			ActivityDate: today.AddDate(0, 0, -i),
		})
	}

	return g.activities.InsertBatch(ctx, activities)
}

// distanceForSteps converts steps to kilometers with a fixed stride,
// truncated to one decimal.
func distanceForSteps(steps int) float64 {
	return math.Floor(float64(steps)/stepsPerKm*10) / 10
}

func (g *Generator) seedConversations(ctx context.Context, userID uuid.UUID, prefs *domain.UserPreferences) error {
	goal := prefs.GoalOrDefault()
	frequency := prefs.FrequencyOrDefault()
	now := g.now()

	convs := []*domain.AIConversation{
		{
			UserID:    userID,
			Message:   "最近跑步膝盖有点痛，该如何训练缓解？",
			Response:  kneePainResponse,
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			UserID:    userID,
			Message:   "想减脂，饮食上有什么建议？",
			Response:  fmt.Sprintf(dietResponseTemplate, goal, frequency),
			CreatedAt: now.Add(-1 * 24 * time.Hour),
		},
	}

	return g.conversations.InsertBatch(ctx, convs)
}

const kneePainResponse = "建议增加力量训练强化膝关节周围肌肉，并做好跑前热身和跑后拉伸。可以尝试以下练习：\n\n" +
	"1. 深蹲和箭步蹲加强腿部肌肉\n" +
	"2. 靠墙静蹲提升膝关节稳定性\n" +
	"3. 泡沫轴放松大腿前侧和外侧\n" +
	"4. 适当减少跑步距离，让膝盖充分恢复\n\n" +
	"记住，如果疼痛持续，建议咨询专业医生。"

const dietResponseTemplate = "针对您\"%s\"的目标，饮食方面建议：\n\n" +
	"早餐：\n- 燕麦片 + 鸡蛋 + 牛奶\n- 全麦面包 + 鸡胸肉\n\n" +
	"午餐：\n- 糙米饭（一小碗）\n- 清蒸鱼或鸡胸肉\n- 大量蔬菜\n\n" +
	"晚餐：\n- 减少碳水摄入\n- 增加蛋白质和蔬菜\n- 避免油炸食物\n\n" +
	"加餐：\n- 坚果（适量）\n- 水果\n- 无糖酸奶\n\n" +
	"配合每周%d次运动，效果会更好！"

// demoLeaderboardUsers gives a new user competitive context. Weekly
// totals are decomposed into seven daily rows with jitter.
var demoLeaderboardUsers = []struct {
	Username string
	Steps    int
}{
	{"运动达人小王", 95000},
	{"健身爱好者李明", 88000},
	{"跑步小能手", 82000},
	{"张三的健身日记", 78000},
	{"运动小白进化中", 71000},
	{"每日打卡王", 68000},
	{"马拉松爱好者", 65000},
	{"健康生活倡导者", 61000},
}

func (g *Generator) seedLeaderboardUsers(ctx context.Context) {
	today := g.today()

	for _, demo := range demoLeaderboardUsers {
		user, err := g.createSyntheticUser(ctx, "mock", demo.Username)
		if err != nil {
			g.log.Warn("creating demo leaderboard user failed",
				zap.String("username", demo.Username), zap.Error(err))
			continue
		}

		activities := make([]*domain.Activity, 0, 7)
		for i := 6; i >= 0; i-- {
			activities = append(activities, &domain.Activity{
				UserID:       user.ID,
				ActivityType: "running",
				Steps:        demo.Steps/7 + g.intn(2000),
				Distance:     float64(g.intn(50)) / 10,
				Duration:     30 + g.intn(20),
				Calories:     200 + g.intn(300),
				ActivityDate: today.AddDate(0, 0, -i),
			})
		}

		if err := g.activities.InsertBatch(ctx, activities); err != nil {
			g.log.Warn("seeding demo leaderboard activities failed",
				zap.String("username", demo.Username), zap.Error(err))
		}
	}
}

// seedDemoMessages creates a few friendly accounts with one short
// message thread each, so the inbox is not empty on first visit.
func (g *Generator) seedDemoMessages(ctx context.Context, userID uuid.UUID) {
	now := g.now()

	for _, username := range []string{"Alex", "Bella", "Charlie"} {
		friend, err := g.createSyntheticUser(ctx, "friend", username)
		if err != nil {
			g.log.Warn("creating demo friend failed", zap.String("username", username), zap.Error(err))
			continue
		}

		incoming := "你分享的力量训练计划很棒，我准备也尝试一下。"
		reply := "太好了！有问题随时交流"
		if username == "Alex" {
			incoming = "明天一起晨跑吗？6点老地方见？"
			reply = "好的，太棒了，一起加油！"
		}

		thread := []*domain.Message{
			{SenderID: friend.ID, ReceiverID: userID, Content: incoming, Read: false, CreatedAt: now.Add(-5 * time.Hour)},
			{SenderID: userID, ReceiverID: friend.ID, Content: reply, Read: true, CreatedAt: now.Add(-4 * time.Hour)},
		}
		for _, message := range thread {
			if err := g.messages.Insert(ctx, message); err != nil {
				g.log.Warn("seeding demo message failed", zap.String("username", username), zap.Error(err))
			}
		}
	}
}

// createSyntheticUser registers a throwaway account plus profile.
// Synthetic accounts never sign in, so the password is a discarded
// random token hashed at minimum cost.
func (g *Generator) createSyntheticUser(ctx context.Context, prefix, username string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(g.token(16)), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        fmt.Sprintf("%s_%s@movemate.app", prefix, g.token(7)),
		PasswordHash: string(hash),
	}
	if err := g.users.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &domain.UserProfile{
		ID:       user.ID,
		Username: username,
	}
	if err := g.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	return user, nil
}

func (g *Generator) today() time.Time {
	now := g.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func (g *Generator) token(n int) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = tokenAlphabet[g.rng.Intn(len(tokenAlphabet))]
	}
	return string(buf)
}
