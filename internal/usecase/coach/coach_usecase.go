package coach

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

const historyLimit = 20

// CoachUseCase is the scripted fitness coach: it answers from a fixed
// set of templates filled with the user's stored preferences. There is
// no inference behind it and none is intended.
type CoachUseCase struct {
	prefRepo repository.PreferenceRepository
	convRepo repository.ConversationRepository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewCoachUseCase(
	prefRepo repository.PreferenceRepository,
	convRepo repository.ConversationRepository,
) *CoachUseCase {
	return &CoachUseCase{
		prefRepo: prefRepo,
		convRepo: convRepo,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// History returns the user's stored exchanges, oldest first.
func (uc *CoachUseCase) History(ctx context.Context, userID uuid.UUID) ([]*domain.AIConversation, error) {
	return uc.convRepo.ListByUser(ctx, userID, historyLimit)
}

// Ask produces a coach reply for the message, persists the exchange as
// one denormalized row, and returns it. A user without preferences
// gets the default goal and frequency in the templates.
func (uc *CoachUseCase) Ask(ctx context.Context, userID uuid.UUID, message string) (*domain.AIConversation, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}

	prefs, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err != nil && err != domain.ErrPreferencesNotFound {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	conv := &domain.AIConversation{
		UserID:   userID,
		Message:  message,
		Response: ResponseFor(prefs, uc.pick()),
	}
	if err := uc.convRepo.Insert(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	return conv, nil
}

func (uc *CoachUseCase) pick() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.rng.Intn(templateCount)
}

const templateCount = 4

// ResponseFor renders one of the canned coach replies. The pick index
// selects the template (modulo the template count), which keeps
// selection deterministic for a given seed.
func ResponseFor(prefs *domain.UserPreferences, pick int) string {
	goal := prefs.GoalOrDefault()
	frequency := prefs.FrequencyOrDefault()

	var sports []string
	if prefs != nil {
		sports = prefs.SportsPreferences
	}
	firstSport := "运动"
	if len(sports) > 0 {
		firstSport = sports[0]
	}

	switch pick % templateCount {
	case 0:
		return fmt.Sprintf(
			"根据您的目标\"%s\"，我建议您每周进行%d次训练。结合您喜欢的%s等运动，制定一个多样化的训练计划会更有效果。",
			goal, frequency, strings.Join(sports, "、"))
	case 1:
		return fmt.Sprintf(
			"很好的问题！对于%s，建议您：\n\n"+
				"1. 热身运动：5-10分钟动态拉伸\n"+
				"2. 主要训练：30-40分钟中等强度训练\n"+
				"3. 放松整理：5-10分钟静态拉伸\n\n"+
				"饮食方面，建议增加优质蛋白质摄入，如鸡胸肉、鱼类、豆制品等，同时保持充足的水分补充。",
			firstSport)
	case 2:
		return fmt.Sprintf(
			"为了达成\"%s\"这个目标，您需要保持规律的训练节奏。建议：\n\n"+
				"训练计划：\n"+
				"- 有氧运动：每周%d次，每次30-45分钟\n"+
				"- 力量训练：每周2-3次，针对主要肌群\n"+
				"- 休息日：每周1-2天完全休息\n\n"+
				"营养建议：\n"+
				"- 早餐：高蛋白质+复合碳水化合物\n"+
				"- 午餐：均衡搭配，蔬菜为主\n"+
				"- 晚餐：清淡为主，控制碳水摄入\n"+
				"- 加餐：坚果、水果、酸奶",
			goal, frequency)
	default:
		return fmt.Sprintf(
			"针对您的运动频率（每周%d次），这是一个很好的起点！持续保持这个频率，配合合理的休息，您会看到明显进步。\n\n"+
				"记住运动三要素：\n"+
				"✅ 规律性 - 保持固定的训练时间\n"+
				"✅ 渐进性 - 逐步增加训练强度\n"+
				"✅ 恢复性 - 给身体足够的休息时间\n\n"+
				"加油，坚持就是胜利！",
			frequency)
	}
}
