package community

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
	"go.uber.org/zap"
)

const (
	communityListLimit = 20
	postListLimit      = 50
	memberPreviewLimit = 5
	exchangeListLimit  = 10
)

type CommunityUseCase struct {
	communityRepo repository.CommunityRepository
	exchangeRepo  repository.SkillExchangeRepository
	log           *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewCommunityUseCase(
	communityRepo repository.CommunityRepository,
	exchangeRepo repository.SkillExchangeRepository,
	log *zap.Logger,
) *CommunityUseCase {
	return &CommunityUseCase{
		communityRepo: communityRepo,
		exchangeRepo:  exchangeRepo,
		log:           log,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		now:           time.Now,
	}
}

// CreateCommunityRequest represents community creation input.
type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	CoverImage  string `json:"cover_image" binding:"omitempty,max=500"`
	Tags        string `json:"tags"`
}

// List returns the newest communities.
func (uc *CommunityUseCase) List(ctx context.Context) ([]*domain.Community, error) {
	return uc.communityRepo.List(ctx, communityListLimit)
}

// Create opens a community with its creator as first member and two
// sample posts so the feed is not empty.
func (uc *CommunityUseCase) Create(ctx context.Context, creatorID uuid.UUID, req *CreateCommunityRequest) (*domain.Community, error) {
	tags := make([]string, 0)
	for _, tag := range strings.Split(req.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	community := &domain.Community{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Tags:        tags,
		MemberCount: 1,
		CreatorID:   creatorID,
	}
	if err := uc.communityRepo.Create(ctx, community); err != nil {
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	if err := uc.communityRepo.AddMember(ctx, &domain.CommunityMember{
		CommunityID: community.ID,
		UserID:      creatorID,
	}); err != nil {
		uc.log.Warn("failed to add creator as member",
			zap.String("community_id", community.ID.String()), zap.Error(err))
	}

	uc.seedSamplePosts(ctx, community.ID, creatorID)

	return community, nil
}

// seedSamplePosts is best-effort starter content, never fatal.
func (uc *CommunityUseCase) seedSamplePosts(ctx context.Context, communityID, userID uuid.UUID) {
	now := uc.now()
	posts := []*domain.CommunityPost{
		{
			CommunityID: communityID,
			UserID:      userID,
			Content:     "今天完成了5公里晨跑，感觉超棒！天气很好，推荐大家也出去运动一下。",
			LikesCount:  8,
			CreatedAt:   now.Add(-3 * time.Hour),
		},
		{
			CommunityID: communityID,
			UserID:      userID,
			Content:     "分享一个拉伸小技巧：运动后一定要做充分的拉伸，可以有效减少肌肉酸痛。我一般会拉伸10-15分钟。",
			LikesCount:  12,
			CreatedAt:   now.Add(-24 * time.Hour),
		},
	}
	for _, post := range posts {
		if err := uc.communityRepo.CreatePost(ctx, post); err != nil {
			uc.log.Warn("failed to seed community post",
				zap.String("community_id", communityID.String()), zap.Error(err))
		}
	}
}

// Detail bundles what the community page shows.
type Detail struct {
	Community *domain.Community         `json:"community"`
	Posts     []*domain.CommunityPost   `json:"posts"`
	Members   []*domain.CommunityMember `json:"members"`
	IsMember  bool                      `json:"is_member"`
}

func (uc *CommunityUseCase) GetDetail(ctx context.Context, communityID, userID uuid.UUID) (*Detail, error) {
	community, err := uc.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	posts, err := uc.communityRepo.ListPosts(ctx, communityID, postListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	members, err := uc.communityRepo.ListMembers(ctx, communityID, memberPreviewLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	isMember, err := uc.communityRepo.IsMember(ctx, communityID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	return &Detail{
		Community: community,
		Posts:     posts,
		Members:   members,
		IsMember:  isMember,
	}, nil
}

// Join adds the user and bumps the member counter. The counter update
// is cosmetic; its failure is logged, not surfaced.
func (uc *CommunityUseCase) Join(ctx context.Context, communityID, userID uuid.UUID) error {
	if _, err := uc.communityRepo.GetByID(ctx, communityID); err != nil {
		return err
	}

	isMember, err := uc.communityRepo.IsMember(ctx, communityID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return domain.ErrAlreadyMember
	}

	if err := uc.communityRepo.AddMember(ctx, &domain.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
	}); err != nil {
		return fmt.Errorf("failed to join community: %w", err)
	}

	if err := uc.communityRepo.IncrementMemberCount(ctx, communityID); err != nil {
		uc.log.Warn("failed to update member count",
			zap.String("community_id", communityID.String()), zap.Error(err))
	}

	return nil
}

// CreatePost publishes to a community the user belongs to. New posts
// start with a small random like count.
func (uc *CommunityUseCase) CreatePost(ctx context.Context, communityID, userID uuid.UUID, content string) (*domain.CommunityPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	post := &domain.CommunityPost{
		CommunityID: communityID,
		UserID:      userID,
		Content:     content,
		LikesCount:  5 + uc.intn(50),
	}
	if err := uc.communityRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListSkillExchanges returns the newest coaching-swap offers.
func (uc *CommunityUseCase) ListSkillExchanges(ctx context.Context) ([]*domain.SkillExchange, error) {
	return uc.exchangeRepo.List(ctx, exchangeListLimit)
}

func (uc *CommunityUseCase) CreateSkillExchange(ctx context.Context, userID uuid.UUID, offer, wanted string) (*domain.SkillExchange, error) {
	offer = strings.TrimSpace(offer)
	wanted = strings.TrimSpace(wanted)
	if offer == "" || wanted == "" {
		return nil, domain.ErrEmptyMessage
	}

	exchange := &domain.SkillExchange{
		UserID:      userID,
		SkillOffer:  offer,
		SkillWanted: wanted,
	}
	if err := uc.exchangeRepo.Create(ctx, exchange); err != nil {
		return nil, fmt.Errorf("failed to create skill exchange: %w", err)
	}

	return exchange, nil
}

func (uc *CommunityUseCase) intn(n int) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.rng.Intn(n)
}
