package community

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"go.uber.org/zap"
)

type stubCommunityRepo struct {
	communities map[uuid.UUID]*domain.Community
	members     []*domain.CommunityMember
	posts       []*domain.CommunityPost
	incremented []uuid.UUID
	addErr      error
	incErr      error
}

func newStubCommunityRepo() *stubCommunityRepo {
	return &stubCommunityRepo{communities: make(map[uuid.UUID]*domain.Community)}
}

func (s *stubCommunityRepo) Create(_ context.Context, community *domain.Community) error {
	community.ID = uuid.New()
	s.communities[community.ID] = community
	return nil
}

func (s *stubCommunityRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Community, error) {
	community, ok := s.communities[id]
	if !ok {
		return nil, domain.ErrCommunityNotFound
	}
	return community, nil
}

func (s *stubCommunityRepo) List(_ context.Context, limit int) ([]*domain.Community, error) {
	out := make([]*domain.Community, 0)
	for _, c := range s.communities {
		if len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCommunityRepo) AddMember(_ context.Context, member *domain.CommunityMember) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.members = append(s.members, member)
	return nil
}

func (s *stubCommunityRepo) IsMember(_ context.Context, communityID, userID uuid.UUID) (bool, error) {
	for _, m := range s.members {
		if m.CommunityID == communityID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubCommunityRepo) ListMembers(_ context.Context, communityID uuid.UUID, limit int) ([]*domain.CommunityMember, error) {
	out := make([]*domain.CommunityMember, 0)
	for _, m := range s.members {
		if m.CommunityID == communityID && len(out) < limit {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubCommunityRepo) IncrementMemberCount(_ context.Context, communityID uuid.UUID) error {
	if s.incErr != nil {
		return s.incErr
	}
	s.incremented = append(s.incremented, communityID)
	return nil
}

func (s *stubCommunityRepo) CreatePost(_ context.Context, post *domain.CommunityPost) error {
	post.ID = uuid.New()
	s.posts = append(s.posts, post)
	return nil
}

func (s *stubCommunityRepo) ListPosts(_ context.Context, communityID uuid.UUID, limit int) ([]*domain.CommunityPost, error) {
	out := make([]*domain.CommunityPost, 0)
	for _, p := range s.posts {
		if p.CommunityID == communityID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubExchangeRepo struct {
	exchanges []*domain.SkillExchange
}

func (s *stubExchangeRepo) Create(_ context.Context, exchange *domain.SkillExchange) error {
	exchange.ID = uuid.New()
	s.exchanges = append(s.exchanges, exchange)
	return nil
}

func (s *stubExchangeRepo) List(_ context.Context, limit int) ([]*domain.SkillExchange, error) {
	if len(s.exchanges) > limit {
		return s.exchanges[:limit], nil
	}
	return s.exchanges, nil
}

func newTestUseCase(repo *stubCommunityRepo, exchanges *stubExchangeRepo) *CommunityUseCase {
	uc := NewCommunityUseCase(repo, exchanges, zap.NewNop())
	uc.rng = rand.New(rand.NewSource(7))
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestCreateCommunity(t *testing.T) {
	repo := newStubCommunityRepo()
	uc := newTestUseCase(repo, &stubExchangeRepo{})
	creatorID := uuid.New()

	community, err := uc.Create(context.Background(), creatorID, &CreateCommunityRequest{
		Name: "晨跑俱乐部",
		Tags: "跑步, 晨练 ,健康",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if community.MemberCount != 1 {
		t.Errorf("MemberCount = %d, want 1", community.MemberCount)
	}
	if len(community.Tags) != 3 || community.Tags[1] != "晨练" {
		t.Errorf("tags should be split and trimmed: %v", community.Tags)
	}
	if len(repo.members) != 1 || repo.members[0].UserID != creatorID {
		t.Error("creator should be added as first member")
	}
	if len(repo.posts) != 2 {
		t.Fatalf("expected 2 sample posts, got %d", len(repo.posts))
	}
	if repo.posts[0].LikesCount != 8 || repo.posts[1].LikesCount != 12 {
		t.Errorf("sample post likes = %d, %d", repo.posts[0].LikesCount, repo.posts[1].LikesCount)
	}
}

func TestCreateCommunitySurvivesSeedFailure(t *testing.T) {
	repo := newStubCommunityRepo()
	repo.addErr = errors.New("db down")
	uc := newTestUseCase(repo, &stubExchangeRepo{})

	community, err := uc.Create(context.Background(), uuid.New(), &CreateCommunityRequest{Name: "测试"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if community.ID == uuid.Nil {
		t.Error("community should exist even when membership seeding fails")
	}
}

func TestJoin(t *testing.T) {
	repo := newStubCommunityRepo()
	uc := newTestUseCase(repo, &stubExchangeRepo{})
	creatorID, userID := uuid.New(), uuid.New()

	community, err := uc.Create(context.Background(), creatorID, &CreateCommunityRequest{Name: "俱乐部"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := uc.Join(context.Background(), community.ID, userID); err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if len(repo.members) != 2 {
		t.Errorf("members = %d, want 2", len(repo.members))
	}
	if len(repo.incremented) != 1 {
		t.Errorf("member count increments = %d, want 1", len(repo.incremented))
	}

	if err := uc.Join(context.Background(), community.ID, userID); !errors.Is(err, domain.ErrAlreadyMember) {
		t.Errorf("second Join() error = %v, want ErrAlreadyMember", err)
	}
	if err := uc.Join(context.Background(), uuid.New(), userID); !errors.Is(err, domain.ErrCommunityNotFound) {
		t.Errorf("unknown community: error = %v, want ErrCommunityNotFound", err)
	}
}

func TestJoinSurvivesCounterFailure(t *testing.T) {
	repo := newStubCommunityRepo()
	repo.incErr = errors.New("db down")
	uc := newTestUseCase(repo, &stubExchangeRepo{})

	community, err := uc.Create(context.Background(), uuid.New(), &CreateCommunityRequest{Name: "俱乐部"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := uc.Join(context.Background(), community.ID, uuid.New()); err != nil {
		t.Errorf("Join() should tolerate the counter failure, got %v", err)
	}
}

func TestGetDetail(t *testing.T) {
	repo := newStubCommunityRepo()
	uc := newTestUseCase(repo, &stubExchangeRepo{})
	creatorID, visitorID := uuid.New(), uuid.New()

	community, err := uc.Create(context.Background(), creatorID, &CreateCommunityRequest{Name: "俱乐部"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	detail, err := uc.GetDetail(context.Background(), community.ID, creatorID)
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if !detail.IsMember {
		t.Error("creator should be a member")
	}
	if len(detail.Posts) != 2 {
		t.Errorf("posts = %d, want 2", len(detail.Posts))
	}

	detail, err = uc.GetDetail(context.Background(), community.ID, visitorID)
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if detail.IsMember {
		t.Error("visitor should not be a member")
	}
}

func TestCreatePost(t *testing.T) {
	repo := newStubCommunityRepo()
	uc := newTestUseCase(repo, &stubExchangeRepo{})
	communityID, userID := uuid.New(), uuid.New()

	post, err := uc.CreatePost(context.Background(), communityID, userID, " 今天完成10公里！ ")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if post.Content != "今天完成10公里！" {
		t.Errorf("content should be trimmed, got %q", post.Content)
	}
	if post.LikesCount < 5 || post.LikesCount >= 55 {
		t.Errorf("likes %d out of [5,55)", post.LikesCount)
	}

	if _, err := uc.CreatePost(context.Background(), communityID, userID, "  "); !errors.Is(err, domain.ErrEmptyMessage) {
		t.Errorf("blank post: error = %v, want ErrEmptyMessage", err)
	}
}

func TestSkillExchange(t *testing.T) {
	exchanges := &stubExchangeRepo{}
	uc := newTestUseCase(newStubCommunityRepo(), exchanges)
	userID := uuid.New()

	exchange, err := uc.CreateSkillExchange(context.Background(), userID, "游泳指导", "瑜伽入门")
	if err != nil {
		t.Fatalf("CreateSkillExchange() error = %v", err)
	}
	if exchange.SkillOffer != "游泳指导" || exchange.SkillWanted != "瑜伽入门" {
		t.Errorf("exchange = %+v", exchange)
	}

	if _, err := uc.CreateSkillExchange(context.Background(), userID, "  ", "瑜伽"); !errors.Is(err, domain.ErrEmptyMessage) {
		t.Errorf("blank offer: error = %v, want ErrEmptyMessage", err)
	}

	listed, err := uc.ListSkillExchanges(context.Background())
	if err != nil {
		t.Fatalf("ListSkillExchanges() error = %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed = %d, want 1", len(listed))
	}
}
