package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
)

type CommunityRepository interface {
	Create(ctx context.Context, community *domain.Community) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error)
	List(ctx context.Context, limit int) ([]*domain.Community, error)
	AddMember(ctx context.Context, member *domain.CommunityMember) error
	IsMember(ctx context.Context, communityID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, communityID uuid.UUID, limit int) ([]*domain.CommunityMember, error)
	IncrementMemberCount(ctx context.Context, communityID uuid.UUID) error
	CreatePost(ctx context.Context, post *domain.CommunityPost) error
	ListPosts(ctx context.Context, communityID uuid.UUID, limit int) ([]*domain.CommunityPost, error)
}

type SkillExchangeRepository interface {
	Create(ctx context.Context, exchange *domain.SkillExchange) error
	List(ctx context.Context, limit int) ([]*domain.SkillExchange, error)
}
