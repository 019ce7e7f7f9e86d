package domain

import (
	"time"

	"github.com/google/uuid"
)

type Community struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CoverImage  string    `json:"cover_image" db:"cover_image"`
	Tags        []string  `json:"tags" db:"tags"`
	MemberCount int       `json:"member_count" db:"member_count"`
	CreatorID   uuid.UUID `json:"creator_id" db:"creator_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CommunityMember struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CommunityID uuid.UUID `json:"community_id" db:"community_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	JoinedAt    time.Time `json:"joined_at" db:"joined_at"`
	Username    *string   `json:"username,omitempty" db:"username"`
	AvatarURL   *string   `json:"avatar_url,omitempty" db:"avatar_url"`
}

type CommunityPost struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CommunityID uuid.UUID `json:"community_id" db:"community_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Content     string    `json:"content" db:"content"`
	LikesCount  int       `json:"likes_count" db:"likes_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Username    *string   `json:"username,omitempty" db:"username"`
	AvatarURL   *string   `json:"avatar_url,omitempty" db:"avatar_url"`
}

// SkillExchange is a community-hub offer to trade coaching skills.
type SkillExchange struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	SkillOffer  string    `json:"skill_offer" db:"skill_offer"`
	SkillWanted string    `json:"skill_wanted" db:"skill_wanted"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Username    *string   `json:"username,omitempty" db:"username"`
	AvatarURL   *string   `json:"avatar_url,omitempty" db:"avatar_url"`
}
