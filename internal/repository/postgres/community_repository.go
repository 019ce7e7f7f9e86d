package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type communityRepository struct {
	db *sqlx.DB
}

func NewCommunityRepository(db *sqlx.DB) repository.CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *domain.Community) error {
	if community.ID == uuid.Nil {
		community.ID = uuid.New()
	}
	query := `
		INSERT INTO communities (id, name, description, cover_image, tags, member_count, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		community.ID, community.Name, community.Description, community.CoverImage,
		pq.Array(community.Tags), community.MemberCount, community.CreatorID,
	).Scan(&community.CreatedAt)
}

func (r *communityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	var community domain.Community
	query := `
		SELECT id, name, description, cover_image, tags, member_count, creator_id, created_at
		FROM communities WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&community.ID, &community.Name, &community.Description, &community.CoverImage,
		pq.Array(&community.Tags), &community.MemberCount, &community.CreatorID, &community.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommunityNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) List(ctx context.Context, limit int) ([]*domain.Community, error) {
	query := `
		SELECT id, name, description, cover_image, tags, member_count, creator_id, created_at
		FROM communities
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var communities []*domain.Community
	for rows.Next() {
		var community domain.Community
		if err := rows.Scan(
			&community.ID, &community.Name, &community.Description, &community.CoverImage,
			pq.Array(&community.Tags), &community.MemberCount, &community.CreatorID, &community.CreatedAt,
		); err != nil {
			return nil, err
		}
		communities = append(communities, &community)
	}
	return communities, rows.Err()
}

func (r *communityRepository) AddMember(ctx context.Context, member *domain.CommunityMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	query := `
		INSERT INTO community_members (id, community_id, user_id, joined_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, member.ID, member.CommunityID, member.UserID, member.JoinedAt)
	return err
}

func (r *communityRepository) IsMember(ctx context.Context, communityID, userID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM community_members WHERE community_id = $1 AND user_id = $2`
	if err := r.db.GetContext(ctx, &count, query, communityID, userID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *communityRepository) ListMembers(ctx context.Context, communityID uuid.UUID, limit int) ([]*domain.CommunityMember, error) {
	var members []*domain.CommunityMember
	query := `
		SELECT m.id, m.community_id, m.user_id, m.joined_at, p.username, p.avatar_url
		FROM community_members m
		LEFT JOIN user_profiles p ON p.id = m.user_id
		WHERE m.community_id = $1
		ORDER BY m.joined_at ASC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &members, query, communityID, limit)
	return members, err
}

func (r *communityRepository) IncrementMemberCount(ctx context.Context, communityID uuid.UUID) error {
	query := `UPDATE communities SET member_count = member_count + 1 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, communityID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCommunityNotFound
	}
	return nil
}

func (r *communityRepository) CreatePost(ctx context.Context, post *domain.CommunityPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO community_posts (id, community_id, user_id, content, likes_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, post.ID, post.CommunityID, post.UserID, post.Content, post.LikesCount, post.CreatedAt)
	return err
}

func (r *communityRepository) ListPosts(ctx context.Context, communityID uuid.UUID, limit int) ([]*domain.CommunityPost, error) {
	var posts []*domain.CommunityPost
	query := `
		SELECT po.id, po.community_id, po.user_id, po.content, po.likes_count, po.created_at,
		       p.username, p.avatar_url
		FROM community_posts po
		LEFT JOIN user_profiles p ON p.id = po.user_id
		WHERE po.community_id = $1
		ORDER BY po.created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &posts, query, communityID, limit)
	return posts, err
}

type skillExchangeRepository struct {
	db *sqlx.DB
}

func NewSkillExchangeRepository(db *sqlx.DB) repository.SkillExchangeRepository {
	return &skillExchangeRepository{db: db}
}

func (r *skillExchangeRepository) Create(ctx context.Context, exchange *domain.SkillExchange) error {
	if exchange.ID == uuid.Nil {
		exchange.ID = uuid.New()
	}
	query := `
		INSERT INTO skill_exchanges (id, user_id, skill_offer, skill_wanted)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, exchange.ID, exchange.UserID, exchange.SkillOffer, exchange.SkillWanted).
		Scan(&exchange.CreatedAt)
}

func (r *skillExchangeRepository) List(ctx context.Context, limit int) ([]*domain.SkillExchange, error) {
	var exchanges []*domain.SkillExchange
	query := `
		SELECT s.id, s.user_id, s.skill_offer, s.skill_wanted, s.created_at,
		       p.username, p.avatar_url
		FROM skill_exchanges s
		LEFT JOIN user_profiles p ON p.id = s.user_id
		ORDER BY s.created_at DESC
		LIMIT $1
	`
	err := r.db.SelectContext(ctx, &exchanges, query, limit)
	return exchanges, err
}
