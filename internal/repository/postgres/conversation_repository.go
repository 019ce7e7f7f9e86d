package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Insert(ctx context.Context, conv *domain.AIConversation) error {
	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO ai_conversations (id, user_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, conv.ID, conv.UserID, conv.Message, conv.Response, conv.CreatedAt)
	return err
}

func (r *conversationRepository) InsertBatch(ctx context.Context, convs []*domain.AIConversation) error {
	for _, conv := range convs {
		if err := r.Insert(ctx, conv); err != nil {
			return err
		}
	}
	return nil
}

func (r *conversationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AIConversation, error) {
	var convs []*domain.AIConversation
	query := `
		SELECT * FROM ai_conversations
		WHERE user_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &convs, query, userID, limit)
	return convs, err
}
