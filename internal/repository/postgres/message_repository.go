package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(ctx context.Context, message *domain.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.SenderID, message.ReceiverID, message.Content, message.Read, message.CreatedAt)
	return err
}

func (r *messageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &messages, query, userID)
	return messages, err
}

func (r *messageRepository) ListBetween(ctx context.Context, userID, partnerID uuid.UUID) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, userID, partnerID)
	return messages, err
}

func (r *messageRepository) MarkRead(ctx context.Context, senderID, receiverID uuid.UUID) error {
	query := `UPDATE messages SET read = true WHERE sender_id = $1 AND receiver_id = $2 AND read = false`
	_, err := r.db.ExecContext(ctx, query, senderID, receiverID)
	return err
}
