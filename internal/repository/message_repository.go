package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *domain.Message) error
	// ListByUser returns every message the user sent or received, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error)
	// ListBetween returns the conversation between two users, oldest first.
	ListBetween(ctx context.Context, userID, partnerID uuid.UUID) ([]*domain.Message, error)
	// MarkRead marks everything partner sent to user as read.
	MarkRead(ctx context.Context, senderID, receiverID uuid.UUID) error
}
