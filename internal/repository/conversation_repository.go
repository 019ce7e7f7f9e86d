package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
)

type ConversationRepository interface {
	Insert(ctx context.Context, conv *domain.AIConversation) error
	InsertBatch(ctx context.Context, convs []*domain.AIConversation) error
	// ListByUser returns the oldest limit exchanges, ascending by created_at.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AIConversation, error)
}
