package domain

import (
	"time"

	"github.com/google/uuid"
)

// AIConversation stores one user+assistant exchange as a single
// denormalized row, not two separate messages.
type AIConversation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
