package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	profileRepo repository.ProfileRepository
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	profileRepo repository.ProfileRepository,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
	}
}

// Partner is one row of the inbox: the latest exchange with a user and
// how many of their messages are still unread.
type Partner struct {
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	UnreadCount int       `json:"unread_count"`
}

// Partners folds the user's message stream into one inbox row per
// conversation partner, newest conversation first. Partners whose
// profile no longer exists are shown under a placeholder name rather
// than dropped.
func (uc *MessageUseCase) Partners(ctx context.Context, userID uuid.UUID) ([]*Partner, error) {
	msgs, err := uc.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	partners := make([]*Partner, 0)
	index := make(map[uuid.UUID]*Partner)
	for _, msg := range msgs {
		partnerID := msg.PartnerID(userID)
		entry, ok := index[partnerID]
		if !ok {
			// Messages arrive newest first, so the first sighting
			// carries the conversation preview.
			entry = &Partner{
				UserID:      partnerID,
				LastMessage: msg.Content,
				LastAt:      msg.CreatedAt,
			}
			index[partnerID] = entry
			partners = append(partners, entry)
		}
		if msg.ReceiverID == userID && !msg.Read {
			entry.UnreadCount++
		}
	}

	for _, entry := range partners {
		profile, err := uc.profileRepo.GetByID(ctx, entry.UserID)
		if errors.Is(err, domain.ErrProfileNotFound) {
			entry.Username = "未知用户"
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load partner profile: %w", err)
		}
		entry.Username = profile.Username
		entry.AvatarURL = profile.AvatarURL
	}

	return partners, nil
}

// Chat returns the full conversation with a partner, oldest first, and
// marks the partner's messages as read.
func (uc *MessageUseCase) Chat(ctx context.Context, userID, partnerID uuid.UUID) ([]*domain.Message, error) {
	msgs, err := uc.messageRepo.ListBetween(ctx, userID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	if err := uc.messageRepo.MarkRead(ctx, partnerID, userID); err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}

	return msgs, nil
}

// Send delivers a message to another user.
func (uc *MessageUseCase) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	if _, err := uc.profileRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := uc.messageRepo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return msg, nil
}
