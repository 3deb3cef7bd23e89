package usecase

import (
	"context"
	"sort"

	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	userRepo    domain.UserRepository
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(messageRepo domain.MessageRepository, userRepo domain.UserRepository) domain.MessageUsecase {
	return &messageUsecase{messageRepo: messageRepo, userRepo: userRepo}
}

func (uc *messageUsecase) Send(ctx context.Context, senderID, receiverID int64, content string) (*domain.Message, error) {
	if senderID == receiverID {
		return nil, apperror.BadRequest("Cannot message yourself")
	}
	if _, err := uc.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, apperror.NotFound("Receiver not found")
	}

	message := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, apperror.Internal(err)
	}
	return message, nil
}

// GetConversation returns the history with otherID oldest first. Fetching
// is what flips the read flag: the other party's messages to the caller are
// marked read, never the caller's own.
func (uc *messageUsecase) GetConversation(ctx context.Context, userID, otherID int64) ([]domain.Message, error) {
	messages, err := uc.messageRepo.Conversation(ctx, userID, otherID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uc.messageRepo.MarkRead(ctx, otherID, userID); err != nil {
		return nil, apperror.Internal(err)
	}

	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

// ListConversations groups the caller's messages by partner, most recently
// active conversation first.
func (uc *messageUsecase) ListConversations(ctx context.Context, userID int64) ([]domain.ConversationSummary, error) {
	messages, err := uc.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byPartner := make(map[int64]*domain.ConversationSummary)
	for i := range messages {
		m := messages[i]
		partnerID := m.SenderID
		if partnerID == userID {
			partnerID = m.ReceiverID
		}

		summary, ok := byPartner[partnerID]
		if !ok {
			summary = &domain.ConversationSummary{PartnerID: partnerID}
			byPartner[partnerID] = summary
		}
		summary.LastMessage = &messages[i] // ListByUser is oldest first
		if m.ReceiverID == userID && !m.Read {
			summary.UnreadCount++
		}
	}

	summaries := make([]domain.ConversationSummary, 0, len(byPartner))
	for _, s := range byPartner {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})
	return summaries, nil
}
