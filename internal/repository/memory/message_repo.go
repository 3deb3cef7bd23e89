package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"reelhire-backend/internal/domain"
)

type messageRepo struct {
	mu       sync.RWMutex
	messages map[int64]domain.Message
	nextID   int64
}

// NewMessageRepository creates an in-memory message repository
func NewMessageRepository() domain.MessageRepository {
	return &messageRepo{messages: make(map[int64]domain.Message), nextID: 1}
}

func (r *messageRepo) Create(ctx context.Context, message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = r.nextID
	r.nextID++
	message.Read = false
	message.CreatedAt = time.Now()
	r.messages[message.ID] = *message
	return nil
}

func (r *messageRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var messages []domain.Message
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			messages = append(messages, m)
		}
	}
	sortOldestFirst(messages)
	return messages, nil
}

func (r *messageRepo) Conversation(ctx context.Context, user1ID, user2ID int64) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var messages []domain.Message
	for _, m := range r.messages {
		if (m.SenderID == user1ID && m.ReceiverID == user2ID) ||
			(m.SenderID == user2ID && m.ReceiverID == user1ID) {
			messages = append(messages, m)
		}
	}
	sortOldestFirst(messages)
	return messages, nil
}

func (r *messageRepo) MarkRead(ctx context.Context, senderID, receiverID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, m := range r.messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.Read {
			m.Read = true
			r.messages[id] = m
		}
	}
	return nil
}

func sortOldestFirst(messages []domain.Message) {
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
