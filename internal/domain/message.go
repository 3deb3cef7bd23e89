package domain

import (
	"context"
	"time"
)

// Message is a directed chat message. Read starts false and flips to true
// only when the receiver fetches the conversation it belongs to.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversationSummary is one row of the caller's inbox: the other party,
// the latest message exchanged and how many of their messages the caller
// has not read yet.
type ConversationSummary struct {
	PartnerID   int64    `json:"partner_id"`
	LastMessage *Message `json:"last_message"`
	UnreadCount int      `json:"unread_count"`
}

// MessageRepository defines data access methods for messages
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	ListByUser(ctx context.Context, userID int64) ([]Message, error)
	// Conversation returns every message between the two users, oldest
	// first. The result is symmetric in its arguments.
	Conversation(ctx context.Context, user1ID, user2ID int64) ([]Message, error)
	// MarkRead flips the read flag on unread messages from senderID to
	// receiverID.
	MarkRead(ctx context.Context, senderID, receiverID int64) error
}

// MessageUsecase defines business logic for messaging
type MessageUsecase interface {
	Send(ctx context.Context, senderID, receiverID int64, content string) (*Message, error)
	// GetConversation returns the history with otherID and marks their
	// messages to the caller as read.
	GetConversation(ctx context.Context, userID, otherID int64) ([]Message, error)
	// ListConversations summarizes the caller's inbox, most recent first.
	ListConversations(ctx context.Context, userID int64) ([]ConversationSummary, error)
}
