package postgres

import (
	"context"
	"time"

	"reelhire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new postgres message repository
func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

const messageColumns = `id, sender_id, receiver_id, content, read, created_at`

func (r *messageRepo) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, read, created_at)
		VALUES ($1, $2, $3, FALSE, $4)
		RETURNING id`

	message.Read = false
	message.CreatedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.CreatedAt,
	).Scan(&message.ID)
}

func (r *messageRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

func (r *messageRepo) Conversation(ctx context.Context, user1ID, user2ID int64) ([]domain.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query, user1ID, user2ID)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

func (r *messageRepo) MarkRead(ctx context.Context, senderID, receiverID int64) error {
	query := `UPDATE messages SET read = TRUE WHERE sender_id = $1 AND receiver_id = $2 AND read = FALSE`
	_, err := r.db.Exec(ctx, query, senderID, receiverID)
	return err
}

func collectMessages(rows pgx.Rows) ([]domain.Message, error) {
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
