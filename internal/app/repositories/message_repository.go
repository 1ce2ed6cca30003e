package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
)

// MessageRepository handles chat message storage
type MessageRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(conn db.Provider) *MessageRepository {
	return &MessageRepository{conn: conn, sb: statementBuilder()}
}

// Create stores a message and fills its id and created_at
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (int64, error) {
	sql, args, err := r.sb.Insert("messages").
		Columns("chat_id", "sender_kind", "sender_id", "content").
		Values(message.ChatID, string(message.Sender.Kind), message.Sender.ID, message.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create message query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&message.ID, &message.CreatedAt); err != nil {
		return 0, translateWriteError(err, "error creating message")
	}
	return message.ID, nil
}

// ListByChatID returns the messages of a chat in insertion order
func (r *MessageRepository) ListByChatID(ctx context.Context, chatID int64) ([]*models.Message, error) {
	sql, args, err := r.sb.Select("id", "chat_id", "sender_kind", "sender_id", "content", "created_at").
		From("messages").
		Where(squirrel.Eq{"chat_id": chatID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.conn.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		var kind string
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.ChatID, &kind, &m.Sender.ID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		m.Sender.Kind = models.SenderKind(kind)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}
