package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
	"github.com/yigit/unicommunity/internal/pkg/helpers"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

// ChatRepository handles chats and the student_chats membership table
type ChatRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(conn db.Provider) *ChatRepository {
	return &ChatRepository{conn: conn, sb: statementBuilder()}
}

// Create inserts a chat with its participants cache and returns the chat id
func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) (int64, error) {
	participants, err := helpers.EncodeParticipants(chat.Participants)
	if err != nil {
		return 0, fmt.Errorf("error encoding participants: %w", err)
	}

	sql, args, err := r.sb.Insert("chats").
		Columns("university_id", "participants").
		Values(chat.UniversityID, participants).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create chat query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&chat.ID, &chat.CreatedAt); err != nil {
		return 0, translateWriteError(err, "error creating chat")
	}

	logger.Ctx(ctx).Debug().Int64("chatID", chat.ID).Int64("universityID", chat.UniversityID).Msg("Chat created")
	return chat.ID, nil
}

// GetByID retrieves a chat with its decoded participants
func (r *ChatRepository) GetByID(ctx context.Context, id int64) (*models.Chat, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate retrieves a chat and locks its row until the surrounding
// transaction ends. Membership changes take this lock first so the
// participants cache is never rewritten from a stale read.
func (r *ChatRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Chat, error) {
	return r.getByID(ctx, id, true)
}

func (r *ChatRepository) getByID(ctx context.Context, id int64, lock bool) (*models.Chat, error) {
	query := r.sb.Select("id", "university_id", "participants", "created_at").
		From("chats").
		Where(squirrel.Eq{"id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get chat query: %w", err)
	}

	var raw []byte
	chat := &models.Chat{}
	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&chat.ID, &chat.UniversityID, &raw, &chat.CreatedAt)
	if err != nil {
		return nil, translateReadError(err, "error getting chat by ID")
	}

	if chat.Participants, err = helpers.DecodeParticipants(raw); err != nil {
		return nil, fmt.Errorf("error decoding participants of chat %d: %w", id, err)
	}
	return chat, nil
}

// UpdateParticipants rewrites the participants cache of a chat
func (r *ChatRepository) UpdateParticipants(ctx context.Context, chatID int64, participants []string) error {
	encoded, err := helpers.EncodeParticipants(participants)
	if err != nil {
		return fmt.Errorf("error encoding participants: %w", err)
	}

	sql, args, err := r.sb.Update("chats").
		Set("participants", encoded).
		Where(squirrel.Eq{"id": chatID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update participants query: %w", err)
	}

	tag, err := r.conn.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating chat participants: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddMember inserts a student_chats row and returns its id
func (r *ChatRepository) AddMember(ctx context.Context, studentID, chatID int64) (int64, error) {
	sql, args, err := r.sb.Insert("student_chats").
		Columns("student_id", "chat_id").
		Values(studentID, chatID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add member query: %w", err)
	}

	var id int64
	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, translateWriteError(err, "error adding chat member")
	}
	return id, nil
}

// IsMember checks whether the student already belongs to the chat
func (r *ChatRepository) IsMember(ctx context.Context, studentID, chatID int64) (bool, error) {
	return exists(ctx, r.conn, r.sb, "student_chats", squirrel.Eq{"student_id": studentID, "chat_id": chatID})
}

// ListByStudentID returns the chats of a student in membership insertion order
func (r *ChatRepository) ListByStudentID(ctx context.Context, studentID int64) ([]*models.Chat, error) {
	sql, args, err := r.sb.Select("c.id", "c.university_id", "c.participants", "c.created_at").
		From("student_chats sc").
		Join("chats c ON c.id = sc.chat_id").
		Where(squirrel.Eq{"sc.student_id": studentID}).
		OrderBy("sc.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list chats query: %w", err)
	}

	rows, err := r.conn.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying student chats: %w", err)
	}
	defer rows.Close()

	chats := []*models.Chat{}
	for rows.Next() {
		var raw []byte
		chat := &models.Chat{}
		if err := rows.Scan(&chat.ID, &chat.UniversityID, &raw, &chat.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning chat row: %w", err)
		}
		if chat.Participants, err = helpers.DecodeParticipants(raw); err != nil {
			return nil, fmt.Errorf("error decoding participants of chat %d: %w", chat.ID, err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat rows: %w", err)
	}
	return chats, nil
}
