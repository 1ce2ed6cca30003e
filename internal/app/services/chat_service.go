package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/repositories"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
	"github.com/yigit/unicommunity/internal/pkg/events"
	"github.com/yigit/unicommunity/internal/pkg/helpers"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

var (
	errProfessorNotFound = apperrors.NewNotFoundError("Professor not found")
	errInvalidSenderKind = apperrors.NewValidationError("Invalid sender kind, expected student or professor")
)

// ChatService manages chats, their student membership and stored messages.
// student_chats is the membership source of truth; Chat.Participants is kept
// in sync with it on every mutation.
type ChatService struct {
	tx           Transactor
	chats        ChatStore
	messages     MessageStore
	universities UniversityStore
	students     StudentStore
	professors   ProfessorStore
	publisher    events.Publisher
}

// NewChatService creates a new chat service
func NewChatService(
	tx Transactor,
	chats ChatStore,
	messages MessageStore,
	universities UniversityStore,
	students StudentStore,
	professors ProfessorStore,
	publisher events.Publisher,
) *ChatService {
	return &ChatService{
		tx:           tx,
		chats:        chats,
		messages:     messages,
		universities: universities,
		students:     students,
		professors:   professors,
		publisher:    publisher,
	}
}

// CreateChat stores a chat for the named university. Every participant that
// names an existing student (after username normalization) becomes a member.
func (s *ChatService) CreateChat(ctx context.Context, participants []string, universityName string) (*models.Chat, error) {
	if len(participants) == 0 || strings.TrimSpace(universityName) == "" {
		return nil, errIncompleteData
	}

	university, err := s.universities.GetByName(ctx, universityName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errUniversityNotFound
		}
		return nil, fmt.Errorf("error getting university: %w", err)
	}

	chat := &models.Chat{UniversityID: university.ID, Participants: participants}
	var members []int64

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.chats.Create(ctx, chat); err != nil {
			return err
		}

		usernames := make([]string, 0, len(participants))
		for _, p := range participants {
			usernames = append(usernames, helpers.NormalizeUsername(p))
		}
		ids, err := s.students.FindIDsByUsernames(ctx, usernames)
		if err != nil {
			return err
		}

		seen := make(map[int64]bool, len(ids))
		for _, username := range usernames {
			id, ok := ids[username]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			if _, err := s.chats.AddMember(ctx, id, chat.ID); err != nil {
				return err
			}
			members = append(members, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating chat: %w", err)
	}

	logger.Ctx(ctx).Info().
		Int64("chatID", chat.ID).
		Int64("universityID", chat.UniversityID).
		Int("members", len(members)).
		Msg("Chat created")
	publish(ctx, s.publisher, events.ChatCreated, map[string]interface{}{
		"chat_id":       chat.ID,
		"university_id": chat.UniversityID,
		"participants":  chat.Participants,
		"student_ids":   members,
	})

	return chat, nil
}

// GetChat retrieves a chat by id
func (s *ChatService) GetChat(ctx context.Context, chatID int64) (*models.Chat, error) {
	chat, err := s.chats.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errChatNotFound
		}
		return nil, fmt.Errorf("error getting chat: %w", err)
	}
	return chat, nil
}

// AddMember makes a student a member of a chat and appends their username to
// the participants list. It reports false when the student was already a member.
// The chat row stays locked from the first read until commit, so concurrent
// calls on one chat run the membership check and the participants rewrite one
// at a time.
func (s *ChatService) AddMember(ctx context.Context, chatID, studentID int64) (bool, error) {
	var added bool

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		chat, err := s.chats.GetByIDForUpdate(ctx, chatID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return errChatNotFound
			}
			return fmt.Errorf("error locking chat: %w", err)
		}

		student, err := s.students.GetByID(ctx, studentID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return errStudentNotFound
			}
			return fmt.Errorf("error getting student: %w", err)
		}

		member, err := s.chats.IsMember(ctx, studentID, chatID)
		if err != nil {
			return err
		}
		if !member {
			if _, err := s.chats.AddMember(ctx, studentID, chatID); err != nil {
				return err
			}
			added = true
		}

		if participants, changed := helpers.AppendParticipant(chat.Participants, student.Username); changed {
			return s.chats.UpdateParticipants(ctx, chatID, participants)
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return false, err
		}
		return false, fmt.Errorf("error adding chat member: %w", err)
	}

	if added {
		publish(ctx, s.publisher, events.ChatMemberAdded, map[string]interface{}{
			"chat_id":    chatID,
			"student_id": studentID,
		})
	}
	return added, nil
}

// ListStudentChats returns the chats of a student in membership order
func (s *ChatService) ListStudentChats(ctx context.Context, studentID int64) ([]*models.Chat, error) {
	found, err := s.students.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !found {
		return nil, errStudentNotFound
	}

	chats, err := s.chats.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student chats: %w", err)
	}
	return chats, nil
}

// PostMessage stores a message from a student or professor. Messages are only stored, never pushed.
func (s *ChatService) PostMessage(ctx context.Context, chatID int64, senderKind string, senderID int64, content string) (*models.Message, error) {
	if senderKind == "" || senderID <= 0 || strings.TrimSpace(content) == "" {
		return nil, errIncompleteData
	}

	kind, err := models.ParseSenderKind(senderKind)
	if err != nil {
		return nil, errInvalidSenderKind
	}

	if _, err := s.GetChat(ctx, chatID); err != nil {
		return nil, err
	}

	if err := s.checkSender(ctx, kind, senderID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ChatID:  chatID,
		Sender:  models.Sender{Kind: kind, ID: senderID},
		Content: content,
	}
	if _, err := s.messages.Create(ctx, message); err != nil {
		if errors.Is(err, repositories.ErrMissingParent) {
			return nil, errChatNotFound
		}
		return nil, fmt.Errorf("error storing message: %w", err)
	}

	publish(ctx, s.publisher, events.MessagePosted, map[string]interface{}{
		"message_id":  message.ID,
		"chat_id":     chatID,
		"sender_kind": kind,
		"sender_id":   senderID,
	})
	return message, nil
}

// ListMessages returns the messages of a chat in the order they were stored
func (s *ChatService) ListMessages(ctx context.Context, chatID int64) ([]*models.Message, error) {
	if _, err := s.GetChat(ctx, chatID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return messages, nil
}

func (s *ChatService) checkSender(ctx context.Context, kind models.SenderKind, id int64) error {
	var (
		found bool
		err   error
	)
	switch kind {
	case models.SenderStudent:
		found, err = s.students.ExistsByID(ctx, id)
	case models.SenderProfessor:
		found, err = s.professors.ExistsByID(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("error checking message sender: %w", err)
	}
	if !found {
		if kind == models.SenderProfessor {
			return errProfessorNotFound
		}
		return errStudentNotFound
	}
	return nil
}
