package models

import (
	"fmt"
	"time"
)

// Chat is a university-scoped thread. Participants is a display list kept in
// sync with the StudentChat rows; membership queries use StudentChat.
type Chat struct {
	ID           int64     `json:"id"`
	UniversityID int64     `json:"university_id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudentChat records that a student is a member of a chat
type StudentChat struct {
	ID        int64 `json:"id"`
	StudentID int64 `json:"student_id"`
	ChatID    int64 `json:"chat_id"`
}

// SenderKind tags which table a message sender id refers to
type SenderKind string

const (
	SenderStudent   SenderKind = "student"
	SenderProfessor SenderKind = "professor"
)

// ParseSenderKind validates a wire value
func ParseSenderKind(s string) (SenderKind, error) {
	switch SenderKind(s) {
	case SenderStudent, SenderProfessor:
		return SenderKind(s), nil
	default:
		return "", fmt.Errorf("unknown sender kind %q", s)
	}
}

// Sender identifies the author of a message
type Sender struct {
	Kind SenderKind `json:"kind"`
	ID   int64      `json:"id"`
}

// Message is a stored chat message. Messages are never pushed to clients.
type Message struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
