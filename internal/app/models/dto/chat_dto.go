package dto

import (
	"time"

	"github.com/yigit/unicommunity/internal/app/models"
)

// --- Request DTOs ---

// CreateChatRequest represents data for creating a new chat
type CreateChatRequest struct {
	Participants   Participants `json:"participants" swaggertype:"array,string" example:"alice,bob"`
	UniversityName string       `json:"university_name" example:"Bogazici University"`
}

// AddChatMemberRequest adds a student to a chat
type AddChatMemberRequest struct {
	StudentID int64 `json:"student_id" binding:"required,gt=0" example:"1"`
}

// PostMessageRequest stores a message in a chat
type PostMessageRequest struct {
	SenderKind string `json:"sender_kind" binding:"required" example:"student" enums:"student,professor"`
	SenderID   int64  `json:"sender_id" binding:"required,gt=0" example:"1"`
	Content    string `json:"content" binding:"required,max=1000" example:"Hello everyone"`
}

// --- Response DTOs ---

// CreateChatResponse is returned with 201 by chat creation
type CreateChatResponse struct {
	Message string `json:"message" example:"Chat created successfully"`
	ChatID  int64  `json:"chat_id" example:"1"`
}

// ChatSummary is one entry of a student's chat list
type ChatSummary struct {
	ChatID       int64    `json:"chat_id" example:"1"`
	Participants []string `json:"participants"`
}

// UserChatsResponse lists the chats a student belongs to
type UserChatsResponse struct {
	Chats []ChatSummary `json:"chats"`
}

// ChatResponse wraps a single chat
type ChatResponse struct {
	Chat *models.Chat `json:"chat"`
}

// MessageData is a stored message as returned to clients
type MessageData struct {
	ID        int64         `json:"id"`
	ChatID    int64         `json:"chat_id"`
	Sender    models.Sender `json:"sender"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
}

// PostMessageResponse is returned with 201 when a message is stored
type PostMessageResponse struct {
	Message string      `json:"message" example:"Message stored successfully"`
	Data    MessageData `json:"data"`
}

// MessageListResponse lists the messages of a chat
type MessageListResponse struct {
	Messages []MessageData `json:"messages"`
}

// ToChatSummaries converts chats into list entries, preserving order
func ToChatSummaries(chats []*models.Chat) []ChatSummary {
	summaries := make([]ChatSummary, 0, len(chats))
	for _, c := range chats {
		participants := c.Participants
		if participants == nil {
			participants = []string{}
		}
		summaries = append(summaries, ChatSummary{ChatID: c.ID, Participants: participants})
	}
	return summaries
}

// ToMessageData converts a models.Message to its response form
func ToMessageData(m *models.Message) MessageData {
	return MessageData{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Sender:    m.Sender,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ToMessageList converts messages, preserving order
func ToMessageList(messages []*models.Message) []MessageData {
	out := make([]MessageData, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageData(m))
	}
	return out
}
