package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/middleware"
)

// ChatController handles chat creation, membership, listing and messages
type ChatController struct {
	chats ChatManager
}

// NewChatController creates a new ChatController
func NewChatController(chats ChatManager) *ChatController {
	return &ChatController{chats: chats}
}

// CreateChat handles chat creation
// @Summary Create a chat
// @Description Creates a chat for a university. Participants naming existing students become members.
// @Tags chats
// @Accept json
// @Produce json
// @Param request body dto.CreateChatRequest true "Chat data"
// @Success 201 {object} dto.CreateChatResponse "Chat created successfully"
// @Failure 400 {object} dto.ErrorResponse "Incomplete data provided"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /create_chat [post]
func (c *ChatController) CreateChat(ctx *gin.Context) {
	var req dto.CreateChatRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	chat, err := c.chats.CreateChat(ctx.Request.Context(), req.Participants, req.UniversityName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateChatResponse{
		Message: "Chat created successfully",
		ChatID:  chat.ID,
	})
}

// GetUserChats lists the chats of a student
// @Summary List a student's chats
// @Description Returns the chats the student is a member of, in the order the memberships were created
// @Tags chats
// @Produce json
// @Param student_id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.UserChatsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/{student_id}/chats [get]
func (c *ChatController) GetUserChats(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	chats, err := c.chats.ListStudentChats(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserChatsResponse{Chats: dto.ToChatSummaries(chats)})
}

// GetChat retrieves a chat by id
// @Summary Get chat details
// @Tags chats
// @Produce json
// @Param chat_id path int true "Chat ID" Format(int64) minimum(1)
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid chat id"
// @Failure 404 {object} dto.ErrorResponse "Chat not found"
// @Router /chats/{chat_id} [get]
func (c *ChatController) GetChat(ctx *gin.Context) {
	chatID, ok := middleware.ParseIDParam(ctx, "chat_id")
	if !ok {
		return
	}

	chat, err := c.chats.GetChat(ctx.Request.Context(), chatID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Chat: chat})
}

// AddMember adds a student to a chat
// @Summary Add a student to a chat
// @Description Adds the membership and appends the student's username to the participants list. Adding an existing member is a no-op.
// @Tags chats
// @Accept json
// @Produce json
// @Param chat_id path int true "Chat ID" Format(int64) minimum(1)
// @Param request body dto.AddChatMemberRequest true "Student to add"
// @Success 201 {object} dto.MessageResponse "Member added"
// @Success 200 {object} dto.MessageResponse "Already a member"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Chat or student not found"
// @Router /chats/{chat_id}/members [post]
func (c *ChatController) AddMember(ctx *gin.Context) {
	chatID, ok := middleware.ParseIDParam(ctx, "chat_id")
	if !ok {
		return
	}

	var req dto.AddChatMemberRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	added, err := c.chats.AddMember(ctx.Request.Context(), chatID, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !added {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student is already a member of this chat"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Member added successfully"})
}

// PostMessage stores a message in a chat
// @Summary Post a message
// @Description Stores a message from a student or professor. Messages are not pushed to other members.
// @Tags chats
// @Accept json
// @Produce json
// @Param chat_id path int true "Chat ID" Format(int64) minimum(1)
// @Param request body dto.PostMessageRequest true "Message"
// @Success 201 {object} dto.PostMessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Chat or sender not found"
// @Router /chats/{chat_id}/messages [post]
func (c *ChatController) PostMessage(ctx *gin.Context) {
	chatID, ok := middleware.ParseIDParam(ctx, "chat_id")
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	message, err := c.chats.PostMessage(ctx.Request.Context(), chatID, req.SenderKind, req.SenderID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PostMessageResponse{
		Message: "Message stored successfully",
		Data:    dto.ToMessageData(message),
	})
}

// ListMessages lists the messages of a chat
// @Summary List chat messages
// @Tags chats
// @Produce json
// @Param chat_id path int true "Chat ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid chat id"
// @Failure 404 {object} dto.ErrorResponse "Chat not found"
// @Router /chats/{chat_id}/messages [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	chatID, ok := middleware.ParseIDParam(ctx, "chat_id")
	if !ok {
		return
	}

	messages, err := c.chats.ListMessages(ctx.Request.Context(), chatID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageListResponse{Messages: dto.ToMessageList(messages)})
}
