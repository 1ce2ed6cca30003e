package controllers

import (
	"context"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/models/dto"
)

// Registrar registers every user type behind POST /register
type Registrar interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

// ChatManager is the chat behaviour used by ChatController
type ChatManager interface {
	CreateChat(ctx context.Context, participants []string, universityName string) (*models.Chat, error)
	GetChat(ctx context.Context, chatID int64) (*models.Chat, error)
	AddMember(ctx context.Context, chatID, studentID int64) (bool, error)
	ListStudentChats(ctx context.Context, studentID int64) ([]*models.Chat, error)
	PostMessage(ctx context.Context, chatID int64, senderKind string, senderID int64, content string) (*models.Message, error)
	ListMessages(ctx context.Context, chatID int64) ([]*models.Message, error)
}

// Enroller is the enrollment behaviour used by EnrollmentController
type Enroller interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	ListStudentCourses(ctx context.Context, studentID int64) ([]*models.Course, error)
}

// UniversityRecorder stores reviews and contacts
type UniversityRecorder interface {
	CreateReview(ctx context.Context, universityName, content string) (*models.Review, error)
	CreateContact(ctx context.Context, universityName string, contact *models.Contact) (*models.Contact, error)
}
