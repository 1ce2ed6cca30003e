package services

import (
	"context"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/repositories"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
	"github.com/yigit/unicommunity/internal/pkg/events"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

// Services defined in this package:
// - RegistrationService: registers the six user types
// - ChatService: chat creation, membership, listing and messages
// - EnrollmentService: student ↔ course enrollment
// - UniversityRecordService: reviews and contacts attached to universities

// Transactor runs fn in a database transaction carried by the ctx passed to fn
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UniversityStore is the university persistence used by services
type UniversityStore interface {
	Create(ctx context.Context, university *models.University) (int64, error)
	GetByName(ctx context.Context, name string) (*models.University, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// FacultyStore is the faculty persistence used by services
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetByName(ctx context.Context, name string) (*models.Faculty, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// DepartmentStore is the department persistence used by services
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) (int64, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CourseStore is the course persistence used by services
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]*models.Course, error)
}

// StudentStore is the student persistence used by services
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindIDsByUsernames(ctx context.Context, usernames []string) (map[string]int64, error)
}

// ProfessorStore is the professor persistence used by services
type ProfessorStore interface {
	Create(ctx context.Context, professor *models.Professor) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ChatStore is the chat and membership persistence used by services
type ChatStore interface {
	Create(ctx context.Context, chat *models.Chat) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Chat, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Chat, error)
	UpdateParticipants(ctx context.Context, chatID int64, participants []string) error
	AddMember(ctx context.Context, studentID, chatID int64) (int64, error)
	IsMember(ctx context.Context, studentID, chatID int64) (bool, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]*models.Chat, error)
}

// MessageStore is the message persistence used by services
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) (int64, error)
	ListByChatID(ctx context.Context, chatID int64) ([]*models.Message, error)
}

// EnrollmentStore is the enrollment persistence used by services
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (int64, error)
}

// ReviewStore is the review persistence used by services
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) (int64, error)
}

// ContactStore is the contact persistence used by services
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) (int64, error)
}

// Services holds all service instances
type Services struct {
	RegistrationService     *RegistrationService
	ChatService             *ChatService
	EnrollmentService       *EnrollmentService
	UniversityRecordService *UniversityRecordService
}

// NewServices wires every service on top of the repositories
func NewServices(repos *repositories.Repositories, tx Transactor, publisher events.Publisher) *Services {
	return &Services{
		RegistrationService: NewRegistrationService(
			tx,
			repos.UniversityRepository,
			repos.FacultyRepository,
			repos.DepartmentRepository,
			repos.CourseRepository,
			repos.StudentRepository,
			repos.ProfessorRepository,
			repos.ChatRepository,
			publisher,
		),
		ChatService: NewChatService(
			tx,
			repos.ChatRepository,
			repos.MessageRepository,
			repos.UniversityRepository,
			repos.StudentRepository,
			repos.ProfessorRepository,
			publisher,
		),
		EnrollmentService:       NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository, publisher),
		UniversityRecordService: NewUniversityRecordService(repos.UniversityRepository, repos.ReviewRepository, repos.ContactRepository),
	}
}

// Shared user-facing errors
var (
	errIncompleteData     = apperrors.NewCustomError(apperrors.ErrIncompleteData, "Incomplete data provided")
	errUniversityNotFound = apperrors.NewNotFoundError("University not found")
	errStudentNotFound    = apperrors.NewNotFoundError("Student not found")
	errChatNotFound       = apperrors.NewNotFoundError("Chat not found")
)

// publish emits an event after a successful commit. Delivery failures are logged, never returned.
func publish(ctx context.Context, publisher events.Publisher, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.New(eventType, payload)); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("eventType", eventType).Msg("Failed to publish domain event")
	}
}
