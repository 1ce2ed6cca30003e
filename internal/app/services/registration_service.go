package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/app/repositories"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
	"github.com/yigit/unicommunity/internal/pkg/auth"
	"github.com/yigit/unicommunity/internal/pkg/events"
	"github.com/yigit/unicommunity/internal/pkg/helpers"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

var (
	errDuplicateUsername  = apperrors.NewCustomError(apperrors.ErrDuplicateUsername, "Username already exists")
	errInvalidUserType    = apperrors.NewCustomError(apperrors.ErrInvalidUserType, "Invalid user type")
	errUniversityExists   = apperrors.NewAlreadyExistsError("University already exists")
	errFacultyExists      = apperrors.NewAlreadyExistsError("Faculty already exists")
	errDepartmentExists   = apperrors.NewAlreadyExistsError("Department already exists")
	errFacultyNotFound    = apperrors.NewNotFoundError("Faculty not found")
	errDepartmentNotFound = apperrors.NewNotFoundError("Department not found")
	errInvalidDate        = apperrors.NewValidationError("Invalid enrollment_date, expected YYYY-MM-DD")
)

// Column limits of migrations/001_init.sql
const (
	maxNameLength    = 100
	maxPhoneLength   = 20
	// bcrypt ignores input past 72 bytes and x/crypto rejects it
	maxPasswordBytes = 72
)

// RegistrationService registers students, professors and the university hierarchy
type RegistrationService struct {
	tx           Transactor
	universities UniversityStore
	faculties    FacultyStore
	departments  DepartmentStore
	courses      CourseStore
	students     StudentStore
	professors   ProfessorStore
	chats        ChatStore
	publisher    events.Publisher
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	tx Transactor,
	universities UniversityStore,
	faculties FacultyStore,
	departments DepartmentStore,
	courses CourseStore,
	students StudentStore,
	professors ProfessorStore,
	chats ChatStore,
	publisher events.Publisher,
) *RegistrationService {
	return &RegistrationService{
		tx:           tx,
		universities: universities,
		faculties:    faculties,
		departments:  departments,
		courses:      courses,
		students:     students,
		professors:   professors,
		chats:        chats,
		publisher:    publisher,
	}
}

// Register dispatches on req.UserType
func (s *RegistrationService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	switch models.UserType(req.UserType) {
	case models.UserTypeStudent:
		return s.registerStudent(ctx, req)
	case models.UserTypeProfessor:
		return s.registerProfessor(ctx, req)
	case models.UserTypeUniversity:
		return s.registerUniversity(ctx, req)
	case models.UserTypeFaculty:
		return s.registerFaculty(ctx, req)
	case models.UserTypeDepartment:
		return s.registerDepartment(ctx, req)
	case models.UserTypeCourse:
		return s.registerCourse(ctx, req)
	default:
		return nil, errInvalidUserType
	}
}

func (s *RegistrationService) registerStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if anyBlank(req.FullName, req.Username, string(req.PhoneNumber), req.Password, req.EnrollmentDate) {
		return nil, errIncompleteData
	}

	username := helpers.NormalizeUsername(req.Username)
	if username == "" {
		return nil, errIncompleteData
	}
	if err := checkUserLengths(req, username); err != nil {
		return nil, err
	}

	enrollmentDate, err := helpers.ParseDate(req.EnrollmentDate)
	if err != nil {
		return nil, errInvalidDate
	}

	taken, err := s.students.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking student username: %w", err)
	}
	if taken {
		return nil, errDuplicateUsername
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	phone := string(req.PhoneNumber)
	student := &models.Student{
		FullName:       req.FullName,
		Username:       username,
		PasswordHash:   hash,
		PhoneNumber:    &phone,
		EnrollmentDate: enrollmentDate,
	}
	if _, err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errDuplicateUsername
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	publish(ctx, s.publisher, events.StudentRegistered, map[string]interface{}{
		"id":       student.ID,
		"username": student.Username,
	})

	return &dto.RegisterResponse{
		Message: "Student registration successful",
		User:    dto.NewStudentResponse(student),
	}, nil
}

func (s *RegistrationService) registerProfessor(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if anyBlank(req.FullName, req.Username, string(req.PhoneNumber), req.Password) {
		return nil, errIncompleteData
	}

	username := helpers.NormalizeUsername(req.Username)
	if username == "" {
		return nil, errIncompleteData
	}
	if err := checkUserLengths(req, username); err != nil {
		return nil, err
	}

	taken, err := s.professors.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking professor username: %w", err)
	}
	if taken {
		return nil, errDuplicateUsername
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	phone := string(req.PhoneNumber)
	professor := &models.Professor{
		FullName:     req.FullName,
		Username:     username,
		PasswordHash: hash,
		PhoneNumber:  &phone,
	}
	if _, err := s.professors.Create(ctx, professor); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errDuplicateUsername
		}
		return nil, fmt.Errorf("error creating professor: %w", err)
	}

	publish(ctx, s.publisher, events.ProfessorRegistered, map[string]interface{}{
		"id":       professor.ID,
		"username": professor.Username,
	})

	return &dto.RegisterResponse{
		Message: "Professor registration successful",
		User:    dto.NewProfessorResponse(professor),
	}, nil
}

// registerUniversity creates the university and its default chat in one transaction
func (s *RegistrationService) registerUniversity(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if anyBlank(req.Name) {
		return nil, errIncompleteData
	}
	if err := checkLength("name", req.Name, maxNameLength); err != nil {
		return nil, err
	}

	taken, err := s.universities.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking university name: %w", err)
	}
	if taken {
		return nil, errUniversityExists
	}

	university := &models.University{Name: req.Name}
	chat := &models.Chat{Participants: []string{req.Name}}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		universityID, err := s.universities.Create(ctx, university)
		if err != nil {
			return err
		}
		chat.UniversityID = universityID
		_, err = s.chats.Create(ctx, chat)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errUniversityExists
		}
		return nil, fmt.Errorf("error creating university: %w", err)
	}

	logger.Ctx(ctx).Info().Int64("universityID", university.ID).Int64("chatID", chat.ID).Msg("University registered with default chat")
	publish(ctx, s.publisher, events.UniversityRegistered, map[string]interface{}{
		"id":      university.ID,
		"name":    university.Name,
		"chat_id": chat.ID,
	})

	return &dto.RegisterResponse{Message: "University registration successful"}, nil
}

func (s *RegistrationService) registerFaculty(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if anyBlank(req.Name, req.UniversityName) {
		return nil, errIncompleteData
	}
	if err := checkLength("name", req.Name, maxNameLength); err != nil {
		return nil, err
	}

	university, err := s.universities.GetByName(ctx, req.UniversityName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errUniversityNotFound
		}
		return nil, fmt.Errorf("error getting university: %w", err)
	}

	taken, err := s.faculties.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking faculty name: %w", err)
	}
	if taken {
		return nil, errFacultyExists
	}

	faculty := &models.Faculty{Name: req.Name, UniversityID: university.ID}
	if _, err := s.faculties.Create(ctx, faculty); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, errFacultyExists
		case errors.Is(err, repositories.ErrMissingParent):
			return nil, errUniversityNotFound
		}
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	publish(ctx, s.publisher, events.FacultyRegistered, map[string]interface{}{
		"id":            faculty.ID,
		"name":          faculty.Name,
		"university_id": faculty.UniversityID,
	})

	return &dto.RegisterResponse{Message: "Faculty registration successful"}, nil
}

func (s *RegistrationService) registerDepartment(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if anyBlank(req.Name, req.FacultyName) {
		return nil, errIncompleteData
	}
	if err := checkLength("name", req.Name, maxNameLength); err != nil {
		return nil, err
	}

	faculty, err := s.faculties.GetByName(ctx, req.FacultyName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errFacultyNotFound
		}
		return nil, fmt.Errorf("error getting faculty: %w", err)
	}

	taken, err := s.departments.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking department name: %w", err)
	}
	if taken {
		return nil, errDepartmentExists
	}

	department := &models.Department{Name: req.Name, FacultyID: faculty.ID}
	if _, err := s.departments.Create(ctx, department); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, errDepartmentExists
		case errors.Is(err, repositories.ErrMissingParent):
			return nil, errFacultyNotFound
		}
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	publish(ctx, s.publisher, events.DepartmentRegistered, map[string]interface{}{
		"id":         department.ID,
		"name":       department.Name,
		"faculty_id": department.FacultyID,
	})

	return &dto.RegisterResponse{Message: "Department registration successful"}, nil
}

// registerCourse leaves professor and schedule unset
func (s *RegistrationService) registerCourse(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if anyBlank(req.Name, req.DepartmentName) {
		return nil, errIncompleteData
	}
	if err := checkLength("name", req.Name, maxNameLength); err != nil {
		return nil, err
	}

	department, err := s.departments.GetByName(ctx, req.DepartmentName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errDepartmentNotFound
		}
		return nil, fmt.Errorf("error getting department: %w", err)
	}

	course := &models.Course{Name: req.Name, DepartmentID: department.ID}
	if _, err := s.courses.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrMissingParent) {
			return nil, errDepartmentNotFound
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	publish(ctx, s.publisher, events.CourseRegistered, map[string]interface{}{
		"id":            course.ID,
		"name":          course.Name,
		"department_id": course.DepartmentID,
	})

	return &dto.RegisterResponse{Message: "Course registration successful"}, nil
}

// checkUserLengths applies the student and professor column limits
func checkUserLengths(req *dto.RegisterRequest, username string) error {
	if err := checkLength("full_name", req.FullName, maxNameLength); err != nil {
		return err
	}
	if err := checkLength("username", username, maxNameLength); err != nil {
		return err
	}
	if err := checkLength("phone_number", string(req.PhoneNumber), maxPhoneLength); err != nil {
		return err
	}
	if len(req.Password) > maxPasswordBytes {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

// checkLength counts characters, as VARCHAR(n) does
func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}

// anyBlank reports whether any value is empty after trimming
func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
