package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UniversityRepository *UniversityRepository
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	StudentRepository    *StudentRepository
	ProfessorRepository  *ProfessorRepository
	EnrollmentRepository *EnrollmentRepository
	ChatRepository       *ChatRepository
	MessageRepository    *MessageRepository
	ReviewRepository     *ReviewRepository
	ContactRepository    *ContactRepository
}

// NewRepositories initializes all repositories on one connection provider
func NewRepositories(conn db.Provider) *Repositories {
	return &Repositories{
		UniversityRepository: NewUniversityRepository(conn),
		FacultyRepository:    NewFacultyRepository(conn),
		DepartmentRepository: NewDepartmentRepository(conn),
		CourseRepository:     NewCourseRepository(conn),
		StudentRepository:    NewStudentRepository(conn),
		ProfessorRepository:  NewProfessorRepository(conn),
		EnrollmentRepository: NewEnrollmentRepository(conn),
		ChatRepository:       NewChatRepository(conn),
		MessageRepository:    NewMessageRepository(conn),
		ReviewRepository:     NewReviewRepository(conn),
		ContactRepository:    NewContactRepository(conn),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
