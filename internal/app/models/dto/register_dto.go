package dto

import (
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/pkg/helpers"
)

// RegisterRequest is the union of every registration variant, selected by UserType.
// Required fields are checked per variant by the registration service.
type RegisterRequest struct {
	UserType       string        `json:"user_type" example:"student" enums:"student,professor,university,faculty,department,course"`
	FullName       string        `json:"full_name,omitempty" example:"Jane Doe"`
	Username       string        `json:"username,omitempty" example:"Jane Doe"`
	PhoneNumber    LenientString `json:"phone_number,omitempty" swaggertype:"string" example:"+90 555 000 0000"`
	Password       string        `json:"password,omitempty" example:"secret"`
	EnrollmentDate string        `json:"enrollment_date,omitempty" example:"2024-09-01"`
	Name           string        `json:"name,omitempty" example:"Engineering"`
	UniversityName string        `json:"university_name,omitempty" example:"Bogazici University"`
	FacultyName    string        `json:"faculty_name,omitempty" example:"Engineering"`
	DepartmentName string        `json:"department_name,omitempty" example:"Computer Engineering"`
}

// UserResponse holds the public fields of a registered student or professor
type UserResponse struct {
	ID             int64   `json:"id" example:"1"`
	FullName       string  `json:"full_name" example:"Jane Doe"`
	Username       string  `json:"username" example:"janedoe"`
	PhoneNumber    *string `json:"phone_number" example:"+90 555 000 0000"`
	EnrollmentDate string  `json:"enrollment_date,omitempty" example:"2024-09-01"`
}

// RegisterResponse is returned with 201. User is set for students and professors only.
type RegisterResponse struct {
	Message string        `json:"message" example:"Student registration successful"`
	User    *UserResponse `json:"user,omitempty"`
}

// NewStudentResponse converts a stored student into its public form
func NewStudentResponse(s *models.Student) *UserResponse {
	return &UserResponse{
		ID:             s.ID,
		FullName:       s.FullName,
		Username:       s.Username,
		PhoneNumber:    s.PhoneNumber,
		EnrollmentDate: helpers.FormatDate(s.EnrollmentDate),
	}
}

// NewProfessorResponse converts a stored professor into its public form
func NewProfessorResponse(p *models.Professor) *UserResponse {
	return &UserResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Username:    p.Username,
		PhoneNumber: p.PhoneNumber,
	}
}
