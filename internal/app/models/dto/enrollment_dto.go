package dto

import "github.com/yigit/unicommunity/internal/app/models"

// EnrollRequest enrolls a student in a course
type EnrollRequest struct {
	StudentID int64 `json:"student_id" binding:"required,gt=0" example:"1"`
	CourseID  int64 `json:"course_id" binding:"required,gt=0" example:"1"`
}

// EnrollResponse is returned with 201 by enrollment
type EnrollResponse struct {
	Message      string `json:"message" example:"Enrollment successful"`
	EnrollmentID int64  `json:"enrollment_id" example:"1"`
}

// StudentCoursesResponse lists the courses of a student
type StudentCoursesResponse struct {
	Courses []*models.Course `json:"courses"`
}
