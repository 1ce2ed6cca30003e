package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/repositories"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
	"github.com/yigit/unicommunity/internal/pkg/events"
)

var errCourseNotFound = apperrors.NewNotFoundError("Course not found")

// EnrollmentService handles student ↔ course enrollment
type EnrollmentService struct {
	enrollments EnrollmentStore
	students    StudentStore
	courses     CourseStore
	publisher   events.Publisher
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollments EnrollmentStore, students StudentStore, courses CourseStore, publisher events.Publisher) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		publisher:   publisher,
	}
}

// Enroll adds a student to a course. Enrolling twice creates a second row.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	found, err := s.students.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !found {
		return nil, errStudentNotFound
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errCourseNotFound
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	enrollment := &models.Enrollment{StudentID: studentID, CourseID: courseID}
	if _, err := s.enrollments.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repositories.ErrMissingParent) {
			return nil, errCourseNotFound
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	publish(ctx, s.publisher, events.StudentEnrolled, map[string]interface{}{
		"enrollment_id": enrollment.ID,
		"student_id":    studentID,
		"course_id":     courseID,
	})
	return enrollment, nil
}

// ListStudentCourses returns the courses a student is enrolled in
func (s *EnrollmentService) ListStudentCourses(ctx context.Context, studentID int64) ([]*models.Course, error) {
	found, err := s.students.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !found {
		return nil, errStudentNotFound
	}

	courses, err := s.courses.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student courses: %w", err)
	}
	return courses, nil
}
