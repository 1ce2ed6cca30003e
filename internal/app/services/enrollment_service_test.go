package services

import (
	"context"
	"testing"

	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
)

func TestEnrollAndListCourses(t *testing.T) {
	st := newStore()
	svc := st.enrollmentService()
	ctx := context.Background()
	student := st.students.add("jane")
	course := &models.Course{Name: "Algorithms", DepartmentID: 1}
	_, _ = st.courses.Create(ctx, course)

	for i := 0; i < 2; i++ {
		if _, err := svc.Enroll(ctx, student.ID, course.ID); err != nil {
			t.Fatalf("Enroll: %v", err)
		}
	}
	if len(st.enrollments.rows) != 2 {
		t.Errorf("duplicate enrollments are allowed, got %d rows", len(st.enrollments.rows))
	}

	courses, err := svc.ListStudentCourses(ctx, student.ID)
	if err != nil {
		t.Fatalf("ListStudentCourses: %v", err)
	}
	if len(courses) != 2 || courses[0].Name != "Algorithms" {
		t.Errorf("courses = %+v", courses)
	}
}

func TestEnrollNotFound(t *testing.T) {
	st := newStore()
	svc := st.enrollmentService()
	ctx := context.Background()
	student := st.students.add("jane")

	if _, err := svc.Enroll(ctx, 404, 1); !apperrors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("unknown student: got %v", err)
	}
	_, err := svc.Enroll(ctx, student.ID, 404)
	if !apperrors.Is(err, apperrors.ErrResourceNotFound) || apperrors.Message(err, "") != "Course not found" {
		t.Errorf("unknown course: got %v", err)
	}
	if _, err := svc.ListStudentCourses(ctx, 404); !apperrors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("list for unknown student: got %v", err)
	}
}
