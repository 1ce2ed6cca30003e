package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.Provider) *CourseRepository {
	return &CourseRepository{conn: conn, sb: statementBuilder()}
}

// Create inserts a course. Professor and schedule are stored as given, usually NULL.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "department_id", "professor_id", "schedule").
		Values(course.Name, course.DepartmentID, course.ProfessorID, course.Schedule).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		return 0, translateWriteError(err, "error creating course")
	}
	return course.ID, nil
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "department_id", "professor_id", "schedule").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).
		Scan(&course.ID, &course.Name, &course.DepartmentID, &course.ProfessorID, &course.Schedule)
	if err != nil {
		return nil, translateReadError(err, "error getting course by ID")
	}
	return course, nil
}

// ListByStudentID returns the courses a student is enrolled in, in enrollment order.
// A duplicated enrollment yields the course twice.
func (r *CourseRepository) ListByStudentID(ctx context.Context, studentID int64) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("c.id", "c.name", "c.department_id", "c.professor_id", "c.schedule").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.conn.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.DepartmentID, &course.ProfessorID, &course.Schedule); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}
