package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
)

// EnrollmentRepository handles the student ↔ course association
type EnrollmentRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(conn db.Provider) *EnrollmentRepository {
	return &EnrollmentRepository{conn: conn, sb: statementBuilder()}
}

// Create inserts an enrollment row; duplicates are not rejected
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(enrollment.StudentID, enrollment.CourseID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&enrollment.ID); err != nil {
		return 0, translateWriteError(err, "error creating enrollment")
	}
	return enrollment.ID, nil
}
