package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.Provider) *StudentRepository {
	return &StudentRepository{conn: conn, sb: statementBuilder()}
}

var studentColumns = []string{"id", "full_name", "username", "password_hash", "phone_number", "enrollment_date"}

// Create inserts a student. Username must already be normalized.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("full_name", "username", "password_hash", "phone_number", "enrollment_date").
		Values(student.FullName, student.Username, student.PasswordHash, student.PhoneNumber, student.EnrollmentDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		return 0, translateWriteError(err, "error creating student")
	}

	logger.Ctx(ctx).Info().Int64("studentID", student.ID).Str("username", student.Username).Msg("Student created")
	return student.ID, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUsername retrieves a student by normalized username
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// ExistsByUsername checks whether the normalized username is taken
func (r *StudentRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return exists(ctx, r.conn, r.sb, "students", squirrel.Eq{"username": username})
}

// ExistsByID checks whether a student with this id exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.conn, r.sb, "students", squirrel.Eq{"id": id})
}

// FindIDsByUsernames maps each username that belongs to a student to that student's id.
// Unknown usernames are absent from the result.
func (r *StudentRepository) FindIDsByUsernames(ctx context.Context, usernames []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(usernames))
	if len(usernames) == 0 {
		return ids, nil
	}

	sql, args, err := r.sb.Select("id", "username").
		From("students").
		Where(squirrel.Eq{"username": usernames}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find students query: %w", err)
	}

	rows, err := r.conn.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students by username: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       int64
			username string
		)
		if err := rows.Scan(&id, &username); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		ids[username] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return ids, nil
}

func (r *StudentRepository) getOne(ctx context.Context, pred squirrel.Sqlizer) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).
		Scan(&s.ID, &s.FullName, &s.Username, &s.PasswordHash, &s.PhoneNumber, &s.EnrollmentDate)
	if err != nil {
		return nil, translateReadError(err, "error getting student")
	}
	return s, nil
}
