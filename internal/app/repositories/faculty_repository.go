package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
)

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(conn db.Provider) *FacultyRepository {
	return &FacultyRepository{conn: conn, sb: statementBuilder()}
}

// Create creates a new faculty under faculty.UniversityID
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculties").
		Columns("name", "university_id").
		Values(faculty.Name, faculty.UniversityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&faculty.ID); err != nil {
		return 0, translateWriteError(err, "error creating faculty")
	}
	return faculty.ID, nil
}

// GetByName retrieves a faculty by exact name
func (r *FacultyRepository) GetByName(ctx context.Context, name string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "university_id").
		From("faculties").
		Where(squirrel.Eq{"name": name}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.Name, &faculty.UniversityID)
	if err != nil {
		return nil, translateReadError(err, "error getting faculty by name")
	}
	return faculty, nil
}

// ExistsByName checks whether a faculty with this name exists
func (r *FacultyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.conn, r.sb, "faculties", squirrel.Eq{"name": name})
}
