package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(conn db.Provider) *DepartmentRepository {
	return &DepartmentRepository{conn: conn, sb: statementBuilder()}
}

// Create creates a new department under department.FacultyID
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) (int64, error) {
	sql, args, err := r.sb.Insert("departments").
		Columns("name", "faculty_id").
		Values(department.Name, department.FacultyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create department query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&department.ID); err != nil {
		return 0, translateWriteError(err, "error creating department")
	}
	return department.ID, nil
}

// GetByName retrieves a department by exact name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "name", "faculty_id").
		From("departments").
		Where(squirrel.Eq{"name": name}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department := &models.Department{}
	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&department.ID, &department.Name, &department.FacultyID)
	if err != nil {
		return nil, translateReadError(err, "error getting department by name")
	}
	return department, nil
}

// ExistsByName checks whether a department with this name exists
func (r *DepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.conn, r.sb, "departments", squirrel.Eq{"name": name})
}
