package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

// UniversityRepository handles university database operations
type UniversityRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(conn db.Provider) *UniversityRepository {
	return &UniversityRepository{conn: conn, sb: statementBuilder()}
}

// Create inserts a university and returns its id
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name").
		Values(university.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&university.ID, &university.CreatedAt)
	if err != nil {
		return 0, translateWriteError(err, "error creating university")
	}

	logger.Ctx(ctx).Info().Int64("universityID", university.ID).Str("name", university.Name).Msg("University created")
	return university.ID, nil
}

// GetByName retrieves a university by exact, case-sensitive name
func (r *UniversityRepository) GetByName(ctx context.Context, name string) (*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "created_at").
		From("universities").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	university := &models.University{}
	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&university.ID, &university.Name, &university.CreatedAt)
	if err != nil {
		return nil, translateReadError(err, "error getting university by name")
	}
	return university, nil
}

// ExistsByName checks whether a university with exactly this name exists
func (r *UniversityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.conn, r.sb, "universities", squirrel.Eq{"name": name})
}

// exists runs SELECT EXISTS (SELECT 1 FROM table WHERE pred)
func exists(ctx context.Context, conn db.Provider, sb squirrel.StatementBuilderType, table string, pred squirrel.Sqlizer) (bool, error) {
	sql, args, err := sb.Select("1").
		From(table).
		Where(pred).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s exists query: %w", table, err)
	}

	var found bool
	if err := conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}
	return found, nil
}
