package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

// ProfessorRepository handles professor database operations
type ProfessorRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewProfessorRepository creates a new ProfessorRepository
func NewProfessorRepository(conn db.Provider) *ProfessorRepository {
	return &ProfessorRepository{conn: conn, sb: statementBuilder()}
}

// Create inserts a professor. Username must already be normalized.
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) (int64, error) {
	sql, args, err := r.sb.Insert("professors").
		Columns("full_name", "username", "password_hash", "phone_number").
		Values(professor.FullName, professor.Username, professor.PasswordHash, professor.PhoneNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create professor query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&professor.ID); err != nil {
		return 0, translateWriteError(err, "error creating professor")
	}

	logger.Ctx(ctx).Info().Int64("professorID", professor.ID).Str("username", professor.Username).Msg("Professor created")
	return professor.ID, nil
}

// GetByID retrieves a professor by id
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	sql, args, err := r.sb.Select("id", "full_name", "username", "password_hash", "phone_number").
		From("professors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get professor query: %w", err)
	}

	p := &models.Professor{}
	err = r.conn.Querier(ctx).QueryRow(ctx, sql, args...).
		Scan(&p.ID, &p.FullName, &p.Username, &p.PasswordHash, &p.PhoneNumber)
	if err != nil {
		return nil, translateReadError(err, "error getting professor by ID")
	}
	return p, nil
}

// ExistsByUsername checks whether the normalized username is taken
func (r *ProfessorRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return exists(ctx, r.conn, r.sb, "professors", squirrel.Eq{"username": username})
}

// ExistsByID checks whether a professor with this id exists
func (r *ProfessorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.conn, r.sb, "professors", squirrel.Eq{"id": id})
}
