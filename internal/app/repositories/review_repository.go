package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
)

// ReviewRepository stores university reviews
type ReviewRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(conn db.Provider) *ReviewRepository {
	return &ReviewRepository{conn: conn, sb: statementBuilder()}
}

// Create inserts a review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (int64, error) {
	sql, args, err := r.sb.Insert("reviews").
		Columns("university_id", "content").
		Values(review.UniversityID, review.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create review query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		return 0, translateWriteError(err, "error creating review")
	}
	return review.ID, nil
}
