package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/db"
)

// ContactRepository stores university contact points
type ContactRepository struct {
	conn db.Provider
	sb   squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(conn db.Provider) *ContactRepository {
	return &ContactRepository{conn: conn, sb: statementBuilder()}
}

// Create inserts a contact
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) (int64, error) {
	sql, args, err := r.sb.Insert("contacts").
		Columns("university_id", "name", "email", "phone_number").
		Values(contact.UniversityID, contact.Name, contact.Email, contact.PhoneNumber).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create contact query: %w", err)
	}

	if err := r.conn.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&contact.ID, &contact.CreatedAt); err != nil {
		return 0, translateWriteError(err, "error creating contact")
	}
	return contact.ID, nil
}
