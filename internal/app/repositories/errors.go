package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
	"github.com/yigit/unicommunity/internal/pkg/dberrors"
)

// Shared repository errors. Services translate them into apperrors.
var (
	// ErrNotFound is returned when a looked-up row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint
	ErrDuplicate = errors.New("record already exists")
	// ErrMissingParent is returned when an insert references a row that does not exist
	ErrMissingParent = errors.New("referenced record does not exist")
	// ErrValueTooLong is returned when a value does not fit its column. It is a
	// validation error, so it reaches clients as 400 without service mapping.
	ErrValueTooLong = apperrors.NewValidationError("Value exceeds the maximum allowed length")
)

// translateWriteError maps Postgres constraint violations onto the shared errors
func translateWriteError(err error, op string) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	case dberrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, ErrMissingParent)
	case dberrors.IsValueTooLong(err):
		return fmt.Errorf("%s: %w", op, ErrValueTooLong)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// translateReadError maps pgx.ErrNoRows onto ErrNotFound
func translateReadError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
