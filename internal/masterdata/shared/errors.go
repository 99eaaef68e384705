package shared

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/db"
	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
)

var (
	ErrNotFound   = httpx.ErrNotFound
	ErrDuplicate  = httpx.ErrDuplicate
	ErrValidation = httpx.ErrValidation
	ErrInvalidID  = fmt.Errorf("%w: invalid ID", httpx.ErrValidation)
)

// Invalid wraps a field message as a validation error.
func Invalid(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// TranslatePG maps pgx and constraint errors onto the shared sentinels.
func TranslatePG(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	case db.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", entity, ErrDuplicate)
	case db.IsForeignKeyViolation(err):
		return Invalid(entity + " references a missing record")
	default:
		return fmt.Errorf("%s: %w", entity, err)
	}
}
