package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslatePG(t *testing.T) {
	assert.NoError(t, TranslatePG(nil, "product"))
	assert.ErrorIs(t, TranslatePG(pgx.ErrNoRows, "product"), ErrNotFound)
	assert.ErrorIs(t, TranslatePG(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), "product"), ErrDuplicate)
	assert.ErrorIs(t, TranslatePG(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "product"), ErrValidation)

	other := errors.New("conn reset")
	err := TranslatePG(other, "product")
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, ErrNotFound)
}
