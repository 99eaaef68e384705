package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

type captureRepo struct {
	Repository
	created Category
}

func (c *captureRepo) Create(ctx context.Context, category Category) (Category, error) {
	c.created = category
	category.ID = 1
	return category, nil
}

func TestCategoryCreate(t *testing.T) {
	repo := &captureRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Category{Code: " raw ", Name: " Raw materials "})
	require.NoError(t, err)
	assert.Equal(t, "RAW", repo.created.Code)
	assert.Equal(t, "Raw materials", repo.created.Name)

	_, err = svc.Create(context.Background(), Category{Code: "RAW"})
	require.ErrorIs(t, err, shared.ErrValidation)
}
