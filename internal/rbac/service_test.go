package rbac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== MOCK =====

type stubAdminRepo struct {
	created  []string
	replaced map[int64][]string
}

func (s *stubAdminRepo) ListRoles(ctx context.Context) ([]Role, error) { return nil, nil }

func (s *stubAdminRepo) CreateRole(ctx context.Context, slug, name string) (Role, error) {
	s.created = append(s.created, slug)
	return Role{ID: int64(len(s.created)), Slug: slug, Name: name, IsActive: true}, nil
}

func (s *stubAdminRepo) SetRoleActive(ctx context.Context, id int64, active bool) (Role, error) {
	return Role{ID: id, IsActive: active}, nil
}

func (s *stubAdminRepo) ListPermissions(ctx context.Context) ([]Permission, error) { return nil, nil }

func (s *stubAdminRepo) ListRolePermissions(ctx context.Context, roleID int64) ([]string, error) {
	return s.replaced[roleID], nil
}

func (s *stubAdminRepo) SetRolePermissions(ctx context.Context, roleID int64, slugs []string) error {
	if s.replaced == nil {
		s.replaced = map[int64][]string{}
	}
	s.replaced[roleID] = slugs
	return nil
}

func (s *stubAdminRepo) AssignRole(ctx context.Context, userID, roleID int64) error { return nil }

func (s *stubAdminRepo) RemoveRole(ctx context.Context, userID, roleID int64) error { return nil }

// ===== TESTS =====

func TestCreateRoleNormalizesSlug(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := NewService(repo)

	role, err := svc.CreateRole(context.Background(), "  Stock-Keeper ", "")
	require.NoError(t, err)
	assert.Equal(t, "stock-keeper", role.Slug)
	assert.Equal(t, "stock-keeper", role.Name)
}

func TestCreateRoleRejectsBadSlug(t *testing.T) {
	svc := NewService(&stubAdminRepo{})

	for _, slug := range []string{"", "has space", "-leading", "semi;colon"} {
		_, err := svc.CreateRole(context.Background(), slug, "x")
		require.ErrorIs(t, err, ErrInvalidInput, slug)
	}
}

func TestSetRolePermissionsDeduplicates(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := NewService(repo)

	err := svc.SetRolePermissions(context.Background(), 3, []string{"product:read", "PRODUCT:READ", "category:read"})
	require.NoError(t, err)
	assert.Equal(t, []string{"category:read", "product:read"}, repo.replaced[3])

	require.NoError(t, svc.SetRolePermissions(context.Background(), 3, nil))
	assert.Empty(t, repo.replaced[3])

	err = svc.SetRolePermissions(context.Background(), 3, []string{"bad slug"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
