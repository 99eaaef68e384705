package rbac

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== MOCK =====

type stubGrantStore struct {
	grants map[int64][]Grant
	err    error
	calls  int
}

func (s *stubGrantStore) GrantsForAccount(ctx context.Context, accountID int64) ([]Grant, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.grants[accountID], nil
}

// ===== TESTS =====

func warehouseGrants() *stubGrantStore {
	return &stubGrantStore{grants: map[int64][]Grant{
		1: {
			{RoleSlug: "manager", PermissionSlug: "product:read"},
			{RoleSlug: "manager", PermissionSlug: "product:update"},
			{RoleSlug: "auditor", PermissionSlug: "product:read"},
		},
		2: {
			{RoleSlug: "trainee"},
		},
	}}
}

func TestAuthorizePermissionReachable(t *testing.T) {
	store := warehouseGrants()
	e := NewEvaluator(store)

	require.NoError(t, e.Authorize(context.Background(), 1, PermissionRequirement("product:read")))
	assert.Equal(t, 1, store.calls)
}

func TestAuthorizeDenials(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		req       Requirement
		want      error
	}{
		{"missing permission", 1, PermissionRequirement("product:delete"), ErrInsufficientPermission},
		{"missing role", 1, RoleRequirement("admin"), ErrInsufficientRole},
		{"role without permissions", 2, PermissionRequirement("product:read"), ErrInsufficientPermission},
		{"account without roles", 99, PermissionRequirement("product:read"), ErrInsufficientPermission},
		{"role slug is not a permission", 1, PermissionRequirement("manager"), ErrInsufficientPermission},
		{"permission slug is not a role", 1, RoleRequirement("product:read"), ErrInsufficientRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewEvaluator(warehouseGrants()).Authorize(context.Background(), tt.accountID, tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthorizeRole(t *testing.T) {
	e := NewEvaluator(warehouseGrants())

	require.NoError(t, e.Authorize(context.Background(), 1, RoleRequirement("auditor")))
	require.NoError(t, e.Authorize(context.Background(), 2, RoleRequirement("trainee")))
}

func TestAuthorizeIsCaseInsensitive(t *testing.T) {
	e := NewEvaluator(warehouseGrants())

	require.NoError(t, e.Authorize(context.Background(), 1, Requirement{Kind: KindPermission, Slug: "  Product:READ "}))
	require.NoError(t, e.Authorize(context.Background(), 1, RoleRequirement("MANAGER")))
}

func TestAuthorizeEmptySlugNeverSatisfied(t *testing.T) {
	store := &stubGrantStore{grants: map[int64][]Grant{1: {{RoleSlug: "", PermissionSlug: ""}}}}
	e := NewEvaluator(store)

	require.ErrorIs(t, e.Authorize(context.Background(), 1, PermissionRequirement("")), ErrInsufficientPermission)
	require.ErrorIs(t, e.Authorize(context.Background(), 1, RoleRequirement("   ")), ErrInsufficientRole)
	assert.Zero(t, store.calls)
}

func TestAuthorizeStoreFailure(t *testing.T) {
	store := &stubGrantStore{err: errors.New("connection reset")}
	e := NewEvaluator(store)

	err := e.Authorize(context.Background(), 1, PermissionRequirement("product:read"))
	require.ErrorIs(t, err, ErrStoreLookup)
	require.NotErrorIs(t, err, ErrInsufficientPermission)
	assert.Equal(t, 1, store.calls)
}

func TestAuthorizeIgnoresRoleActivity(t *testing.T) {
	// The grant store reports a deactivated role's grants like any other.
	store := &stubGrantStore{grants: map[int64][]Grant{7: {{RoleSlug: "retired-manager", PermissionSlug: "product:read"}}}}

	require.NoError(t, NewEvaluator(store).Authorize(context.Background(), 7, PermissionRequirement("product:read")))
}

func TestAuthorizeIsMonotonic(t *testing.T) {
	store := warehouseGrants()
	e := NewEvaluator(store)
	ctx := context.Background()
	checks := []Requirement{
		PermissionRequirement("product:read"),
		PermissionRequirement("product:update"),
		RoleRequirement("manager"),
	}
	for _, req := range checks {
		require.NoError(t, e.Authorize(ctx, 1, req))
	}

	store.grants[1] = append(store.grants[1],
		Grant{RoleSlug: "admin", PermissionSlug: "user:create"},
		Grant{RoleSlug: "trainee"},
	)
	for _, req := range checks {
		require.NoError(t, e.Authorize(ctx, 1, req))
	}
	require.NoError(t, e.Authorize(ctx, 1, PermissionRequirement("user:create")))
}

func TestReachableSortedAndDeduplicated(t *testing.T) {
	e := NewEvaluator(warehouseGrants())

	perms, err := e.Reachable(context.Background(), 1, KindPermission)
	require.NoError(t, err)
	assert.Equal(t, []string{"product:read", "product:update"}, perms)

	roles, err := e.Reachable(context.Background(), 1, KindRole)
	require.NoError(t, err)
	assert.Equal(t, []string{"auditor", "manager"}, roles)

	perms, err = e.Reachable(context.Background(), 2, KindPermission)
	require.NoError(t, err)
	assert.Empty(t, perms)
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "product:read", NormalizeSlug(" PRODUCT:Read\t"))
	assert.Equal(t, "", NormalizeSlug("   "))
	assert.Equal(t, "permission:product:read", PermissionRequirement("Product:Read").String())
}
