package rbac

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Role groups permissions and is assigned to accounts.
type Role struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Permission is an atomic capability.
type Permission struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Grant is one row of the account → role → permission walk. PermissionSlug is
// empty for a role that carries no permissions.
type Grant struct {
	RoleSlug       string
	PermissionSlug string
}

// Kind selects which half of the reachable set a requirement is tested against.
type Kind string

const (
	KindPermission Kind = "permission"
	KindRole       Kind = "role"
)

// Requirement names a single capability a route demands.
type Requirement struct {
	Kind Kind
	Slug string
}

// PermissionRequirement builds a permission requirement.
func PermissionRequirement(slug string) Requirement {
	return Requirement{Kind: KindPermission, Slug: NormalizeSlug(slug)}
}

// RoleRequirement builds a role requirement.
func RoleRequirement(slug string) Requirement {
	return Requirement{Kind: KindRole, Slug: NormalizeSlug(slug)}
}

// String renders the requirement for logs.
func (r Requirement) String() string {
	return string(r.Kind) + ":" + r.Slug
}

// NormalizeSlug trims and case-folds a slug so lookups are case-insensitive.
func NormalizeSlug(slug string) string {
	return cases.Fold().String(strings.TrimSpace(slug))
}

var (
	// ErrInsufficientPermission means the permission is not reachable from any assigned role.
	ErrInsufficientPermission = errors.New("rbac: insufficient permission")
	// ErrInsufficientRole means the account holds no role with the required slug.
	ErrInsufficientRole = errors.New("rbac: insufficient role")
	// ErrStoreLookup wraps grant store failures.
	ErrStoreLookup = errors.New("rbac: grant lookup failed")
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("rbac: not found")
)
