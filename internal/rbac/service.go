package rbac

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalidInput is returned for malformed slugs or names.
var ErrInvalidInput = errors.New("rbac: invalid input")

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.:-]{0,63}$`)

// RepositoryPort defines data access methods for role administration.
type RepositoryPort interface {
	ListRoles(ctx context.Context) ([]Role, error)
	CreateRole(ctx context.Context, slug, name string) (Role, error)
	SetRoleActive(ctx context.Context, id int64, active bool) (Role, error)
	ListPermissions(ctx context.Context) ([]Permission, error)
	ListRolePermissions(ctx context.Context, roleID int64) ([]string, error)
	SetRolePermissions(ctx context.Context, roleID int64, slugs []string) error
	AssignRole(ctx context.Context, userID, roleID int64) error
	RemoveRole(ctx context.Context, userID, roleID int64) error
}

// Service orchestrates role and permission administration.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// ListRoles returns all roles.
func (s *Service) ListRoles(ctx context.Context) ([]Role, error) {
	return s.repo.ListRoles(ctx)
}

// CreateRole validates and inserts a role.
func (s *Service) CreateRole(ctx context.Context, slug, name string) (Role, error) {
	slug = NormalizeSlug(slug)
	name = strings.TrimSpace(name)
	if !slugPattern.MatchString(slug) {
		return Role{}, fmt.Errorf("%w: slug must be lowercase alphanumeric", ErrInvalidInput)
	}
	if name == "" {
		name = slug
	}
	return s.repo.CreateRole(ctx, slug, name)
}

// SetRoleActive activates or deactivates a role.
func (s *Service) SetRoleActive(ctx context.Context, id int64, active bool) (Role, error) {
	return s.repo.SetRoleActive(ctx, id, active)
}

// ListPermissions returns all permissions.
func (s *Service) ListPermissions(ctx context.Context) ([]Permission, error) {
	return s.repo.ListPermissions(ctx)
}

// RolePermissions returns the permission slugs attached to a role.
func (s *Service) RolePermissions(ctx context.Context, roleID int64) ([]string, error) {
	return s.repo.ListRolePermissions(ctx, roleID)
}

// SetRolePermissions replaces permissions for a role.
func (s *Service) SetRolePermissions(ctx context.Context, roleID int64, slugs []string) error {
	unique := make(map[string]struct{}, len(slugs))
	for _, slug := range slugs {
		slug = NormalizeSlug(slug)
		if !slugPattern.MatchString(slug) {
			return fmt.Errorf("%w: permission slug %q", ErrInvalidInput, slug)
		}
		unique[slug] = struct{}{}
	}
	normalized := make([]string, 0, len(unique))
	for slug := range unique {
		normalized = append(normalized, slug)
	}
	sort.Strings(normalized)
	return s.repo.SetRolePermissions(ctx, roleID, normalized)
}

// AssignRole assigns a role to the given user.
func (s *Service) AssignRole(ctx context.Context, userID, roleID int64) error {
	return s.repo.AssignRole(ctx, userID, roleID)
}

// RemoveRole removes a role from a user.
func (s *Service) RemoveRole(ctx context.Context, userID, roleID int64) error {
	return s.repo.RemoveRole(ctx, userID, roleID)
}
