package rbac

import (
	"context"
	"fmt"
	"sort"
)

// GrantStore walks account → role → permission. One call returns every grant
// the account reaches; roles without permissions yield an empty PermissionSlug.
type GrantStore interface {
	GrantsForAccount(ctx context.Context, accountID int64) ([]Grant, error)
}

// Evaluator decides whether an account satisfies a Requirement.
type Evaluator struct {
	grants GrantStore
}

// NewEvaluator constructs an Evaluator.
func NewEvaluator(grants GrantStore) *Evaluator {
	return &Evaluator{grants: grants}
}

// Authorize returns nil when the requirement slug is reachable through any
// role assigned to the account. An empty slug is never satisfied.
func (e *Evaluator) Authorize(ctx context.Context, accountID int64, req Requirement) error {
	denied := ErrInsufficientPermission
	if req.Kind == KindRole {
		denied = ErrInsufficientRole
	}
	slug := NormalizeSlug(req.Slug)
	if slug == "" {
		return fmt.Errorf("%w: empty requirement", denied)
	}
	reachable, err := e.reachable(ctx, accountID, req.Kind)
	if err != nil {
		return err
	}
	if _, ok := reachable[slug]; !ok {
		return fmt.Errorf("%w: %s", denied, req)
	}
	return nil
}

// Reachable lists the sorted role or permission slugs the account reaches.
func (e *Evaluator) Reachable(ctx context.Context, accountID int64, kind Kind) ([]string, error) {
	set, err := e.reachable(ctx, accountID, kind)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(set))
	for slug := range set {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out, nil
}

func (e *Evaluator) reachable(ctx context.Context, accountID int64, kind Kind) (map[string]struct{}, error) {
	grants, err := e.grants.GrantsForAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: account %d: %w", ErrStoreLookup, accountID, err)
	}
	set := make(map[string]struct{}, len(grants))
	for _, g := range grants {
		slug := g.PermissionSlug
		if kind == KindRole {
			slug = g.RoleSlug
		}
		if slug = NormalizeSlug(slug); slug != "" {
			set[slug] = struct{}{}
		}
	}
	return set, nil
}
