package gate

import (
	"context"

	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
)

type contextKey struct{}

// WithIdentity stores the resolved identity on the context.
func WithIdentity(ctx context.Context, identity *auth.ResolvedIdentity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFromContext returns the identity attached by the middleware.
func IdentityFromContext(ctx context.Context) (*auth.ResolvedIdentity, bool) {
	identity, ok := ctx.Value(contextKey{}).(*auth.ResolvedIdentity)
	return identity, ok && identity != nil
}
