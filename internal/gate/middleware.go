package gate

import (
	"net/http"
	"strings"

	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
)

// Middleware adapts a Gate to chi/net/http middleware.
type Middleware struct {
	Gate *Gate
}

// NewMiddleware constructs a Middleware.
func NewMiddleware(g *Gate) Middleware {
	return Middleware{Gate: g}
}

// Protect runs the gate once per request. A nil requirement only
// authenticates. On success the identity is attached to the request context;
// on rejection the failure envelope is written and next is not called.
func (m Middleware) Protect(req *rbac.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := m.Gate.Check(r.Context(), BearerToken(r), req)
			if !decision.Allowed {
				if decision.Status() == http.StatusUnauthorized {
					w.Header().Set("WWW-Authenticate", `Bearer realm="warehouse"`)
				}
				httpx.Fail(w, decision.Status(), decision.Message())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), decision.Identity)))
		})
	}
}

// Authenticated requires a valid credential only.
func (m Middleware) Authenticated() func(http.Handler) http.Handler {
	return m.Protect(nil)
}

// RequirePermission requires the permission slug to be reachable.
func (m Middleware) RequirePermission(slug string) func(http.Handler) http.Handler {
	req := rbac.PermissionRequirement(slug)
	return m.Protect(&req)
}

// RequireRole requires the account to hold the role slug.
func (m Middleware) RequireRole(slug string) func(http.Handler) http.Handler {
	req := rbac.RoleRequirement(slug)
	return m.Protect(&req)
}

// BearerToken extracts the token from "Authorization: Bearer <token>". Any
// other shape yields the empty string.
func BearerToken(r *http.Request) string {
	fields := strings.Fields(r.Header.Get("Authorization"))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return fields[1]
}

var _ rbac.Guard = Middleware{}
