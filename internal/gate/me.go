package gate

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
)

// MeHandler serves the caller's own identity and reachable capabilities.
type MeHandler struct {
	logger    *slog.Logger
	evaluator *rbac.Evaluator
	guard     Middleware
}

// NewMeHandler builds MeHandler instance.
func NewMeHandler(logger *slog.Logger, evaluator *rbac.Evaluator, guard Middleware) *MeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MeHandler{logger: logger, evaluator: evaluator, guard: guard}
}

type meResponse struct {
	*auth.ResolvedIdentity
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

// MountRoutes registers GET /me.
func (h *MeHandler) MountRoutes(r chi.Router) {
	r.With(h.guard.Authenticated()).Get("/me", h.me)
}

func (h *MeHandler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, ReasonNoCredential.Message())
		return
	}
	roles, err := h.evaluator.Reachable(r.Context(), identity.AccountID, rbac.KindRole)
	if err != nil {
		h.logger.Error("me roles", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, ReasonStoreLookupFailed.Message())
		return
	}
	perms, err := h.evaluator.Reachable(r.Context(), identity.AccountID, rbac.KindPermission)
	if err != nil {
		h.logger.Error("me permissions", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, ReasonStoreLookupFailed.Message())
		return
	}
	httpx.OK(w, http.StatusOK, meResponse{ResolvedIdentity: identity, Roles: roles, Permissions: perms})
}
