package rbac

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
)

// Guard builds route middleware for a required permission or role.
type Guard interface {
	RequirePermission(slug string) func(http.Handler) http.Handler
	RequireRole(slug string) func(http.Handler) http.Handler
}

// Handler exposes role and permission administration.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	guard     Guard
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard Guard) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, guard: guard, validator: validator.New()}
}

// MountRoutes registers admin routes. Every route requires RoleAdmin.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireRole(RoleAdmin))
		r.Get("/roles", h.listRoles)
		r.Post("/roles", h.createRole)
		r.Patch("/roles/{id}/status", h.setRoleStatus)
		r.Get("/roles/{id}/permissions", h.listRolePermissions)
		r.Put("/roles/{id}/permissions", h.setRolePermissions)
		r.Get("/permissions", h.listPermissions)
		r.Put("/users/{userID}/roles/{id}", h.assignRole)
		r.Delete("/users/{userID}/roles/{id}", h.removeRole)
	})
}

type createRoleRequest struct {
	Slug string `json:"slug" validate:"required,max=64"`
	Name string `json:"name" validate:"max=128"`
}

type roleStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type rolePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,dive,required,max=64"`
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.ListRoles(r.Context())
	if err != nil {
		h.fail(w, "list roles", err)
		return
	}
	httpx.OK(w, http.StatusOK, roles)
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := httpx.Validate(h.validator, req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	role, err := h.service.CreateRole(r.Context(), req.Slug, req.Name)
	if err != nil {
		h.fail(w, "create role", err)
		return
	}
	httpx.OK(w, http.StatusCreated, role)
}

func (h *Handler) setRoleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req roleStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := httpx.Validate(h.validator, req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	role, err := h.service.SetRoleActive(r.Context(), id, *req.IsActive)
	if err != nil {
		h.fail(w, "set role status", err)
		return
	}
	httpx.OK(w, http.StatusOK, role)
}

func (h *Handler) listRolePermissions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	perms, err := h.service.RolePermissions(r.Context(), id)
	if err != nil {
		h.fail(w, "list role permissions", err)
		return
	}
	httpx.OK(w, http.StatusOK, map[string]any{"role_id": id, "permissions": perms})
}

func (h *Handler) setRolePermissions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req rolePermissionsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := httpx.Validate(h.validator, req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.SetRolePermissions(r.Context(), id, req.Permissions); err != nil {
		h.fail(w, "set role permissions", err)
		return
	}
	httpx.OK(w, http.StatusOK, map[string]any{"role_id": id, "permissions": req.Permissions})
}

func (h *Handler) listPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.service.ListPermissions(r.Context())
	if err != nil {
		h.fail(w, "list permissions", err)
		return
	}
	httpx.OK(w, http.StatusOK, perms)
}

func (h *Handler) assignRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	roleID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.AssignRole(r.Context(), userID, roleID); err != nil {
		h.fail(w, "assign role", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	roleID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.RemoveRole(r.Context(), userID, roleID); err != nil {
		h.fail(w, "remove role", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, ErrDuplicate):
		httpx.Fail(w, http.StatusConflict, "role slug already exists")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownPermission):
		httpx.Fail(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("rbac "+op, slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		httpx.Fail(w, http.StatusBadRequest, "invalid "+param)
		return 0, false
	}
	return id, true
}
