package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
)

// Handler manages user management endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	guard     rbac.Guard
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard rbac.Guard) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, guard: guard, validator: validator.New()}
}

// MountRoutes registers user routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequirePermission(rbac.PermUserRead))
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
	})
	r.With(h.guard.RequirePermission(rbac.PermUserCreate)).Post("/", h.createUser)
	r.With(h.guard.RequirePermission(rbac.PermUserUpdate)).Patch("/{id}/status", h.setStatus)
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	IsActive *bool  `json:"is_active"`
}

type statusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	filters := shared.FiltersFromQuery(r)
	users, total, err := h.service.ListUsers(r.Context(), filters)
	if err != nil {
		shared.Respond(h.logger, w, "list users failed", err)
		return
	}
	httpx.OK(w, http.StatusOK, httpx.Page{Items: users, Total: total, Page: filters.Page, Limit: filters.Limit})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		shared.Respond(h.logger, w, "get user failed", err)
		return
	}
	httpx.OK(w, http.StatusOK, user)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := httpx.Validate(h.validator, req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	active := req.IsActive == nil || *req.IsActive
	user, err := h.service.CreateUser(r.Context(), req.Username, req.Email, req.Password, active)
	if err != nil {
		shared.Respond(h.logger, w, "create user failed", err)
		return
	}
	httpx.OK(w, http.StatusCreated, user)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := httpx.Validate(h.validator, req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	user, err := h.service.SetActive(r.Context(), id, *req.IsActive)
	if err != nil {
		shared.Respond(h.logger, w, "set user status failed", err)
		return
	}
	h.logger.Info("user status changed", slog.Int64("user_id", id), slog.Bool("is_active", user.IsActive))
	httpx.OK(w, http.StatusOK, user)
}
