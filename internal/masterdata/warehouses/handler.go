package warehouses

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	guard     rbac.Guard
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, guard rbac.Guard) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, guard: guard, validator: validator.New()}
}

// MountRoutes registers warehouse routes guarded by the warehouse:* permissions.
func (h *Handler) MountRoutes(r chi.Router) {
	scopes := rbac.WarehouseScopes
	r.With(h.guard.RequirePermission(scopes.Read)).Get("/", h.List)
	r.With(h.guard.RequirePermission(scopes.Read)).Get("/{id}", h.Show)
	r.With(h.guard.RequirePermission(scopes.Create)).Post("/", h.Create)
	r.With(h.guard.RequirePermission(scopes.Update)).Put("/{id}", h.Update)
	r.With(h.guard.RequirePermission(scopes.Delete)).Delete("/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := shared.FiltersFromQuery(r)
	warehouses, total, err := h.service.List(r.Context(), filters)
	if err != nil {
		shared.Respond(h.logger, w, "list warehouses failed", err)
		return
	}
	httpx.OK(w, http.StatusOK, httpx.Page{Items: warehouses, Total: total, Page: filters.Page, Limit: filters.Limit})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	warehouse, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.Respond(h.logger, w, "get warehouse failed", err)
		return
	}
	httpx.OK(w, http.StatusOK, warehouse)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decode(w, r)
	if !ok {
		return
	}
	warehouse, err := h.service.Create(r.Context(), form.toWarehouse())
	if err != nil {
		shared.Respond(h.logger, w, "create warehouse failed", err)
		return
	}
	httpx.OK(w, http.StatusCreated, warehouse)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	form, ok := h.decode(w, r)
	if !ok {
		return
	}
	warehouse, err := h.service.Update(r.Context(), id, form.toWarehouse())
	if err != nil {
		shared.Respond(h.logger, w, "update warehouse failed", err)
		return
	}
	httpx.OK(w, http.StatusOK, warehouse)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		shared.Respond(h.logger, w, "delete warehouse failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (WarehouseForm, bool) {
	var form WarehouseForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return form, false
	}
	if err := httpx.Validate(h.validator, form); err != nil {
		httpx.RespondError(w, err)
		return form, false
	}
	return form, true
}
