package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
	"github.com/odyssey-erp/odyssey-warehouse/internal/gate"
	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/categories"
	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/products"
	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/warehouses"
	"github.com/odyssey-erp/odyssey-warehouse/internal/observability"
	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
	"github.com/odyssey-erp/odyssey-warehouse/internal/users"
	"github.com/odyssey-erp/odyssey-warehouse/jobs"
)

// RouterParams groups dependencies for building the HTTP router. Nil handlers
// are not mounted.
type RouterParams struct {
	Logger  *slog.Logger
	Config  *Config
	Metrics *observability.Metrics

	AuthHandler       *auth.Handler
	MeHandler         *gate.MeHandler
	ProductsHandler   *products.Handler
	CategoriesHandler *categories.Handler
	WarehousesHandler *warehouses.Handler
	UsersHandler      *users.Handler
	RBACHandler       *rbac.Handler
	JobHandler        *jobs.Handler
}

// NewRouter constructs the chi.Router with API defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.OK(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		if params.AuthHandler != nil || params.MeHandler != nil {
			r.Route("/auth", func(r chi.Router) {
				if params.AuthHandler != nil {
					params.AuthHandler.MountRoutes(r)
				}
				if params.MeHandler != nil {
					params.MeHandler.MountRoutes(r)
				}
			})
		}
		if params.ProductsHandler != nil {
			r.Route("/products", params.ProductsHandler.MountRoutes)
		}
		if params.CategoriesHandler != nil {
			r.Route("/categories", params.CategoriesHandler.MountRoutes)
		}
		if params.WarehousesHandler != nil {
			r.Route("/warehouses", params.WarehousesHandler.MountRoutes)
		}
		if params.UsersHandler != nil {
			r.Route("/users", params.UsersHandler.MountRoutes)
		}
		if params.RBACHandler != nil {
			r.Route("/rbac", params.RBACHandler.MountRoutes)
		}
		if params.JobHandler != nil {
			r.Route("/jobs", params.JobHandler.MountRoutes)
		}
	})

	return r
}
