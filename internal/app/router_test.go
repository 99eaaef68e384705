package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
	"github.com/odyssey-erp/odyssey-warehouse/internal/gate"
	"github.com/odyssey-erp/odyssey-warehouse/internal/observability"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
)

// ===== MOCK =====

type fixedAccounts map[int64]auth.Account

func (f fixedAccounts) FindAccountByID(_ context.Context, id int64) (*auth.Account, error) {
	account, ok := f[id]
	if !ok {
		return nil, auth.ErrAccountNotFound
	}
	return &account, nil
}

type fixedGrants map[int64][]rbac.Grant

func (f fixedGrants) GrantsForAccount(_ context.Context, id int64) ([]rbac.Grant, error) {
	return f[id], nil
}

// ===== TESTS =====

func newTestRouter(t *testing.T) (http.Handler, *auth.TokenService) {
	t.Helper()
	tokens, err := auth.NewTokenService(strings.Repeat("k", 32), time.Minute, time.Hour)
	require.NoError(t, err)

	accounts := fixedAccounts{1: {ID: 1, Username: "manager", Email: "m@example.com", IsActive: true}}
	evaluator := rbac.NewEvaluator(fixedGrants{1: {{RoleSlug: "manager", PermissionSlug: rbac.PermProductRead}}})
	metrics := observability.NewMetrics()
	guard := gate.NewMiddleware(gate.New(auth.NewVerifier(tokens, accounts), evaluator, gate.WithRecorder(metrics)))

	cfg := &Config{AppEnv: "test", RateLimitPerMinute: 1000, AppRequestTimeout: time.Second}
	return NewRouter(RouterParams{
		Config:    cfg,
		Metrics:   metrics,
		MeHandler: gate.NewMeHandler(nil, evaluator, guard),
	}), tokens
}

func TestRouterHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{"status":"ok"}}`, rr.Body.String())
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestRouterMeRequiresCredential(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"authentication required"}`, rr.Body.String())
}

func TestRouterMeWithToken(t *testing.T) {
	router, tokens := newTestRouter(t)
	access, err := tokens.IssueAccess(auth.Account{ID: 1, Username: "manager"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"product:read"`)
	assert.Contains(t, rr.Body.String(), `"manager"`)
}

func TestRouterNotFoundEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"not found"}`, rr.Body.String())
}

func TestRouterExposesMetrics(t *testing.T) {
	router, _ := newTestRouter(t)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `warehouse_gate_decisions_total{outcome="rejected",reason="no_credential"} 1`)
}
