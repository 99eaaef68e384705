package jobs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== MOCK =====

type stubInspector struct {
	info *asynq.QueueInfo
	err  error
}

func (s stubInspector) GetQueueInfo(string) (*asynq.QueueInfo, error) { return s.info, s.err }

type roleGuard struct{ roles []string }

func (g *roleGuard) RequirePermission(string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func (g *roleGuard) RequireRole(slug string) func(http.Handler) http.Handler {
	g.roles = append(g.roles, slug)
	return func(next http.Handler) http.Handler { return next }
}

// ===== TESTS =====

func serveHealth(t *testing.T, inspector QueueInspector) (*httptest.ResponseRecorder, *roleGuard) {
	t.Helper()
	guard := &roleGuard{}
	r := chi.NewRouter()
	NewHandler(inspector, guard, nil).MountRoutes(r)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rr, guard
}

func TestHealthReportsPending(t *testing.T) {
	rr, guard := serveHealth(t, stubInspector{info: &asynq.QueueInfo{Queue: QueueDefault, Pending: 4, Active: 1}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"admin"}, guard.roles)

	var body struct {
		Data queueHealth `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, QueueDefault, body.Data.Queue)
	assert.Equal(t, 4, body.Data.Pending)
	assert.Equal(t, 1, body.Data.Active)
}

func TestHealthWithoutInspector(t *testing.T) {
	rr, _ := serveHealth(t, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"pending":0`)
}

func TestHealthInspectorFailure(t *testing.T) {
	rr, _ := serveHealth(t, stubInspector{err: errors.New("redis down")})
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestNewWorkerRequiresHandlers(t *testing.T) {
	_, err := NewWorker(WorkerConfig{})
	assert.Error(t, err)
}
