package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type permGuard struct{ denied map[string]bool }

func (g permGuard) RequirePermission(slug string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.denied[slug] {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (g permGuard) RequireRole(string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func newTestRouter(repo *stubRepo, guard permGuard) http.Handler {
	r := chi.NewRouter()
	NewHandler(nil, newTestService(repo), guard).MountRoutes(r)
	return r
}

func TestHandlerCreateUser(t *testing.T) {
	repo := &stubRepo{}
	router := newTestRouter(repo, permGuard{})

	body := `{"username":"picker1","email":"picker1@example.com","password":"s3cret-pass"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].IsActive)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestHandlerCreateUserRejectsInvalidEmail(t *testing.T) {
	router := newTestRouter(&stubRepo{}, permGuard{})

	body := `{"username":"picker1","email":"nope","password":"s3cret-pass"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandlerSetStatus(t *testing.T) {
	repo := &stubRepo{users: map[int64]User{5: {ID: 5, Username: "picker", IsActive: true}}}
	router := newTestRouter(repo, permGuard{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/5/status", strings.NewReader(`{"is_active":false}`)))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, repo.users[5].IsActive)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/9/status", strings.NewReader(`{"is_active":false}`)))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandlerRoutesUseUserScopes(t *testing.T) {
	repo := &stubRepo{users: map[int64]User{5: {ID: 5}}}
	router := newTestRouter(repo, permGuard{denied: map[string]bool{"user:create": true}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/5", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, repo.created)
}
