package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

// ===== MOCK =====

type stubRepo struct {
	created []NewUser
	users   map[int64]User
}

func (s *stubRepo) ListUsers(ctx context.Context, filters shared.ListFilters) ([]User, int, error) {
	return nil, 0, nil
}

func (s *stubRepo) GetUser(ctx context.Context, id int64) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return u, nil
}

func (s *stubRepo) CreateUser(ctx context.Context, in NewUser) (User, error) {
	s.created = append(s.created, in)
	return User{ID: int64(len(s.created)), Username: in.Username, Email: in.Email, IsActive: in.IsActive}, nil
}

func (s *stubRepo) SetActive(ctx context.Context, id int64, active bool) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	u.IsActive = active
	s.users[id] = u
	return u, nil
}

// ===== TESTS =====

func newTestService(repo *stubRepo) *Service {
	svc := NewService(repo)
	svc.bcryptCost = bcrypt.MinCost
	return svc
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo)

	user, err := svc.CreateUser(context.Background(), " picker1 ", " Picker1@Example.com ", "s3cret-pass", true)
	require.NoError(t, err)
	assert.Equal(t, "picker1", user.Username)
	assert.Equal(t, "picker1@example.com", user.Email)

	require.Len(t, repo.created, 1)
	assert.NotEqual(t, "s3cret-pass", repo.created[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created[0].PasswordHash), []byte("s3cret-pass")))
}

func TestCreateUserValidation(t *testing.T) {
	svc := newTestService(&stubRepo{})

	_, err := svc.CreateUser(context.Background(), "", "a@example.com", "long-enough", true)
	require.ErrorIs(t, err, shared.ErrValidation)
	_, err = svc.CreateUser(context.Background(), "a", "a@example.com", "short", true)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestSetActive(t *testing.T) {
	repo := &stubRepo{users: map[int64]User{5: {ID: 5, Username: "picker", IsActive: true}}}
	svc := newTestService(repo)

	user, err := svc.SetActive(context.Background(), 5, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	_, err = svc.SetActive(context.Background(), 6, false)
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.SetActive(context.Background(), 0, false)
	require.ErrorIs(t, err, shared.ErrInvalidID)
}
