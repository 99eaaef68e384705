package users

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	ListUsers(ctx context.Context, filters shared.ListFilters) ([]User, int, error)
	GetUser(ctx context.Context, id int64) (User, error)
	CreateUser(ctx context.Context, in NewUser) (User, error)
	SetActive(ctx context.Context, id int64, active bool) (User, error)
}

// Service handles user business logic.
type Service struct {
	repo       RepositoryPort
	bcryptCost int
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, bcryptCost: bcrypt.DefaultCost}
}

// ListUsers returns a page of users.
func (s *Service) ListUsers(ctx context.Context, filters shared.ListFilters) ([]User, int, error) {
	return s.repo.ListUsers(ctx, filters)
}

// GetUser returns a single user.
func (s *Service) GetUser(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, shared.ErrInvalidID
	}
	return s.repo.GetUser(ctx, id)
}

// CreateUser hashes the password and stores the account.
func (s *Service) CreateUser(ctx context.Context, username, email, password string, active bool) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" {
		return User{}, shared.Invalid("username and email are required")
	}
	if len(password) < 8 {
		return User{}, shared.Invalid("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("users: hash password: %w", err)
	}
	return s.repo.CreateUser(ctx, NewUser{Username: username, Email: email, PasswordHash: string(hash), IsActive: active})
}

// SetActive toggles whether the account may authenticate.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (User, error) {
	if id <= 0 {
		return User{}, shared.ErrInvalidID
	}
	return s.repo.SetActive(ctx, id, active)
}
