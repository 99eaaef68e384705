package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// LoginRecorder receives successful logins for asynchronous bookkeeping.
type LoginRecorder interface {
	RecordLogin(ctx context.Context, accountID int64, at time.Time) error
}

// Service wraps login, refresh and logout flows.
type Service struct {
	repo     Repository
	tokens   *TokenService
	redis    *redis.Client
	recorder LoginRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a new Service. recorder and logger may be nil.
func NewService(repo Repository, tokens *TokenService, redisClient *redis.Client, recorder LoginRecorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		tokens:   tokens,
		redis:    redisClient,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func refreshKey(jti string) string {
	return "refresh_token:" + jti
}

// Login validates a username-or-email/password pair and issues a token pair.
func (s *Service) Login(ctx context.Context, login, password string) (*TokenPair, error) {
	account, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			s.logger.Error("auth login lookup", slog.Any("error", err))
		}
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, *account)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		if err := s.recorder.RecordLogin(ctx, account.ID, s.now()); err != nil {
			s.logger.Warn("auth record login", slog.Int64("account_id", account.ID), slog.Any("error", err))
		}
	}
	return pair, nil
}

// Refresh exchanges a refresh token for a new pair. Refresh tokens are single
// use: the stored record is removed atomically before new tokens are issued.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken, TokenRefresh)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	stored, err := s.redis.GetDel(ctx, refreshKey(claims.ID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("auth: load refresh token: %w", err)
	}
	if stored != strconv.FormatInt(claims.UserID, 10) {
		return nil, ErrInvalidRefreshToken
	}

	account, err := s.repo.FindAccountByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("auth: refresh lookup: %w", err)
	}
	if !account.IsActive {
		return nil, ErrInvalidRefreshToken
	}
	return s.issuePair(ctx, *account)
}

// Logout revokes a refresh token. Unknown or already revoked tokens are not
// an error.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.Parse(refreshToken, TokenRefresh)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	if err := s.redis.Del(ctx, refreshKey(claims.ID)).Err(); err != nil {
		return fmt.Errorf("auth: revoke refresh token: %w", err)
	}
	return nil
}

func (s *Service) issuePair(ctx context.Context, account Account) (*TokenPair, error) {
	access, err := s.tokens.IssueAccess(account)
	if err != nil {
		return nil, err
	}
	refresh, jti, err := s.tokens.IssueRefresh(account)
	if err != nil {
		return nil, err
	}
	if err := s.redis.Set(ctx, refreshKey(jti), strconv.FormatInt(account.ID, 10), s.tokens.RefreshTTL()).Err(); err != nil {
		return nil, fmt.Errorf("auth: store refresh token: %w", err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}
