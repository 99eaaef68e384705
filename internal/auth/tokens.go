package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the shortest accepted HS256 signing secret.
const MinSecretLength = 32

// TokenType distinguishes access from refresh tokens.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Claims is the JWT payload issued by the service.
type Claims struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService signs and parses HS256 tokens with a process-wide secret.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTokenService builds a TokenService. The secret must be at least
// MinSecretLength bytes.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, opts ...TokenOption) (*TokenService, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("auth: jwt secret must be at least %d bytes", MinSecretLength)
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("auth: token ttl must be positive")
	}
	s := &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AccessTTL returns the access token lifetime.
func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL returns the refresh token lifetime.
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// IssueAccess signs an access token for the account.
func (s *TokenService) IssueAccess(account Account) (string, error) {
	token, _, err := s.issue(account, TokenAccess, s.accessTTL)
	return token, err
}

// IssueRefresh signs a refresh token and returns its jti alongside.
func (s *TokenService) IssueRefresh(account Account) (string, string, error) {
	return s.issue(account, TokenRefresh, s.refreshTTL)
}

func (s *TokenService) issue(account Account, kind TokenType, ttl time.Duration) (string, string, error) {
	now := s.now()
	jti := uuid.NewString()
	claims := Claims{
		UserID:    account.ID,
		Username:  account.Username,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("auth: sign %s token: %w", kind, err)
	}
	return signed, jti, nil
}

// Parse validates signature, expiry and token type. Every failure is reported
// as ErrInvalidSignature wrapping the parser error.
func (s *TokenService) Parse(tokenString string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}
	if claims.TokenType != want {
		return nil, fmt.Errorf("%w: token type %q", ErrInvalidSignature, claims.TokenType)
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidSignature)
	}
	return claims, nil
}
