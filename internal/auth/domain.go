package auth

import (
	"errors"
	"time"
)

// Account is the authenticated actor as stored in the users table.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResolvedIdentity is a credential that passed verification and matched an
// active account. It lives for one request only.
type ResolvedIdentity struct {
	AccountID int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	ExpiresAt time.Time `json:"expires_at"`
	Claims    *Claims   `json:"-"`
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

var (
	// ErrNoCredential means the request carried no bearer token.
	ErrNoCredential = errors.New("auth: no credential")
	// ErrInvalidSignature covers bad signatures, malformed and expired tokens.
	ErrInvalidSignature = errors.New("auth: invalid or expired token")
	// ErrUnknownOrInactiveAccount means the token references no active account.
	ErrUnknownOrInactiveAccount = errors.New("auth: unknown or inactive account")
	// ErrStoreLookup wraps unexpected account store failures.
	ErrStoreLookup = errors.New("auth: account lookup failed")

	// ErrAccountNotFound is returned by AccountStore implementations.
	ErrAccountNotFound = errors.New("auth: account not found")
	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidRefreshToken indicates an unknown, reused or expired refresh token.
	ErrInvalidRefreshToken = errors.New("auth: invalid refresh token")
)
