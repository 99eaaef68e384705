package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-at-least-32-chars-long"
	testAccessTTL  = 15 * time.Minute
	testRefreshTTL = 168 * time.Hour
)

var testAccount = Account{ID: 42, Username: "manager1", Email: "manager1@example.com", IsActive: true}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestTokens(t *testing.T, opts ...TokenOption) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, testAccessTTL, testRefreshTTL, opts...)
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	_, err := NewTokenService("short", testAccessTTL, testRefreshTTL)
	require.Error(t, err)

	_, err = NewTokenService(testSecret, 0, testRefreshTTL)
	require.Error(t, err)
}

func TestIssueAndParseAccess(t *testing.T) {
	svc := newTestTokens(t)

	token, err := svc.IssueAccess(testAccount)
	require.NoError(t, err)

	claims, err := svc.Parse(token, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "manager1", claims.Username)
	assert.Equal(t, TokenAccess, claims.TokenType)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(testAccessTTL), claims.ExpiresAt.Time, time.Second)
}

func TestIssueRefreshReturnsJTI(t *testing.T) {
	svc := newTestTokens(t)

	token, jti, err := svc.IssueRefresh(testAccount)
	require.NoError(t, err)

	claims, err := svc.Parse(token, TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, jti, claims.ID)
}

func TestParseRejectsWrongTokenType(t *testing.T) {
	svc := newTestTokens(t)

	refresh, _, err := svc.IssueRefresh(testAccount)
	require.NoError(t, err)

	_, err = svc.Parse(refresh, TokenAccess)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseRejectsExpired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	issuer := newTestTokens(t, WithClock(fixedClock(issuedAt)))
	later := newTestTokens(t, WithClock(fixedClock(issuedAt.Add(testAccessTTL+time.Second))))

	token, err := issuer.IssueAccess(testAccount)
	require.NoError(t, err)

	_, err = issuer.Parse(token, TokenAccess)
	require.NoError(t, err)

	_, err = later.Parse(token, TokenAccess)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	other, err := NewTokenService("another-secret-that-is-32-bytes-long!", testAccessTTL, testRefreshTTL)
	require.NoError(t, err)
	svc := newTestTokens(t)

	token, err := other.IssueAccess(testAccount)
	require.NoError(t, err)

	_, err = svc.Parse(token, TokenAccess)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseRejectsTamperedAndMalformed(t *testing.T) {
	svc := newTestTokens(t)
	token, err := svc.IssueAccess(testAccount)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	forgedPayload := "eyJ1c2VyX2lkIjoxLCJ1c2VybmFtZSI6ImFkbWluIiwidG9rZW5fdHlwZSI6ImFjY2VzcyIsImV4cCI6NDEwMjQ0NDgwMH0"

	for name, candidate := range map[string]string{
		"swapped payload": parts[0] + "." + forgedPayload + "." + parts[2],
		"random string":   "not-a-jwt",
		"two segments":    "header.payload",
		"empty signature": parts[0] + "." + parts[1] + ".",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Parse(candidate, TokenAccess)
			require.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestParseRejectsNoneAlgorithm(t *testing.T) {
	svc := newTestTokens(t)
	claims := Claims{
		UserID:    1,
		TokenType: TokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(unsigned, TokenAccess)
	require.ErrorIs(t, err, ErrInvalidSignature)
}
