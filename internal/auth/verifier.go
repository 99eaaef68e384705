package auth

import (
	"context"
	"errors"
	"fmt"
)

// AccountStore looks accounts up by identifier. Implementations return
// ErrAccountNotFound when no row exists.
type AccountStore interface {
	FindAccountByID(ctx context.Context, id int64) (*Account, error)
}

// Verifier turns a bearer credential into a ResolvedIdentity.
type Verifier struct {
	tokens   *TokenService
	accounts AccountStore
}

// NewVerifier constructs a Verifier.
func NewVerifier(tokens *TokenService, accounts AccountStore) *Verifier {
	return &Verifier{tokens: tokens, accounts: accounts}
}

// Verify validates the credential and resolves the referenced account. An
// empty credential means none was presented. The account store is consulted
// only after the token itself checks out, and never retried.
func (v *Verifier) Verify(ctx context.Context, credential string) (*ResolvedIdentity, error) {
	if credential == "" {
		return nil, ErrNoCredential
	}
	claims, err := v.tokens.Parse(credential, TokenAccess)
	if err != nil {
		return nil, err
	}
	account, err := v.accounts.FindAccountByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrUnknownOrInactiveAccount
		}
		return nil, fmt.Errorf("%w: account %d: %w", ErrStoreLookup, claims.UserID, err)
	}
	if account == nil || !account.IsActive {
		return nil, ErrUnknownOrInactiveAccount
	}
	identity := &ResolvedIdentity{
		AccountID: account.ID,
		Username:  account.Username,
		Email:     account.Email,
		IsActive:  account.IsActive,
		Claims:    claims,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
