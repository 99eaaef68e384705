// Package gate authenticates and authorizes every protected request.
package gate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
)

// CredentialVerifier resolves a bearer credential to an active account.
type CredentialVerifier interface {
	Verify(ctx context.Context, credential string) (*auth.ResolvedIdentity, error)
}

// Authorizer tests an account against a capability requirement.
type Authorizer interface {
	Authorize(ctx context.Context, accountID int64, req rbac.Requirement) error
}

// DecisionRecorder counts gate outcomes.
type DecisionRecorder interface {
	RecordGateDecision(outcome, reason string)
}

// Gate runs verify then authorize. It holds no mutable state and is safe for
// concurrent use.
type Gate struct {
	verifier   CredentialVerifier
	authorizer Authorizer
	logger     *slog.Logger
	recorder   DecisionRecorder
}

// Option customises a Gate.
type Option func(*Gate)

// WithLogger sets the logger used for rejection detail.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRecorder sets the decision counter.
func WithRecorder(recorder DecisionRecorder) Option {
	return func(g *Gate) { g.recorder = recorder }
}

// New constructs a Gate.
func New(verifier CredentialVerifier, authorizer Authorizer, opts ...Option) *Gate {
	g := &Gate{verifier: verifier, authorizer: authorizer, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check verifies the credential exactly once and, when req is non-nil,
// authorizes the resolved account at most once. The empty credential means
// none was presented. Nothing is retried.
func (g *Gate) Check(ctx context.Context, credential string, req *rbac.Requirement) Decision {
	decision := g.check(ctx, credential, req)
	g.record(decision)
	return decision
}

func (g *Gate) check(ctx context.Context, credential string, req *rbac.Requirement) Decision {
	identity, err := g.verifier.Verify(ctx, credential)
	if err != nil {
		reason := verifyReason(err)
		g.logRejection(ctx, reason, 0, req, err)
		return reject(reason, nil)
	}
	if req == nil {
		return allow(identity)
	}
	if err := g.authorizer.Authorize(ctx, identity.AccountID, *req); err != nil {
		reason := authorizeReason(err)
		g.logRejection(ctx, reason, identity.AccountID, req, err)
		return reject(reason, identity)
	}
	return allow(identity)
}

func verifyReason(err error) Reason {
	switch {
	case errors.Is(err, auth.ErrNoCredential):
		return ReasonNoCredential
	case errors.Is(err, auth.ErrInvalidSignature):
		return ReasonInvalidSignature
	case errors.Is(err, auth.ErrUnknownOrInactiveAccount):
		return ReasonUnknownOrInactive
	default:
		return ReasonStoreLookupFailed
	}
}

func authorizeReason(err error) Reason {
	switch {
	case errors.Is(err, rbac.ErrInsufficientPermission):
		return ReasonInsufficientPermission
	case errors.Is(err, rbac.ErrInsufficientRole):
		return ReasonInsufficientRole
	default:
		return ReasonStoreLookupFailed
	}
}

func (g *Gate) logRejection(ctx context.Context, reason Reason, accountID int64, req *rbac.Requirement, err error) {
	attrs := []any{slog.String("reason", string(reason)), slog.Any("error", err)}
	if accountID > 0 {
		attrs = append(attrs, slog.Int64("account_id", accountID))
	}
	if req != nil {
		attrs = append(attrs, slog.String("requirement", req.String()))
	}
	if reason == ReasonStoreLookupFailed {
		g.logger.ErrorContext(ctx, "gate store lookup", attrs...)
		return
	}
	g.logger.DebugContext(ctx, "gate rejected", attrs...)
}

func (g *Gate) record(d Decision) {
	if g.recorder == nil {
		return
	}
	outcome := "allowed"
	if !d.Allowed {
		outcome = "rejected"
	}
	g.recorder.RecordGateDecision(outcome, string(d.Reason))
}
