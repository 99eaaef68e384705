package gate

import (
	"net/http"

	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
)

// Reason explains why a request was rejected. The zero value means allowed.
type Reason string

const (
	ReasonNone                   Reason = ""
	ReasonNoCredential           Reason = "no_credential"
	ReasonInvalidSignature       Reason = "invalid_signature"
	ReasonUnknownOrInactive      Reason = "unknown_or_inactive"
	ReasonInsufficientPermission Reason = "insufficient_permission"
	ReasonInsufficientRole       Reason = "insufficient_role"
	ReasonStoreLookupFailed      Reason = "store_lookup_failed"
)

// Status maps the reason to its HTTP class.
func (r Reason) Status() int {
	switch r {
	case ReasonNone:
		return http.StatusOK
	case ReasonNoCredential, ReasonInvalidSignature, ReasonUnknownOrInactive:
		return http.StatusUnauthorized
	case ReasonInsufficientPermission, ReasonInsufficientRole:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-facing text for the reason. It never carries
// internal detail.
func (r Reason) Message() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonNoCredential:
		return "authentication required"
	case ReasonInvalidSignature:
		return "invalid or expired token"
	case ReasonUnknownOrInactive:
		return "account not found or inactive"
	case ReasonInsufficientPermission:
		return "insufficient permission"
	case ReasonInsufficientRole:
		return "insufficient role"
	default:
		return "internal server error"
	}
}

// Decision is the outcome of one gate check. Identity is set only when the
// credential verified, even if authorization then failed.
type Decision struct {
	Allowed  bool
	Reason   Reason
	Identity *auth.ResolvedIdentity
}

// Status returns the HTTP status for the decision.
func (d Decision) Status() int { return d.Reason.Status() }

// Message returns the client-facing message for the decision.
func (d Decision) Message() string { return d.Reason.Message() }

func allow(identity *auth.ResolvedIdentity) Decision {
	return Decision{Allowed: true, Reason: ReasonNone, Identity: identity}
}

func reject(reason Reason, identity *auth.ResolvedIdentity) Decision {
	return Decision{Allowed: false, Reason: reason, Identity: identity}
}
