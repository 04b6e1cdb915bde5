package access

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/apperror"
)

// Verdict is the outcome of an authorization check
type Verdict int

const (
	Allowed Verdict = iota
	Unauthenticated
	Forbidden
	NotOwner
)

func (v Verdict) String() string {
	switch v {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotOwner:
		return "not_owner"
	}
	return "unknown"
}

// AnyRole lets Guard accept every authenticated caller.
const AnyRole enum.UserRole = ""

// Guard checks a caller against a required role and, when owner is set,
// against the owning identifier of the resource.
func Guard(caller *Caller, required enum.UserRole, owner *uuid.UUID) Verdict {
	if caller == nil || caller.UserID == uuid.Nil {
		return Unauthenticated
	}
	if required != AnyRole && caller.Role != required {
		return Forbidden
	}
	if owner == nil {
		return Allowed
	}
	scoped, ok := caller.ScopedID()
	if !ok {
		return Forbidden
	}
	if scoped != *owner {
		return NotOwner
	}
	return Allowed
}

// GuardContext runs Guard against the caller stored in ctx.
func GuardContext(ctx context.Context, required enum.UserRole, owner *uuid.UUID) (*Caller, Verdict) {
	caller, _ := CallerFrom(ctx)
	return caller, Guard(caller, required, owner)
}

// Err converts a verdict into an application error. Ownership mismatches
// are reported as not found so other sellers' resources stay invisible.
func (v Verdict) Err(resource string) error {
	switch v {
	case Allowed:
		return nil
	case Unauthenticated:
		return apperror.ErrAuthenticationRequired
	case Forbidden:
		return apperror.ErrForbidden
	case NotOwner:
		return apperror.NewNotFoundError(resource)
	}
	return apperror.ErrInternalServer
}

// Require returns the caller in ctx if it holds the required role.
func Require(ctx context.Context, required enum.UserRole) (*Caller, error) {
	caller, verdict := GuardContext(ctx, required, nil)
	if err := verdict.Err(""); err != nil {
		return nil, err
	}
	return caller, nil
}

// RequireSeller returns the caller and its seller profile id.
// A seller without a profile is forbidden.
func RequireSeller(ctx context.Context) (*Caller, uuid.UUID, error) {
	caller, err := Require(ctx, enum.UserRoleSeller)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if caller.SellerID == nil {
		return nil, uuid.Nil, apperror.NewForbiddenError("Seller profile not found")
	}
	return caller, *caller.SellerID, nil
}
