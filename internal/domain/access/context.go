package access

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
)

type ctxKey string

const callerKey ctxKey = "caller"

// Caller is the authenticated identity behind a request
type Caller struct {
	UserID   uuid.UUID
	Email    string
	Role     enum.UserRole
	SellerID *uuid.UUID
}

// ScopedID returns the identifier ownership is checked against: the seller
// profile for sellers, the user otherwise.
func (c *Caller) ScopedID() (uuid.UUID, bool) {
	if c.Role == enum.UserRoleSeller {
		if c.SellerID == nil {
			return uuid.Nil, false
		}
		return *c.SellerID, true
	}
	return c.UserID, true
}

// WithCaller adds the caller to context
func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFrom extracts the caller from context
func CallerFrom(ctx context.Context) (*Caller, bool) {
	caller, ok := ctx.Value(callerKey).(*Caller)
	return caller, ok && caller != nil
}
