// Package identity resolves the authenticated caller from request context.
// The transport layer attaches the caller before invoking a handler; nothing
// in the application reads ambient or global request state.
package identity

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

type contextKey int

const callerKey contextKey = iota

type caller struct {
	userID  kernel.UUID
	isAdmin bool
}

// WithCaller returns a context carrying the authenticated caller.
func WithCaller(ctx context.Context, userID kernel.UUID, isAdmin bool) context.Context {
	return context.WithValue(ctx, callerKey, caller{userID: userID, isAdmin: isAdmin})
}

// ContextIdentity implements IdentityContext by reading the caller
// previously attached with WithCaller.
type ContextIdentity struct{}

// NewContextIdentity creates a context-backed identity resolver.
func NewContextIdentity() ContextIdentity {
	return ContextIdentity{}
}

// CurrentUserID returns the caller's user identifier.
// Returns errs.ErrValueIsRequired when the context carries no identity.
func (ContextIdentity) CurrentUserID(ctx context.Context) (kernel.UUID, error) {
	c, ok := ctx.Value(callerKey).(caller)
	if !ok {
		return kernel.UUID{}, errs.NewValueIsRequiredError("caller identity")
	}
	return c.userID, nil
}

// CurrentUserIsAdmin reports whether the caller holds administrator
// privilege. A context without identity is not an administrator.
func (ContextIdentity) CurrentUserIsAdmin(ctx context.Context) bool {
	c, ok := ctx.Value(callerKey).(caller)
	return ok && c.isAdmin
}

var _ ports.IdentityContext = ContextIdentity{}
