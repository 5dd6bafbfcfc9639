package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// IdentityContext resolves the authenticated caller at invocation time.
// Implementations read the identity the transport layer attached to the
// request context; there is no ambient or global request state.
type IdentityContext interface {
	// CurrentUserID returns the caller's user identifier.
	// Returns errs.ErrValueIsRequired when the context carries no identity.
	CurrentUserID(ctx context.Context) (kernel.UUID, error)

	// CurrentUserIsAdmin reports whether the caller holds administrator
	// privilege. A context without identity is not an administrator.
	CurrentUserIsAdmin(ctx context.Context) bool
}
