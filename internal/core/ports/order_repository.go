package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// version must match the version the aggregate was loaded with;
	// otherwise the update fails with errs.ErrVersionIsInvalid, signalling
	// a concurrent modification the caller may retry against fresh state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its items. Returns errs.ErrObjectNotFound when no order matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInDraftStatus retrieves all orders that have not been placed yet.
	GetAllInDraftStatus(ctx context.Context) ([]*order.Order, error)
}
