package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetDraftOrdersQueryIsNotConstructed = errors.New(
		"GetDraftOrdersQuery must be created via NewGetDraftOrdersQuery constructor",
	)
)

// GetDraftOrdersQuery retrieves all orders still in draft status.
// Used to surface baskets that were started but never placed.
//
// Example:
//
//	query := NewGetDraftOrdersQuery()
//	handler := NewGetDraftOrdersQueryHandler(db)
//
//	drafts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get draft orders: %w", err)
//	}
//
//	fmt.Printf("Found %d draft orders\n", len(drafts))
type GetDraftOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDraftOrdersQuery creates a query to retrieve draft orders.
// This is a parameterless query that fetches every order not yet placed.
func NewGetDraftOrdersQuery() GetDraftOrdersQuery {
	return GetDraftOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDraftOrdersQueryIsNotConstructed if validation fails.
func (q GetDraftOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftOrdersQueryIsNotConstructed)
}

// GetDraftOrdersQueryResponse represents one draft order.
type GetDraftOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Vip        bool
	ItemCount  int
}
