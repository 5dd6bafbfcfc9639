package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDraftOrdersQueryHandler retrieves draft orders from the database.
//
// Example:
//
//	handler := NewGetDraftOrdersQueryHandler(db)
//	query := NewGetDraftOrdersQuery()
//
//	drafts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get draft orders: %v", err)
//	    return err
//	}
type GetDraftOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDraftOrdersQueryHandler creates a handler for draft order queries.
// Requires a GORM database connection for query execution.
func NewGetDraftOrdersQueryHandler(db *gorm.DB) GetDraftOrdersQueryHandler {
	return GetDraftOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all draft orders together with
// their item counts. Results are sorted by order ID for consistent output.
func (h GetDraftOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDraftOrdersQuery,
) ([]GetDraftOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drafts := make([]GetDraftOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.vip,
			COUNT(i.id)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id, o.customer_id, o.vip
		ORDER BY o.id
	`, order.Draft).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var draft GetDraftOrdersQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(&id, &customerID, &draft.Vip, &draft.ItemCount)
		if err != nil {
			return nil, err
		}

		if draft.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if draft.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drafts, nil
}
