package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when placement is attempted on an order
	// without a single line to price.
	ErrOrderHasNoItems = errors.New("order has no items and cannot be placed")
)

// vipDiscountRate is the fixed discount applied to the total of VIP
// customers' orders at placement time.
var vipDiscountRate = decimal.RequireFromString("0.10")

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from draft through placement to fulfillment.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - Status only advances Draft -> Placed -> Shipped -> Delivered, never regresses
//   - The total value is unset until placement computes it
//   - Placement requires at least one item
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the owning customer; immutable post-creation
	customerID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// totalValue is the priced total; nil until placement computes it
	totalValue *kernel.Money

	// vip marks the customer as eligible for the placement discount
	vip bool

	// items are the order lines, in stored order
	items []Item

	// version supports optimistic concurrency control in the store
	version int

	// domainEvents holds events recorded since the last publish
	domainEvents []OrderPlacedEvent

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a Draft order owned by the given customer. This is the
// entry point of the upstream order-building flow; the placement workflow
// only ever loads existing orders.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: identifier of the owning customer (must be a valid UUID)
//   - vip: whether the customer is eligible for the placement discount
//   - items: order lines; may be empty for a draft under construction
//
// Returns a validation error if any identifier or item is invalid.
func NewOrder(id kernel.UUID, customerID kernel.UUID, vip bool, items []Item) (*Order, error) {
	newOrder := &Order{
		status:        Draft,
		vip:           vip,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		newOrder.setID(id),
		newOrder.setCustomerID(customerID),
		newOrder.setItems(items),
	); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status, an already computed total, and the stored
// version, so repositories can rebuild aggregates exactly as they were saved.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	totalValue *kernel.Money,
	vip bool,
	items []Item,
	version int,
) (*Order, error) {
	restored := &Order{
		vip:           vip,
		totalValue:    totalValue,
		isConstructed: true,
	}

	if err := errors.Join(
		restored.setID(id),
		restored.setCustomerID(customerID),
		restored.setStatus(status),
		restored.setItems(items),
		restored.setVersion(version),
	); err != nil {
		return nil, err
	}

	return restored, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalValue returns the priced total.
// Returns nil while the order has not been placed.
func (o *Order) TotalValue() *kernel.Money {
	return o.totalValue
}

// IsVipCustomer reports whether the owning customer is flagged for the
// placement discount.
func (o *Order) IsVipCustomer() bool {
	return o.vip
}

// Items returns the order lines in stored order.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic concurrency version loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// ValidatePlaceable checks whether the order can be placed without
// performing the transition. It enforces the same gates as Place:
// the order must be in Draft status and must have at least one item.
//
// Returns:
//   - ErrOrderIsNotDraft (wrapped) if the status forbids placement
//   - ErrOrderHasNoItems if the order has no lines to price
func (o *Order) ValidatePlaceable() error {
	if err := o.status.ValidatePlace(); err != nil {
		return err
	}

	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	return nil
}

// Place executes the Draft -> Placed transition.
//
// The method enforces the following business rules:
//   - The order must be in Draft status
//   - The order must have at least one item
//
// When the gates pass, it prices the order: line totals are accumulated from
// zero in stored order, and orders of VIP customers get a fixed 10% discount
// off the accumulated total. The computed total and the Placed status are
// then set, and an OrderPlaced domain event is recorded on the aggregate.
//
// Example:
//
//	if err := ord.Place(); err != nil {
//	    // order was not placeable; state is unchanged
//	}
//	total := ord.TotalValue() // fixed exact-decimal total
//
// Place is not idempotent: a second call fails with ErrOrderIsNotDraft and
// leaves the order unchanged.
func (o *Order) Place() error {
	if err := o.ValidatePlaceable(); err != nil {
		return err
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}

	if o.vip {
		total = total.Subtract(total.Multiply(vipDiscountRate))
	}

	o.totalValue = &total
	o.status = newStatus
	o.domainEvents = append(o.domainEvents, NewOrderPlacedEvent(o.id))
	return nil
}

// GetDomainEvents returns the events recorded on the aggregate since the
// last ClearDomainEvents call.
func (o *Order) GetDomainEvents() []OrderPlacedEvent {
	events := make([]OrderPlacedEvent, len(o.domainEvents))
	copy(events, o.domainEvents)
	return events
}

// ClearDomainEvents drops the recorded events. Call after the events have
// been handed over for publication.
func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
