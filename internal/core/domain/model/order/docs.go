// Package order provides domain entities and business logic for order
// placement. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, pricing, and lifecycle
//   - Item: A line within an order with an immutable unit price and positive quantity
//   - Status: A state machine that enforces valid order status transitions
//   - OrderPlacedEvent: The domain event recorded when a draft order is placed
//
// Key business rules:
//   - Order status follows a defined workflow: Draft -> Placed -> Shipped -> Delivered
//   - Only Draft orders with at least one item can be placed
//   - Placement fixes the total: the exact-decimal sum of line totals,
//     less a fixed 10% discount for VIP customers
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
