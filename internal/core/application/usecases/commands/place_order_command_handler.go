package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/outbox"
)

// ErrOrderPlacementNotAllowed is returned when the caller is neither the
// order's customer nor an administrator.
var ErrOrderPlacementNotAllowed = errors.New(
	"caller is neither the order's customer nor an administrator",
)

// PlaceOrderCommandHandler executes the Draft -> Placed transition for one
// order: it loads the aggregate, gates placement on state and caller
// identity, prices and places the order, and commits the result together
// with its OrderPlaced event through the transactional outbox.
//
// The commit is the durability boundary. The confirmation notification runs
// after it and is best effort: a failure is logged, never returned, and the
// committed placement stands. The domain event is relayed from the outbox by
// the dispatcher job, so it survives notification or broker failures.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityContext
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a unit of work factory for transactional persistence, an identity
// context to resolve the caller, and a notifier for the confirmation email.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityContext,
	notifier ports.Notifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		notifier:   notifier,
		logger:     logger.With("component", "place_order_command_handler"),
	}
}

// Handle processes the placement command.
//
// Validation gates, in order: the order must exist, must be in Draft status,
// must have at least one item, and the caller must be the owning customer or
// an administrator. Any failed gate aborts the attempt before mutation or
// persistence, so no partial state change is visible.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	placedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = placedOrder.ValidatePlaceable(); err != nil {
		return err
	}

	if err = h.authorize(ctx, placedOrder); err != nil {
		return err
	}

	if err = placedOrder.Place(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, placedOrder); err != nil {
		return err
	}

	outboxRepo := uow.OutboxRepository()
	for _, event := range placedOrder.GetDomainEvents() {
		message, msgErr := outbox.NewMessage(
			event.EventID, order.EventTypeOrderPlaced, event.OrderID, event)
		if msgErr != nil {
			return msgErr
		}

		if err = outboxRepo.Add(ctx, &message); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	placedOrder.ClearDomainEvents()

	if err = h.notifier.SendOrderConfirmation(ctx, placedOrder); err != nil {
		h.logger.WarnContext(ctx, "Order confirmation was not sent",
			"order_id", placedOrder.ID().String(), "error", err)
	}

	return nil
}

// authorize checks that the caller owns the order or holds administrator
// privilege. A context without a resolvable identity is not authorized.
func (h *PlaceOrderCommandHandler) authorize(ctx context.Context, placedOrder *order.Order) error {
	userID, err := h.identity.CurrentUserID(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOrderPlacementNotAllowed, err)
	}

	if userID.IsEqual(placedOrder.CustomerID()) || h.identity.CurrentUserIsAdmin(ctx) {
		return nil
	}

	return ErrOrderPlacementNotAllowed
}
