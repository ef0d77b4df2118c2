package commands

import (
	"context"

	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// Loads the order, asks the aggregate to perform the transition (which
// enforces the state machine), and persists the new status through the
// repository's compare-and-swap update.
//
// Error kinds surfaced:
//   - errs.ErrObjectNotFound when the order id is unknown
//   - errs.ErrInvalidStateTransition when the requested change is not a
//     permitted edge from the order's current status
//   - errs.ErrConcurrentModification when another writer changed the stored
//     status between the read and the swap; the losing request gets the
//     error instead of silently overwriting the winner's transition
type UpdateOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(orderRepository ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the status update command and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	current := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	updated, err := h.orderRepository.UpdateStatus(ctx, cmd.OrderID(), current, cmd.Status())
	if err != nil {
		return nil, err
	}

	return updated, nil
}
