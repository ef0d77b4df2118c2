package commands

import (
	"context"
	"time"

	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Assigns a fresh unique id, defaults the creation date and initial status,
// computes the total, and persists the order through the repository port.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(repo)
//	cmd, _ := NewCreateOrderCommand(customer, products, "", time.Time{})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.Status() == order.Pending, created.Total() is computed
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	clock           func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation using
// time.Now as the clock source.
func NewCreateOrderCommandHandler(orderRepository ports.OrderRepository) CreateOrderCommandHandler {
	return NewCreateOrderCommandHandlerWithClock(orderRepository, time.Now)
}

// NewCreateOrderCommandHandlerWithClock creates a handler with an explicit
// clock source for default creation timestamps.
func NewCreateOrderCommandHandlerWithClock(
	orderRepository ports.OrderRepository,
	clock func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
		clock:           clock,
	}
}

// Handle processes the order creation command and returns the persisted
// order. A caller-supplied date or status is honored; otherwise the date
// defaults to the clock and the status to pending.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	date := cmd.Date()
	if date.IsZero() {
		date = h.clock()
	}

	status := cmd.Status()
	if status == order.Unknown {
		status = order.Pending
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), date, status, cmd.Customer(), cmd.Products())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
