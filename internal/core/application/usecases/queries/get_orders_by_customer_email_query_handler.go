package queries

import (
	"context"

	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
)

// GetOrdersByCustomerEmailQueryHandler lists all orders for one customer
// email through the repository port. Returns an empty slice, not an error,
// when the customer has no orders.
type GetOrdersByCustomerEmailQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrdersByCustomerEmailQueryHandler creates a handler for customer
// order lookups.
func NewGetOrdersByCustomerEmailQueryHandler(
	orderRepository ports.OrderRepository,
) GetOrdersByCustomerEmailQueryHandler {
	return GetOrdersByCustomerEmailQueryHandler{orderRepository: orderRepository}
}

// Handle executes the lookup and returns the matching orders.
func (h GetOrdersByCustomerEmailQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerEmailQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.GetByCustomerEmail(ctx, query.Email())
}
