package queries

import (
	"context"

	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
)

// GetOrdersByStatusQueryHandler lists all orders currently in one lifecycle
// status through the repository port.
type GetOrdersByStatusQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for status filters.
func NewGetOrdersByStatusQueryHandler(
	orderRepository ports.OrderRepository,
) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orderRepository: orderRepository}
}

// Handle executes the filter and returns the matching orders.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.GetByStatus(ctx, query.Status())
}
