package queries

import (
	"context"

	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
)

// GetAllOrdersQueryHandler lists every stored order through the repository
// port, preserving storage insertion order.
type GetAllOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for full listings.
func NewGetAllOrdersQueryHandler(orderRepository ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle returns every stored order.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.GetAll(ctx)
}
