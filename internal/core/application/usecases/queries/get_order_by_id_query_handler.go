package queries

import (
	"context"

	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
)

// GetOrderByIDQueryHandler retrieves a single order through the repository
// port. Fails with errs.ErrObjectNotFound when the id is unknown.
type GetOrderByIDQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(orderRepository ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orderRepository: orderRepository}
}

// Handle executes the lookup and returns the order.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.Get(ctx, query.OrderID())
}
