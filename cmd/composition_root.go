package cmd

import (
	"log/slog"

	"github.com/camdiaz/xuma/internal/adapters/in/http"
	"github.com/camdiaz/xuma/internal/core/application/usecases/commands"
	"github.com/camdiaz/xuma/internal/core/application/usecases/queries"
	"github.com/camdiaz/xuma/internal/core/ports"
	"github.com/camdiaz/xuma/internal/jobs"
)

// CompositionRoot wires use case handlers to the configured repository.
// All dependencies are passed in explicitly; nothing here is a singleton.
type CompositionRoot struct {
	config          Config
	orderRepository ports.OrderRepository
}

func NewCompositionRoot(config Config, orderRepository ports.OrderRepository) CompositionRoot {
	return CompositionRoot{
		config:          config,
		orderRepository: orderRepository,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerEmailQueryHandler() queries.GetOrdersByCustomerEmailQueryHandler {
	return queries.NewGetOrdersByCustomerEmailQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepository)
}

// CreateHTTPServer builds the REST server over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrdersByCustomerEmailQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
	)
}

// CreateOrderStatsJob builds the periodic stats reporter, or nil when no
// schedule is configured.
func (c *CompositionRoot) CreateOrderStatsJob(logger *slog.Logger) *jobs.OrderStatsJob {
	if c.config.StatsSchedule == "" {
		return nil
	}
	return jobs.NewOrderStatsJob(c.CreateGetOrdersByStatusQueryHandler(), c.config.StatsSchedule, logger)
}
