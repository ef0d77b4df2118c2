// Package http exposes the order lifecycle over a REST API built on echo.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/camdiaz/xuma/internal/core/application/usecases/commands"
	"github.com/camdiaz/xuma/internal/core/application/usecases/queries"
	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderByIDHandler             queries.GetOrderByIDQueryHandler
	getOrdersByCustomerEmailHandler queries.GetOrdersByCustomerEmailQueryHandler
	getOrdersByStatusHandler        queries.GetOrdersByStatusQueryHandler
	getAllOrdersHandler             queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByCustomerEmailHandler queries.GetOrdersByCustomerEmailQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		updateOrderStatusHandler:        updateOrderStatusHandler,
		getOrderByIDHandler:             getOrderByIDHandler,
		getOrdersByCustomerEmailHandler: getOrdersByCustomerEmailHandler,
		getOrdersByStatusHandler:        getOrdersByStatusHandler,
		getAllOrdersHandler:             getAllOrdersHandler,
	}
}

// RegisterRoutes wires the API routes and the request validator into echo.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	products := make([]commands.ProductInput, 0, len(request.Products))
	for _, p := range request.Products {
		products = append(products, commands.ProductInput{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	var date time.Time
	if request.Date != nil {
		date = *request.Date
	}

	cmd, err := commands.NewCreateOrderCommand(
		commands.CustomerInput{Name: request.Customer.Name, Email: request.Customer.Email},
		products,
		request.Status,
		date,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
	}

	found, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// GetOrders handles GET /api/v1/orders with optional email or status filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	email := ctx.QueryParam("email")
	statusParam := ctx.QueryParam("status")

	if email != "" && statusParam != "" {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "email and status filters cannot be combined",
		})
	}

	requestCtx := ctx.Request().Context()

	switch {
	case email != "":
		query, err := queries.NewGetOrdersByCustomerEmailQuery(email)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
		}
		orders, err := s.getOrdersByCustomerEmailHandler.Handle(requestCtx, query)
		if err != nil {
			return s.respondDomainError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderResponses(orders))

	case statusParam != "":
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
		}
		query, err := queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
		}
		orders, err := s.getOrdersByStatusHandler.Handle(requestCtx, query)
		if err != nil {
			return s.respondDomainError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderResponses(orders))

	default:
		query, err := queries.NewGetAllOrdersQuery()
		if err != nil {
			return s.respondDomainError(ctx, err)
		}
		orders, err := s.getAllOrdersHandler.Handle(requestCtx, query)
		if err != nil {
			return s.respondDomainError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, toOrderResponses(orders))
	}
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// respondDomainError maps domain and storage failures to HTTP statuses.
func (s *Server) respondDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorsResponse{Errors: flattenErrors(err)})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// flattenErrors turns a joined validation error into one message per failed
// rule so clients see all violations at once.
func flattenErrors(err error) []string {
	return strings.Split(err.Error(), "\n")
}
