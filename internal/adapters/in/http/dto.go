package http

import (
	"time"

	"github.com/camdiaz/xuma/internal/core/domain/model/order"
)

// CustomerPayload carries customer fields on requests and responses.
type CustomerPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// ProductPayload carries a single line item. Price and quantity bounds are
// enforced by the domain model, not here.
type ProductPayload struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. Status and date are
// optional; when omitted the order starts as pending at the current time.
type CreateOrderRequest struct {
	Customer CustomerPayload  `json:"customer" validate:"required"`
	Products []ProductPayload `json:"products" validate:"required,min=1,dive"`
	Status   string           `json:"status"`
	Date     *time.Time       `json:"date"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse is the JSON representation of an order aggregate.
type OrderResponse struct {
	ID       string           `json:"id"`
	Date     time.Time        `json:"date"`
	Status   string           `json:"status"`
	Customer CustomerPayload  `json:"customer"`
	Products []ProductPayload `json:"products"`
	Total    float64          `json:"total"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse carries the full list of validation failures so a client
// can fix all of them in one round trip.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	products := aggregate.Products()
	payloads := make([]ProductPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, ProductPayload{
			Name:     p.Name(),
			Price:    p.Price(),
			Quantity: p.Quantity(),
		})
	}

	return OrderResponse{
		ID:     aggregate.ID().String(),
		Date:   aggregate.Date(),
		Status: aggregate.Status().String(),
		Customer: CustomerPayload{
			Name:  aggregate.Customer().Name(),
			Email: aggregate.Customer().Email(),
		},
		Products: payloads,
		Total:    aggregate.Total(),
	}
}

func toOrderResponses(aggregates []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, toOrderResponse(aggregate))
	}
	return responses
}
