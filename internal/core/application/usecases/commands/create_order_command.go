// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// domain mutation, and persistence through the order repository port.
package commands

import (
	"errors"
	"time"

	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/pkg/errs"
	"github.com/camdiaz/xuma/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CustomerInput carries raw customer fields supplied by the caller.
type CustomerInput struct {
	Name  string
	Email string
}

// ProductInput carries raw line-item fields supplied by the caller.
type ProductInput struct {
	Name     string
	Price    float64
	Quantity int
}

// CreateOrderCommand represents a validated request to create a new purchase
// order. Construction runs every creation rule and accumulates all
// violations, so a failed constructor returns the full itemized list of
// problems rather than just the first one.
//
// Status and date are optional: a zero date means "use the engine clock" and
// an empty status string means "start pending". A caller-supplied status is
// honored as given, which allows bypassing the state machine's initial
// state. That is long-standing documented behavior, preserved deliberately.
//
// Example:
//
//	cmd, err := commands.NewCreateOrderCommand(
//	    commands.CustomerInput{Name: "Jane Doe", Email: "jane@example.com"},
//	    []commands.ProductInput{{Name: "Widget", Price: 100, Quantity: 2}},
//	    "", time.Time{},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer order.Customer
	products []order.Product
	status   order.Status
	date     time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw input and creates the command.
// status may be empty (defaults to pending at handling time) and date may be
// zero (defaults to the engine clock at handling time).
func NewCreateOrderCommand(
	customer CustomerInput,
	products []ProductInput,
	status string,
	date time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomer(customer),
		orderCommand.setProducts(products),
		orderCommand.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.date = date
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the validated purchasing customer.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Products returns the validated line items.
func (c CreateOrderCommand) Products() []order.Product {
	return c.products
}

// Status returns the requested initial status, or order.Unknown when the
// caller did not supply one.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Date returns the requested creation date, or the zero time when the
// caller did not supply one.
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

func (c *CreateOrderCommand) setCustomer(input CustomerInput) error {
	customer, err := order.NewCustomer(input.Name, input.Email)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setProducts(inputs []ProductInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("order products")
	}

	products := make([]order.Product, 0, len(inputs))
	validationErrors := make([]error, 0, len(inputs))
	for _, input := range inputs {
		product, err := order.NewProduct(input.Name, input.Price, input.Quantity)
		if err != nil {
			validationErrors = append(validationErrors, err)
			continue
		}
		products = append(products, product)
	}
	if err := errors.Join(validationErrors...); err != nil {
		return err
	}

	c.products = products
	return nil
}

func (c *CreateOrderCommand) setStatus(status string) error {
	if status == "" {
		c.status = order.Unknown
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
