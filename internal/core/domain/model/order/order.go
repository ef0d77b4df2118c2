package order

import (
	"errors"
	"time"

	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a purchase order in the system. It is the aggregate root
// that manages the order lifecycle from creation through fulfillment.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and creation date
//   - Must have a valid customer and at least one valid product
//   - Total equals the sum of price * quantity over all line items at
//     creation time; line items are immutable afterwards, so the total is
//     never recomputed
//   - Status changes follow the permitted edges of the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; after creation,
// ChangeStatus is the only mutator.
type Order struct {
	// id is the unique identifier for the order, immutable after creation
	id kernel.UUID

	// date is the creation timestamp, immutable after creation
	date time.Time

	// status represents the current state in the order lifecycle
	status Status

	// customer is the purchasing customer, embedded by value
	customer Customer

	// products is the non-empty ordered list of line items
	products []Product

	// total is the monetary sum over all line items, fixed at creation
	total float64

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order with validation, computing the total from the
// given products. The caller supplies the creation date and initial status;
// defaulting either of them (date to "now", status to Pending) is the
// lifecycle engine's responsibility, not the aggregate's.
//
// Validation accumulates all violations: invalid id, zero date, invalid
// status, invalid customer, empty product list, or any invalid product.
//
// Example:
//
//	customer, _ := order.NewCustomer("Jane Doe", "jane@example.com")
//	widget, _ := order.NewProduct("Widget", 100, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), time.Now(), order.Pending, customer, []order.Product{widget})
//	if err != nil {
//	    // handle validation error
//	}
//	// o.Total() == 200
func NewOrder(
	id kernel.UUID,
	date time.Time,
	status Status,
	customer Customer,
	products []Product,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDate(date),
		order.setStatus(status),
		order.setCustomer(customer),
		order.setProducts(products),
	); err != nil {
		return nil, err
	}

	order.total = computeTotal(order.products)
	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// does not recompute the total: line items are immutable post-creation, so
// the stored total is authoritative.
//
// This function is intended for storage adapters rehydrating aggregates.
func RestoreOrder(
	id kernel.UUID,
	date time.Time,
	status Status,
	customer Customer,
	products []Product,
	total float64,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDate(date),
		order.setStatus(status),
		order.setCustomer(customer),
		order.setProducts(products),
	); err != nil {
		return nil, err
	}

	order.total = total
	return order, nil
}

// computeTotal sums price * quantity over all line items.
func computeTotal(products []Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Subtotal()
	}
	return total
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Date returns the order's creation timestamp.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the purchasing customer.
func (o *Order) Customer() Customer {
	return o.customer
}

// Products returns a copy of the order's line items.
// The copy keeps the aggregate's internal slice immutable from the outside.
func (o *Order) Products() []Product {
	products := make([]Product, len(o.products))
	copy(products, o.products)
	return products
}

// Total returns the monetary sum computed at creation time.
func (o *Order) Total() float64 {
	return o.total
}

// ChangeStatus transitions the order to the target status.
//
// The transition must be a permitted edge of the state machine:
// pending -> processing, processing -> completed, processing -> cancelled.
// Any other pair, including self-transitions and anything leaving a terminal
// status, fails with errs.ErrInvalidStateTransition naming the current
// status, the rejected target, and the allowed targets.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setDate validates and sets the order's creation timestamp.
func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.date = date
	return nil
}

// setStatus validates and sets the order's status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCustomer validates and sets the purchasing customer.
func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setProducts validates and sets the order's line items, copying the slice
// so later caller mutations cannot reach the aggregate.
func (o *Order) setProducts(products []Product) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("order products")
	}

	validationErrors := make([]error, 0, len(products))
	for _, p := range products {
		validationErrors = append(validationErrors, p.Validate())
	}
	if err := errors.Join(validationErrors...); err != nil {
		return err
	}

	o.products = make([]Product, len(products))
	copy(o.products, products)
	return nil
}
