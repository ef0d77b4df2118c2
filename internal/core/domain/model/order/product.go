package order

import (
	"errors"
	"fmt"

	"github.com/camdiaz/xuma/internal/pkg/errs"
)

// Product is a value object describing one line item of an order: a named
// item with a unit price and a quantity. Line items are immutable once the
// order is created; there is no partial-update operation for them.
// Construct instances with NewProduct; the zero value is invalid.
type Product struct {
	name     string
	price    float64
	quantity int
}

// NewProduct creates a Product, validating that the name is non-empty, the
// unit price is greater than 0, and the quantity is a positive integer.
// All violations are accumulated and returned joined.
func NewProduct(name string, price float64, quantity int) (Product, error) {
	var product Product

	if err := errors.Join(
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Name returns the product name.
func (p Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p Product) Price() float64 {
	return p.price
}

// Quantity returns the number of units purchased.
func (p Product) Quantity() int {
	return p.quantity
}

// Subtotal returns price * quantity for this line item.
func (p Product) Subtotal() float64 {
	return p.price * float64(p.quantity)
}

// Validate re-checks the Product invariants. It fails for zero values that
// bypassed NewProduct.
func (p Product) Validate() error {
	var probe Product
	return errors.Join(
		probe.setName(p.name),
		probe.setPrice(p.price),
		probe.setQuantity(p.quantity),
	)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product price",
			fmt.Errorf("%g is not greater than 0", price),
		)
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	p.quantity = quantity
	return nil
}
