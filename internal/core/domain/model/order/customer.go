package order

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/camdiaz/xuma/internal/pkg/errs"
)

// emailPattern accepts local@domain.tld with no embedded whitespace.
// Intentionally simple; deliverability checks are not a domain concern.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Customer is a value object describing the purchasing customer.
// It has no identity of its own and is embedded by value in an Order.
// Construct instances with NewCustomer; the zero value is invalid.
type Customer struct {
	name  string
	email string
}

// NewCustomer creates a Customer, validating that the name is non-empty and
// the email matches a simple local@domain.tld pattern. All violations are
// accumulated and returned joined.
func NewCustomer(name string, email string) (Customer, error) {
	var customer Customer

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c Customer) Email() string {
	return c.email
}

// Validate re-checks the Customer invariants. It fails for zero values that
// bypassed NewCustomer.
func (c Customer) Validate() error {
	var probe Customer
	return errors.Join(
		probe.setName(c.name),
		probe.setEmail(c.email),
	)
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer email",
			fmt.Errorf("%s does not match local@domain.tld", email),
		)
	}
	c.email = email
	return nil
}
