package queries

import (
	"errors"

	"github.com/camdiaz/xuma/internal/pkg/errs"
	"github.com/camdiaz/xuma/internal/pkg/guard"
)

var ErrGetOrdersByCustomerEmailQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerEmailQuery must be created via NewGetOrdersByCustomerEmailQuery constructor",
)

// GetOrdersByCustomerEmailQuery retrieves all orders placed under one
// customer email. The match is exact and case sensitive; an empty result is
// not an error.
type GetOrdersByCustomerEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerEmailQuery creates the query. Validates that the
// email is non-empty; no format check is applied since any string simply
// matches nothing.
func NewGetOrdersByCustomerEmailQuery(email string) (GetOrdersByCustomerEmailQuery, error) {
	if email == "" {
		return GetOrdersByCustomerEmailQuery{}, errs.NewValueIsRequiredError("customer email")
	}

	return GetOrdersByCustomerEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerEmailQueryIsNotConstructed)
}

// Email returns the customer email to match.
func (q GetOrdersByCustomerEmailQuery) Email() string {
	return q.email
}
