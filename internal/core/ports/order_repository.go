// Package ports defines the capability contracts the lifecycle engine
// depends on, decoupled from any specific backing medium.
package ports

import (
	"context"

	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must return defensive copies so callers cannot mutate
// stored state except through Save and UpdateStatus, and must keep listing
// order stable across calls absent concurrent mutation (insertion order for
// the in-memory implementation).
//
// No operation blocks beyond "not found"; retry and backoff semantics are
// outside this contract.
type OrderRepository interface {
	// Save persists an order keyed by its id, overwriting any existing
	// order with the same id. Callers never reuse ids in practice, but the
	// contract is idempotent by id.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomerEmail retrieves all orders whose customer email exactly
	// equals the argument. The match is case sensitive. An empty result is
	// not an error.
	GetByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error)

	// GetByStatus retrieves all orders with exactly the given status.
	// An empty result is not an error.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// UpdateStatus atomically replaces the status of the order with the
	// given id, provided its stored status still equals from. This
	// compare-and-swap closes the check-then-act race between the engine's
	// existence check and the mutation.
	//
	// Returns errs.ObjectNotFoundError when the id is unknown and
	// errs.ConcurrentModificationError when the stored status no longer
	// equals from. On success returns the updated order.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) (*order.Order, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
