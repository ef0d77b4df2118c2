// Package orderrepo provides the in-memory implementation of the order
// repository port. It is the reference backend: a process-lifetime map keyed
// by order id with secondary scans for email and status lookups. Nothing is
// persisted; the store vanishes on process exit.
package orderrepo

import (
	"context"
	"sync"

	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
	"github.com/camdiaz/xuma/internal/pkg/errs"
)

// InMemoryOrderRepository stores order aggregates in a map guarded by a
// read-write mutex. The whole-map write lock serializes mutators, which
// satisfies the per-key serialization the contract requires; reads proceed
// concurrently under the read lock.
//
// The hosting process constructs exactly one instance and passes it to every
// engine handler.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order

	// insertion keeps ids in arrival order so listing is stable across calls
	insertion []kernel.UUID
}

var _ ports.OrderRepository = (*InMemoryOrderRepository)(nil)

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// clone rebuilds an aggregate so stored state and caller state never share
// memory. Without this, a caller mutating the order it got from Get would
// bypass UpdateStatus and its compare-and-swap.
func clone(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.Date(), o.Status(), o.Customer(), o.Products(), o.Total())
}

// Save persists the order keyed by its id, overwriting an existing entry
// with the same id. New ids are appended to the insertion order.
func (r *InMemoryOrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; !exists {
		r.insertion = append(r.insertion, aggregate.ID())
	}
	r.orders[aggregate.ID()] = stored
	return nil
}

// Get retrieves an order by id.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return clone(stored)
}

// GetByCustomerEmail retrieves all orders with exactly the given customer
// email, in insertion order. The match is case sensitive.
func (r *InMemoryOrderRepository) GetByCustomerEmail(_ context.Context, email string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.scan(func(o *order.Order) bool {
		return o.Customer().Email() == email
	})
}

// GetByStatus retrieves all orders with exactly the given status, in
// insertion order.
func (r *InMemoryOrderRepository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.scan(func(o *order.Order) bool {
		return o.Status() == status
	})
}

// UpdateStatus replaces the stored status under the write lock, provided it
// still equals from. Holding the lock across the check and the write closes
// the check-then-act race.
func (r *InMemoryOrderRepository) UpdateStatus(
	_ context.Context,
	id kernel.UUID,
	from, to order.Status,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	if stored.Status() != from {
		return nil, errs.NewConcurrentModificationError("order", id.String())
	}

	updated, err := order.RestoreOrder(
		stored.ID(), stored.Date(), to, stored.Customer(), stored.Products(), stored.Total(),
	)
	if err != nil {
		return nil, err
	}

	r.orders[id] = updated
	return clone(updated)
}

// GetAll retrieves every stored order in insertion order.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.scan(func(*order.Order) bool { return true })
}

// scan walks the insertion order and clones matching orders.
// Callers must hold at least the read lock.
func (r *InMemoryOrderRepository) scan(match func(*order.Order) bool) ([]*order.Order, error) {
	out := make([]*order.Order, 0)
	for _, id := range r.insertion {
		stored := r.orders[id]
		if !match(stored) {
			continue
		}
		cp, err := clone(stored)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}
