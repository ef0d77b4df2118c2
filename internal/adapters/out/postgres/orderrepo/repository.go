package orderrepo

import (
	"context"
	"errors"

	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/core/ports"
	"github.com/camdiaz/xuma/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements OrderRepository using GORM over PostgreSQL.
//
// Status changes go through a conditional UPDATE keyed on the expected
// current status, so two concurrent transitions from the same snapshot
// cannot both win.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save upserts the order keyed by its id.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"date", "status", "customer_name", "customer_email", "products", "total",
			}),
		}).
		Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomerEmail retrieves all orders whose customer email matches
// exactly. PostgreSQL equality on text is case sensitive, matching the
// in-memory adapter.
func (r *GormOrderRepository) GetByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&dtos, "customer_email = ?", email).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetByStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&dtos, "status = ?", int(status)).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// UpdateStatus atomically moves the order from one status to another.
//
// The UPDATE is conditioned on the expected current status. Zero affected
// rows means either the order does not exist (ObjectNotFoundError) or a
// concurrent writer changed the status first (ConcurrentModificationError).
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	from, to order.Status,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", id.Bytes()).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewConcurrentModificationError("order", id.String())
	}

	return r.Get(ctx, id)
}

// GetAll retrieves every stored order in insertion order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
