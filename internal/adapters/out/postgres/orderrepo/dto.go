// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to a relational table with indexes for the two
// supported filters, customer email and status. Line items are denormalized
// into a jsonb column since they are immutable after creation and never
// queried individually. Seq is a database-assigned insertion counter that
// keeps listings in insertion order across restarts.
type OrderDTO struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Seq           int64        `gorm:"autoIncrement;uniqueIndex"`
	Date          time.Time    `gorm:"not null"`
	Status        int          `gorm:"index;not null"`
	CustomerName  string       `gorm:"not null"`
	CustomerEmail string       `gorm:"index;not null"`
	Products      ProductsJSON `gorm:"type:jsonb;not null"`
	Total         float64      `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO is the jsonb representation of a single line item.
type ProductDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ProductsJSON stores the order's line items as a jsonb array.
type ProductsJSON []ProductDTO

// Value serializes the line items for storage.
func (p ProductsJSON) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan deserializes the jsonb column back into line items.
func (p *ProductsJSON) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			raw = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into ProductsJSON", value)
		}
	}
	return json.Unmarshal(raw, p)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	products := aggregate.Products()
	dtos := make(ProductsJSON, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ProductDTO{
			Name:     p.Name(),
			Price:    p.Price(),
			Quantity: p.Quantity(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Date:          aggregate.Date(),
		Status:        int(aggregate.Status()),
		CustomerName:  aggregate.Customer().Name(),
		CustomerEmail: aggregate.Customer().Email(),
		Products:      dtos,
		Total:         aggregate.Total(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so the stored total
// is kept as-is rather than recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(dto.Products))
	for _, p := range dto.Products {
		product, productErr := order.NewProduct(p.Name, p.Price, p.Quantity)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return order.RestoreOrder(id, dto.Date, order.Status(dto.Status), customer, products, dto.Total)
}
