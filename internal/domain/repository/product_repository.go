package repository

import (
	"context"
	"errors"

	"floradesk/internal/domain/entity"
)

// ErrProductNotFound is returned when a product lookup matches nothing.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List returns products ordered by creation date descending.
	List(ctx context.Context) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
