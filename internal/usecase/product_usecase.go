package usecase

import (
	"context"

	"floradesk/internal/domain/entity"
)

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Status      string
}

// UpdateProductInput defines the data for editing a catalog product.
type UpdateProductInput struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Status      string
}

// ProductUsecase defines the interface for product catalog operations.
// The stored status always satisfies the stock rule: zero stock reads
// out_of_stock, positive stock never does.
type ProductUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, actor entity.Actor, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, actor entity.Actor, id int64) error
	Get(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
