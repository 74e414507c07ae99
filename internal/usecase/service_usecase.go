package usecase

import (
	"context"

	"floradesk/internal/domain/entity"
)

// CreateServiceInput defines the data required to add a service offering.
type CreateServiceInput struct {
	Name         string
	Description  string
	Price        float64
	Status       string
	PricingModel string
	PricingUnit  string
	DeliveryTime int
	Category     string
}

// UpdateServiceInput defines the data for editing a service offering.
type UpdateServiceInput struct {
	ID           int64
	Name         string
	Description  string
	Price        float64
	Status       string
	PricingModel string
	PricingUnit  string
	DeliveryTime int
	Category     string
}

// ServiceUsecase defines the interface for service catalog operations.
// Delete refuses to remove a service that existing orders reference.
type ServiceUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreateServiceInput) (*entity.Service, error)
	Update(ctx context.Context, actor entity.Actor, input *UpdateServiceInput) (*entity.Service, error)
	Delete(ctx context.Context, actor entity.Actor, id int64) error
	Get(ctx context.Context, id int64) (*entity.Service, error)
	List(ctx context.Context) ([]*entity.Service, error)
}
