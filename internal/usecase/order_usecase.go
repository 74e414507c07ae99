package usecase

import (
	"context"
	"time"

	"floradesk/internal/domain/entity"
)

// CreateOrderInput defines the data required to book an order.
// TotalPrice is not accepted from the caller; it is derived from the
// referenced service's price.
type CreateOrderInput struct {
	UserID        int64
	ServiceID     *int64
	Status        string
	PaymentStatus string
	PaymentMethod string
	Notes         string
	OrderDate     time.Time
	DeliveryDate  *time.Time
}

// UpdateOrderInput defines the data for editing an order.
type UpdateOrderInput struct {
	ID            int64
	UserID        int64
	ServiceID     *int64
	Status        string
	PaymentStatus string
	PaymentMethod string
	Notes         string
	OrderDate     time.Time
	DeliveryDate  *time.Time
}

// OrderUsecase defines the interface for order management operations.
type OrderUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreateOrderInput) (*entity.Order, error)
	Update(ctx context.Context, actor entity.Actor, input *UpdateOrderInput) (*entity.Order, error)
	Delete(ctx context.Context, actor entity.Actor, id int64) error
	Get(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, from, to *time.Time) ([]*entity.Order, error)
}
