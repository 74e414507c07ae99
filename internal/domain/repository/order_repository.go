package repository

import (
	"context"
	"errors"
	"time"

	"floradesk/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order lookup matches nothing.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// List returns orders sorted by order date descending, optionally
	// bounded to orderDate within [from, to). Service and client names are
	// populated on the returned entities.
	List(ctx context.Context, from, to *time.Time) ([]*entity.Order, error)

	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// CountByUser counts the orders belonging to one client.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// CountByService counts the orders referencing one service.
	CountByService(ctx context.Context, serviceID int64) (int64, error)

	// TotalRevenue sums totalPrice across all orders.
	TotalRevenue(ctx context.Context) (float64, error)
}
