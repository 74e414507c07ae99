package repository

import (
	"context"
	"errors"

	"floradesk/internal/domain/entity"
)

// ErrServiceNotFound is returned when a service lookup matches nothing.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the standard operations for service persistence.
type ServiceRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Service, error)

	// List returns services ordered by ID descending.
	List(ctx context.Context) ([]*entity.Service, error)

	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a service by ID. Implementations map a foreign key
	// violation (orders still referencing the service) to ErrServiceInUse.
	Delete(ctx context.Context, id int64) error

	// CountActive counts services with active status.
	CountActive(ctx context.Context) (int64, error)
}
