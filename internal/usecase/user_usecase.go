package usecase

import (
	"context"
	"time"

	"floradesk/internal/domain/entity"
)

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Email    string
	Name     string
	Phone    string
	Address  string
	Role     string
	Status   string
	Password string
}

// UpdateUserInput defines the data for editing an account.
// Password is optional; empty means keep the current hash.
type UpdateUserInput struct {
	ID       int64
	Email    string
	Name     string
	Phone    string
	Address  string
	Role     string
	Status   string
	Password string
}

// UserUsecase defines the interface for user management operations.
// Every mutation takes the acting principal explicitly so the ownership
// policy can be applied.
type UserUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, actor entity.Actor, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, actor entity.Actor, id int64) error
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context, from, to *time.Time) ([]*entity.User, error)
}
