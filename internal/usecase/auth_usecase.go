// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"floradesk/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// RegisterInput defines the data for public self-registration.
type RegisterInput struct {
	Email    string
	Name     string
	Phone    string
	Address  string
	Password string
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a client-role account from an unauthenticated
	// request. The caller is not logged in afterwards; they go through
	// Login like everyone else.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials, rejects suspended accounts, issues an
	// access token, and records a LOGIN audit entry (deduplicated within
	// the configured window).
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout records a LOGOUT audit entry for the actor. Token invalidation
	// is client-side; the server only keeps the audit trail.
	Logout(ctx context.Context, actor entity.Actor) error
}
