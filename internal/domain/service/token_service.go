package service

import (
	"floradesk/internal/domain/entity"
)

// TokenService defines the interface for issuing and validating access tokens.
// The back office is API-driven; a short-lived signed token stands in for the
// session the original server-rendered app kept.
type TokenService interface {
	// GenerateToken creates a signed access token carrying the actor identity.
	GenerateToken(actor entity.Actor) (string, error)

	// ValidateToken checks a token string and returns the actor it names.
	ValidateToken(tokenString string) (entity.Actor, error)
}
