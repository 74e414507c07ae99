package usecase

import (
	"context"

	"floradesk/internal/domain/entity"
)

// ActivityUsecase defines the interface for reading the audit trail.
// The log is append-only, so no mutation operations exist.
type ActivityUsecase interface {
	// List returns audit entries newest first, bounded by the configured
	// list limit.
	List(ctx context.Context) ([]*entity.ActivityLog, error)
}
