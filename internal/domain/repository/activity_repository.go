package repository

import (
	"context"
	"errors"

	"floradesk/internal/domain/entity"
)

// ErrActivityNotFound is returned when no matching activity entry exists.
var ErrActivityNotFound = errors.New("activity log entry not found")

// ActivityRepository is the append-only store behind the activity recorder.
// There is deliberately no update or delete operation.
type ActivityRepository interface {
	// Append persists one new audit entry.
	Append(ctx context.Context, log *entity.ActivityLog) error

	// LatestByUserAction returns the most recent entry for a user/action
	// pair, or ErrActivityNotFound. Used for the login dedup window.
	LatestByUserAction(ctx context.Context, userID int64, action string) (*entity.ActivityLog, error)

	// List returns entries newest first, up to limit (0 means no limit).
	List(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
}
