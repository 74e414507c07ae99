// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"floradesk/config"
	deliverycontext "floradesk/internal/delivery/context"
	"floradesk/internal/domain/entity"
	"floradesk/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLoginDedupWindow = 5 * time.Second

// Recorder writes audit entries after mutations commit. Writes are
// best-effort: a failed audit write is logged and swallowed so it can never
// roll back or fail the primary operation.
type Recorder struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
	dedupWindow  time.Duration
	now          func() time.Time
}

// RecorderParams holds dependencies for Recorder, injected by Fx.
type RecorderParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRecorder is the constructor for Recorder.
func NewRecorder(params RecorderParams) *Recorder {
	dedupWindow := defaultLoginDedupWindow
	if params.Config != nil && params.Config.Audit != nil && params.Config.Audit.LoginDedupWindow > 0 {
		dedupWindow = params.Config.Audit.LoginDedupWindow
	}

	return &Recorder{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
		dedupWindow:  dedupWindow,
		now:          time.Now,
	}
}

func (r *Recorder) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *Recorder) append(ctx context.Context, entry *entity.ActivityLog) {
	if err := r.activityRepo.Append(ctx, entry); err != nil {
		r.log(ctx).Warn("Failed to write activity log entry",
			slog.String("action", entry.Action),
			slog.Int64("userID", entry.UserID),
			slog.Any("error", err),
		)
	}
}

// RecordMutation appends one audit entry for a committed create, update, or
// delete. A zero-ID actor means no authenticated principal; the entry is
// silently skipped.
func (r *Recorder) RecordMutation(ctx context.Context, actor entity.Actor, verb, targetEntity string, targetID int64, description string) {
	if actor.ID == 0 {
		return
	}

	r.append(ctx, &entity.ActivityLog{
		UserID:         actor.ID,
		Role:           actor.Role.String(),
		Action:         verb + "_" + targetEntity,
		ActionDetails:  fmt.Sprintf("%s %s #%d", verb, targetEntity, targetID),
		TargetEntity:   targetEntity,
		TargetEntityID: targetID,
		Description:    description,
		CreatedAt:      r.now(),
	})
}

// RecordLogin appends a LOGIN entry unless another LOGIN for the same user
// landed within the dedup window. Browsers tend to fire the login flow twice
// in quick succession; the window keeps the trail to one row per real login.
func (r *Recorder) RecordLogin(ctx context.Context, user *entity.User) {
	if user == nil || user.ID == 0 {
		return
	}

	latest, err := r.activityRepo.LatestByUserAction(ctx, user.ID, entity.ActionLogin)
	switch {
	case err == nil:
		if r.now().Sub(latest.CreatedAt) < r.dedupWindow {
			return
		}
	case errors.Is(err, repository.ErrActivityNotFound):
		// First login ever; nothing to dedup against.
	default:
		r.log(ctx).Warn("Failed to look up latest login entry",
			slog.Int64("userID", user.ID),
			slog.Any("error", err),
		)
	}

	r.append(ctx, &entity.ActivityLog{
		UserID:      user.ID,
		Role:        user.Role.String(),
		Action:      entity.ActionLogin,
		Description: fmt.Sprintf("%s logged in", user.Name),
		CreatedAt:   r.now(),
	})
}

// RecordLogout appends a LOGOUT entry. Logouts are not deduplicated.
func (r *Recorder) RecordLogout(ctx context.Context, actor entity.Actor) {
	if actor.ID == 0 {
		return
	}

	r.append(ctx, &entity.ActivityLog{
		UserID:      actor.ID,
		Role:        actor.Role.String(),
		Action:      entity.ActionLogout,
		Description: "User logged out",
		CreatedAt:   r.now(),
	})
}
