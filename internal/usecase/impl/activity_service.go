package impl

import (
	"context"

	"floradesk/config"
	"floradesk/internal/domain/entity"
	"floradesk/internal/domain/repository"
	"floradesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultActivityListLimit = 200

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	listLimit    int
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Config       *config.Config
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	listLimit := defaultActivityListLimit
	if params.Config != nil && params.Config.Audit != nil && params.Config.Audit.ListLimit > 0 {
		listLimit = params.Config.Audit.ListLimit
	}

	return &activityService{
		activityRepo: params.ActivityRepo,
		listLimit:    listLimit,
	}
}

// List returns audit entries newest first, bounded by the configured limit.
func (srv *activityService) List(ctx context.Context) ([]*entity.ActivityLog, error) {
	logs, err := srv.activityRepo.List(ctx, srv.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity entries")
	}

	return logs, nil
}
