package postgres

import (
	"context"

	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/repository"
	"floradesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain's ActivityRepository interface
// using GORM. The table is append-only; no update or delete is exposed.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func toActivityDomain(m *model.ActivityLogModel) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:             m.ID,
		UserID:         m.UserID,
		Role:           m.Role,
		Action:         m.Action,
		ActionDetails:  m.ActionDetails,
		TargetEntity:   m.TargetEntity,
		TargetEntityID: m.TargetEntityID,
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
	}
}

func fromActivityDomain(l *entity.ActivityLog) *model.ActivityLogModel {
	return &model.ActivityLogModel{
		ID:             l.ID,
		UserID:         l.UserID,
		Role:           l.Role,
		Action:         l.Action,
		ActionDetails:  l.ActionDetails,
		TargetEntity:   l.TargetEntity,
		TargetEntityID: l.TargetEntityID,
		Description:    l.Description,
		CreatedAt:      l.CreatedAt,
	}
}

// Append persists one new audit entry.
func (repo *activityRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	logM := fromActivityDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// LatestByUserAction returns the most recent entry for a user/action pair.
func (repo *activityRepository) LatestByUserAction(ctx context.Context, userID int64, action string) (*entity.ActivityLog, error) {
	var logM model.ActivityLogModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND action = ?", userID, action).
		Order("created_at DESC").
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest activity entry")
	}

	return toActivityDomain(&logM), nil
}

// List returns entries newest first, up to limit (0 means no limit).
func (repo *activityRepository) List(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	query := repo.db.WithContext(ctx).Model(&model.ActivityLogModel{}).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logMs []*model.ActivityLogModel
	if err := query.Find(&logMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity entries")
	}

	logs := make([]*entity.ActivityLog, 0, len(logMs))
	for _, m := range logMs {
		logs = append(logs, toActivityDomain(m))
	}

	return logs, nil
}
