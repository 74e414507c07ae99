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

// serviceRepository implements the domain's ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func toServiceDomain(m *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Status:       entity.ServiceStatus(m.Status),
		PricingModel: entity.PricingModel(m.PricingModel),
		PricingUnit:  m.PricingUnit,
		DeliveryTime: m.DeliveryTime,
		Category:     m.Category,
		CreatedBy:    authorOf(m.CreatedByID, m.CreatedBy),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromServiceDomain(s *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		Status:       string(s.Status),
		PricingModel: string(s.PricingModel),
		PricingUnit:  s.PricingUnit,
		DeliveryTime: s.DeliveryTime,
		Category:     s.Category,
		CreatedByID:  s.CreatedBy.ID,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FindByID retrieves a single service with its author preloaded.
func (repo *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).Preload("CreatedBy").First(&serviceM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// List returns services ordered by ID descending.
func (repo *serviceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	var serviceMs []*model.ServiceModel
	if err := repo.db.WithContext(ctx).Preload("CreatedBy").
		Order("id DESC").Find(&serviceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceMs))
	for _, m := range serviceMs {
		services = append(services, toServiceDomain(m))
	}

	return services, nil
}

// Create persists a new service and writes the generated ID back.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("service author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// Update modifies an existing service. The author column is immutable.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	result := repo.db.WithContext(ctx).Model(&model.ServiceModel{}).
		Where("id = ?", serviceM.ID).
		Select("name", "description", "price", "status", "pricing_model",
			"pricing_unit", "delivery_time", "category", "updated_at").
		Updates(serviceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a service by ID. The RESTRICT constraint on orders turns
// into ErrServiceInUse when orders still reference the service.
func (repo *serviceRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrServiceInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// CountActive counts services with active status.
func (repo *serviceRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ServiceModel{}).
		Where("status = ?", string(entity.ServiceStatusActive)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active services")
	}

	return count, nil
}
