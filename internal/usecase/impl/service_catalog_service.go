package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "floradesk/internal/delivery/context"
	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/policy"
	"floradesk/internal/domain/repository"
	"floradesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const serviceTarget = "Service"

// serviceCatalogService implements the ServiceUsecase interface.
type serviceCatalogService struct {
	txManager   repository.TransactionManager
	serviceRepo repository.ServiceRepository
	orderRepo   repository.OrderRepository
	recorder    *Recorder
	logger      *slog.Logger
}

// ServiceCatalogParams holds dependencies for serviceCatalogService, injected by Fx.
type ServiceCatalogParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ServiceRepo repository.ServiceRepository
	OrderRepo   repository.OrderRepository
	Recorder    *Recorder
	Logger      *slog.Logger
}

// NewServiceCatalogService is the constructor for serviceCatalogService.
func NewServiceCatalogService(params ServiceCatalogParams) usecase.ServiceUsecase {
	return &serviceCatalogService{
		txManager:   params.TxManager,
		serviceRepo: params.ServiceRepo,
		orderRepo:   params.OrderRepo,
		recorder:    params.Recorder,
		logger:      params.Logger,
	}
}

func (srv *serviceCatalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateServiceFields(price float64, status entity.ServiceStatus, pricingModel entity.PricingModel, pricingUnit string, deliveryTime int) error {
	if price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price cannot be negative")
	}
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid status: %q", status))
	}
	if !pricingModel.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid pricing model: %q", pricingModel))
	}
	if !entity.IsValidPricingUnit(pricingUnit) {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid pricing unit: %q", pricingUnit))
	}
	if deliveryTime < 1 || deliveryTime > 365 {
		return domainerrors.ErrValidationFailed.WithDetails("delivery time must be between 1 and 365 days")
	}

	return nil
}

// Create adds a service offering.
func (srv *serviceCatalogService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateServiceInput) (*entity.Service, error) {
	if !actor.Role.IsStaff() && !actor.Role.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	status := entity.ServiceStatus(input.Status)
	if status == "" {
		status = entity.ServiceStatusActive
	}
	if err := validateServiceFields(input.Price, status, entity.PricingModel(input.PricingModel), input.PricingUnit, input.DeliveryTime); err != nil {
		return nil, err
	}

	svc := &entity.Service{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Status:       status,
		PricingModel: entity.PricingModel(input.PricingModel),
		PricingUnit:  input.PricingUnit,
		DeliveryTime: input.DeliveryTime,
		Category:     input.Category,
		CreatedBy:    actor,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ServiceRepo().Create(ctx, svc)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Service created", slog.Int64("serviceID", svc.ID))
	srv.recorder.RecordMutation(ctx, actor, entity.ActionCreate, serviceTarget, svc.ID,
		fmt.Sprintf("Created service %s", svc.Name))

	return svc, nil
}

// Update edits an existing service offering.
func (srv *serviceCatalogService) Update(ctx context.Context, actor entity.Actor, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	existing, err := srv.serviceRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to load service for update")
	}

	if !policy.CanEdit(actor, policy.ServiceResource(existing)) {
		return nil, domainerrors.ErrForbidden
	}

	status := entity.ServiceStatus(input.Status)
	if err := validateServiceFields(input.Price, status, entity.PricingModel(input.PricingModel), input.PricingUnit, input.DeliveryTime); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Status = status
	existing.PricingModel = entity.PricingModel(input.PricingModel)
	existing.PricingUnit = input.PricingUnit
	existing.DeliveryTime = input.DeliveryTime
	existing.Category = input.Category

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ServiceRepo().Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	srv.recorder.RecordMutation(ctx, actor, entity.ActionUpdate, serviceTarget, existing.ID,
		fmt.Sprintf("Updated service %s", existing.Name))

	return existing, nil
}

// Delete removes a service offering. Services referenced by orders cannot be
// removed; the pre-check catches the common case and the repository maps the
// FK violation for races.
func (srv *serviceCatalogService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	existing, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to load service for delete")
	}

	if !policy.CanDelete(actor, policy.ServiceResource(existing)) {
		return domainerrors.ErrForbidden
	}

	orderCount, err := srv.orderRepo.CountByService(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count service orders")
	}
	if orderCount > 0 {
		return domainerrors.ErrServiceInUse
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ServiceRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Service deleted", slog.Int64("serviceID", id))
	srv.recorder.RecordMutation(ctx, actor, entity.ActionDelete, serviceTarget, id,
		fmt.Sprintf("Deleted service %s", existing.Name))

	return nil
}

// Get retrieves one service by ID.
func (srv *serviceCatalogService) Get(ctx context.Context, id int64) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

// List returns services ordered by ID descending.
func (srv *serviceCatalogService) List(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}
