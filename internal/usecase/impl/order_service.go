package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "floradesk/internal/delivery/context"
	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/policy"
	"floradesk/internal/domain/repository"
	"floradesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const orderTarget = "Order"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
	recorder    *Recorder
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	ServiceRepo repository.ServiceRepository
	Recorder    *Recorder
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		serviceRepo: params.ServiceRepo,
		recorder:    params.Recorder,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// applyOrderInput resolves the client and service references, snapshots the
// client identity, and derives the total from the service price.
func (srv *orderService) applyOrderInput(ctx context.Context, order *entity.Order, userID int64, serviceID *int64) error {
	client, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrValidationFailed.WithDetails("order client does not exist")
		}

		return errors.Wrap(err, "failed to load order client")
	}
	order.SetUser(client)

	if serviceID == nil {
		order.SetService(nil)

		return nil
	}

	svc, err := srv.serviceRepo.FindByID(ctx, *serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrValidationFailed.WithDetails("order service does not exist")
		}

		return errors.Wrap(err, "failed to load order service")
	}
	order.SetService(svc)

	return nil
}

func setOrderStatuses(order *entity.Order, status, paymentStatus, paymentMethod string) error {
	if err := order.SetStatus(entity.OrderStatus(status)); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := order.SetPaymentStatus(entity.PaymentStatus(paymentStatus)); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := order.SetPaymentMethod(entity.PaymentMethod(paymentMethod)); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// Create books a new order for a client.
func (srv *orderService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if !actor.Role.IsStaff() && !actor.Role.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	order := entity.NewOrder()
	order.CreatedBy = actor
	order.Notes = input.Notes
	if !input.OrderDate.IsZero() {
		order.OrderDate = input.OrderDate
	}
	order.DeliveryDate = input.DeliveryDate

	if err := setOrderStatuses(order, input.Status, input.PaymentStatus, input.PaymentMethod); err != nil {
		return nil, err
	}
	if err := srv.applyOrderInput(ctx, order, input.UserID, input.ServiceID); err != nil {
		return nil, err
	}
	if err := order.Validate(srv.now(), true); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Int64("orderID", order.ID), slog.Int64("clientID", order.UserID))
	srv.recorder.RecordMutation(ctx, actor, entity.ActionCreate, orderTarget, order.ID,
		fmt.Sprintf("Created order #%d for %s", order.ID, order.ClientName))

	return order, nil
}

// Update edits an existing order. The no-backdating rule applies only at
// creation, so an old order keeps its original date.
func (srv *orderService) Update(ctx context.Context, actor entity.Actor, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	existing, err := srv.orderRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order for update")
	}

	if !policy.CanEdit(actor, policy.OrderResource(existing)) {
		return nil, domainerrors.ErrForbidden
	}

	existing.Notes = input.Notes
	if !input.OrderDate.IsZero() {
		existing.OrderDate = input.OrderDate
	}
	existing.DeliveryDate = input.DeliveryDate

	if err := setOrderStatuses(existing, input.Status, input.PaymentStatus, input.PaymentMethod); err != nil {
		return nil, err
	}
	if err := srv.applyOrderInput(ctx, existing, input.UserID, input.ServiceID); err != nil {
		return nil, err
	}
	if err := existing.Validate(srv.now(), false); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	srv.recorder.RecordMutation(ctx, actor, entity.ActionUpdate, orderTarget, existing.ID,
		fmt.Sprintf("Updated order #%d", existing.ID))

	return existing, nil
}

// Delete removes an order.
func (srv *orderService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	existing, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to load order for delete")
	}

	if !policy.CanDelete(actor, policy.OrderResource(existing)) {
		return domainerrors.ErrForbidden
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Order deleted", slog.Int64("orderID", id))
	srv.recorder.RecordMutation(ctx, actor, entity.ActionDelete, orderTarget, id,
		fmt.Sprintf("Deleted order #%d", id))

	return nil
}

// Get retrieves one order by ID.
func (srv *orderService) Get(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// List returns orders newest first, optionally bounded by order date. Bounds
// are inclusive date-only, widened to half-open repository ranges.
func (srv *orderService) List(ctx context.Context, from, to *time.Time) ([]*entity.Order, error) {
	lo, hi := rangeBounds(from, to)
	orders, err := srv.orderRepo.List(ctx, lo, hi)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
