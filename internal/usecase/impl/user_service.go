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
	"floradesk/internal/domain/service"
	"floradesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const userTarget = "User"

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	hasher    service.PasswordHasher
	recorder  *Recorder
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Hasher    service.PasswordHasher
	Recorder  *Recorder
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		hasher:    params.Hasher,
		recorder:  params.Recorder,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateRoleAssignment rejects unknown roles and stops non-admin actors
// from minting admin accounts.
func validateRoleAssignment(actor entity.Actor, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid role: %q", role))
	}
	if role.IsAdmin() && !actor.Role.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only admins may assign the admin role")
	}

	return nil
}

// Create registers a new account.
func (srv *userService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateUserInput) (*entity.User, error) {
	if !actor.Role.IsStaff() && !actor.Role.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	role := entity.Role(input.Role)
	if err := validateRoleAssignment(actor, role); err != nil {
		return nil, err
	}

	status := entity.UserStatus(input.Status)
	if status == "" {
		status = entity.UserStatusActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid status: %q", status))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         role,
		Status:       status,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID), slog.String("role", user.Role.String()))
	srv.recorder.RecordMutation(ctx, actor, entity.ActionCreate, userTarget, user.ID,
		fmt.Sprintf("Created user %s", user.Email))

	return user, nil
}

// Update edits an existing account. Non-staff actors may only reach their own
// record, and then only the contact fields.
func (srv *userService) Update(ctx context.Context, actor entity.Actor, input *usecase.UpdateUserInput) (*entity.User, error) {
	existing, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	if !policy.CanEdit(actor, policy.UserResource(existing)) {
		return nil, domainerrors.ErrForbidden
	}

	existing.Email = input.Email
	existing.Name = input.Name
	existing.Phone = input.Phone
	existing.Address = input.Address

	// Role and status changes are a staff/admin concern; self-editing
	// clients keep their current values.
	if actor.Role.IsStaff() || actor.Role.IsAdmin() {
		role := entity.Role(input.Role)
		if err := validateRoleAssignment(actor, role); err != nil {
			return nil, err
		}
		status := entity.UserStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid status: %q", status))
		}
		existing.Role = role
		existing.Status = status
	}

	if input.Password != "" {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		existing.PasswordHash = hash
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	srv.recorder.RecordMutation(ctx, actor, entity.ActionUpdate, userTarget, existing.ID,
		fmt.Sprintf("Updated user %s", existing.Email))

	return existing, nil
}

// Delete removes an account. Accounts with orders are kept for history.
func (srv *userService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	existing, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for delete")
	}

	if !policy.CanDelete(actor, policy.UserResource(existing)) {
		return domainerrors.ErrForbidden
	}

	orderCount, err := srv.orderRepo.CountByUser(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count user orders")
	}
	if orderCount > 0 {
		return domainerrors.ErrUserHasOrders
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))
	srv.recorder.RecordMutation(ctx, actor, entity.ActionDelete, userTarget, id,
		fmt.Sprintf("Deleted user %s", existing.Email))

	return nil
}

// Get retrieves one account by ID.
func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// List returns accounts newest first, optionally bounded by creation date.
// Bounds are inclusive date-only, widened to half-open repository ranges.
func (srv *userService) List(ctx context.Context, from, to *time.Time) ([]*entity.User, error) {
	lo, hi := rangeBounds(from, to)
	users, err := srv.userRepo.List(ctx, lo, hi)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
