package impl

import (
	"context"
	"log/slog"

	deliverycontext "floradesk/internal/delivery/context"
	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/repository"
	"floradesk/internal/domain/service"
	"floradesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	recorder     *Recorder
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Recorder     *Recorder
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		recorder:     params.Recorder,
		logger:       params.Logger,
	}
}

// Register creates a client account from a public, unauthenticated request.
// The role is always client; elevated accounts only come from staff via the
// user management flow. No audit entry is written since there is no actor.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         entity.RoleClient,
		Status:       entity.UserStatusActive,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Client registered", slog.Int64("userID", user.ID))

	return user, nil
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues an access token. Failed lookups and
// bad passwords collapse into the same error so callers cannot probe which
// emails are registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Status == entity.UserStatusSuspended {
		srv.log(ctx).Info("Suspended account attempted login", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrAccountSuspended
	}

	token, err := srv.tokenService.GenerateToken(entity.ActorOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.recorder.RecordLogin(ctx, user)

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// Logout records a LOGOUT audit entry for the actor.
func (srv *authService) Logout(ctx context.Context, actor entity.Actor) error {
	srv.recorder.RecordLogout(ctx, actor)

	return nil
}
