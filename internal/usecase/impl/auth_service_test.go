package impl

import (
	"context"
	"testing"
	"time"

	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService() (*authService, *stubUserRepo, *stubActivityRepo) {
	factory := newStubFactory()
	activity := newStubActivityRepo()
	clock := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	srv := &authService{
		txManager:    &stubTxManager{factory: factory},
		userRepo:     factory.users,
		hasher:       stubHasher{},
		tokenService: stubTokenService{},
		recorder: &Recorder{
			activityRepo: activity,
			logger:       discardLogger(),
			dedupWindow:  defaultLoginDedupWindow,
			now:          func() time.Time { return clock },
		},
		logger: discardLogger(),
	}

	return srv, factory.users, activity
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, users, activity := createTestAuthService()
	users.add(&entity.User{
		Email:        "maria@example.com",
		Name:         "Maria Santos",
		Role:         entity.RoleStaff,
		Status:       entity.UserStatusActive,
		PasswordHash: "hashed:secret123",
	})

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-token", out.AccessToken)
	assert.Equal(t, "Maria Santos", out.User.Name)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, entity.ActionLogin, activity.entries[0].Action)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	srv, _, activity := createTestAuthService()

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, activity.entries)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	srv, users, activity := createTestAuthService()
	users.add(&entity.User{
		Email:        "maria@example.com",
		Status:       entity.UserStatusActive,
		PasswordHash: "hashed:secret123",
	})

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, activity.entries)
}

func TestAuthService_Login_SuspendedAccount(t *testing.T) {
	srv, users, activity := createTestAuthService()
	users.add(&entity.User{
		Email:        "maria@example.com",
		Status:       entity.UserStatusSuspended,
		PasswordHash: "hashed:secret123",
	})

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountSuspended)
	assert.Empty(t, activity.entries)
}

func TestAuthService_Register_CreatesClientAccount(t *testing.T) {
	srv, users, activity := createTestAuthService()

	user, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Email:    "maria@example.com",
		Name:     "Maria Santos",
		Phone:    "0917 555 0100",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleClient, user.Role)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	assert.Equal(t, "hashed:secret123", user.PasswordHash)
	assert.Len(t, users.byID, 1)

	// Registration has no authenticated actor, so no audit entry.
	assert.Empty(t, activity.entries)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	srv, users, _ := createTestAuthService()
	users.add(&entity.User{Email: "maria@example.com", Role: entity.RoleClient})

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Email:    "maria@example.com",
		Name:     "Maria Santos",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Len(t, users.byID, 1)
}

func TestAuthService_Register_ThenLogin(t *testing.T) {
	srv, _, _ := createTestAuthService()

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Email:    "maria@example.com",
		Name:     "Maria Santos",
		Password: "secret123",
	})
	require.NoError(t, err)

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, out.User.Role)
}

func TestAuthService_Logout_RecordsEntry(t *testing.T) {
	srv, _, activity := createTestAuthService()

	require.NoError(t, srv.Logout(context.Background(), entity.Actor{ID: 5, Role: entity.RoleStaff}))
	require.Len(t, activity.entries, 1)
	assert.Equal(t, entity.ActionLogout, activity.entries[0].Action)
}
