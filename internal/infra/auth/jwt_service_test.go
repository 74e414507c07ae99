package auth

import (
	"testing"
	"time"

	"floradesk/config"
	"floradesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.SecretKey.AccessTTL = time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := createTestJWTService(t)
	actor := entity.Actor{ID: 42, Role: entity.RoleStaff}

	token, err := svc.GenerateToken(actor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := createTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := createTestJWTService(t)

	other := &jwtService{secret: "other-secret", ttl: time.Hour}
	token, err := other.GenerateToken(entity.Actor{ID: 1, Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.GenerateToken(entity.Actor{ID: 1, Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
