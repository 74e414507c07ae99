package impl

import (
	"context"
	"testing"
	"time"

	"floradesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_List_NewestFirstWithLimit(t *testing.T) {
	repo := newStubActivityRepo()
	base := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, repo.Append(context.Background(), &entity.ActivityLog{
			UserID:    1,
			Action:    entity.ActionLogin,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	srv := &activityService{activityRepo: repo, listLimit: 3}

	logs, err := srv.List(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.True(t, logs[0].CreatedAt.After(logs[1].CreatedAt))
	assert.True(t, logs[1].CreatedAt.After(logs[2].CreatedAt))
}
