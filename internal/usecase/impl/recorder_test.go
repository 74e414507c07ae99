package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"floradesk/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRecorder(repo *stubActivityRepo, clock *time.Time) *Recorder {
	return &Recorder{
		activityRepo: repo,
		logger:       discardLogger(),
		dedupWindow:  defaultLoginDedupWindow,
		now:          func() time.Time { return *clock },
	}
}

func TestRecorder_LoginDedupWithinWindow(t *testing.T) {
	repo := newStubActivityRepo()
	clock := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	recorder := newTestRecorder(repo, &clock)

	user := &entity.User{ID: 5, Name: "Maria Santos", Role: entity.RoleStaff}

	recorder.RecordLogin(context.Background(), user)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, entity.ActionLogin, repo.entries[0].Action)
	assert.Equal(t, int64(5), repo.entries[0].UserID)

	// A second login 3s later is the browser double-firing; drop it.
	clock = clock.Add(3 * time.Second)
	recorder.RecordLogin(context.Background(), user)
	assert.Len(t, repo.entries, 1)

	// Past the window, a new login is a real event again.
	clock = clock.Add(6 * time.Second)
	recorder.RecordLogin(context.Background(), user)
	assert.Len(t, repo.entries, 2)
}

func TestRecorder_LoginDedupIsPerUser(t *testing.T) {
	repo := newStubActivityRepo()
	clock := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	recorder := newTestRecorder(repo, &clock)

	recorder.RecordLogin(context.Background(), &entity.User{ID: 5, Name: "Maria", Role: entity.RoleStaff})
	clock = clock.Add(time.Second)
	recorder.RecordLogin(context.Background(), &entity.User{ID: 6, Name: "Jose", Role: entity.RoleClient})

	assert.Len(t, repo.entries, 2)
}

func TestRecorder_LogoutNotDeduped(t *testing.T) {
	repo := newStubActivityRepo()
	clock := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	recorder := newTestRecorder(repo, &clock)

	actor := entity.Actor{ID: 5, Role: entity.RoleStaff}
	recorder.RecordLogout(context.Background(), actor)
	recorder.RecordLogout(context.Background(), actor)

	assert.Len(t, repo.entries, 2)
	assert.Equal(t, entity.ActionLogout, repo.entries[0].Action)
}

func TestRecorder_MutationSkipsAnonymousActor(t *testing.T) {
	repo := newStubActivityRepo()
	clock := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	recorder := newTestRecorder(repo, &clock)

	recorder.RecordMutation(context.Background(), entity.Actor{}, entity.ActionCreate, "Order", 1, "created order")
	assert.Empty(t, repo.entries)

	recorder.RecordMutation(context.Background(), entity.Actor{ID: 2, Role: entity.RoleStaff}, entity.ActionCreate, "Order", 1, "created order")
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "CREATE_Order", repo.entries[0].Action)
	assert.Equal(t, "CREATE Order #1", repo.entries[0].ActionDetails)
}

func TestRecorder_AppendFailureIsSwallowed(t *testing.T) {
	repo := newStubActivityRepo()
	repo.appendErr = errors.New("connection refused")
	clock := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	recorder := newTestRecorder(repo, &clock)

	assert.NotPanics(t, func() {
		recorder.RecordMutation(context.Background(), entity.Actor{ID: 2, Role: entity.RoleStaff}, entity.ActionDelete, "Service", 4, "deleted service")
		recorder.RecordLogin(context.Background(), &entity.User{ID: 5, Name: "Maria", Role: entity.RoleStaff})
	})
	assert.Empty(t, repo.entries)
}
