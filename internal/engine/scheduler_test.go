package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	feedMocks "github.com/harborview/mls-comps/internal/feed/mocks"
	"github.com/harborview/mls-comps/internal/metrics"
	storeMocks "github.com/harborview/mls-comps/internal/store/mocks"
)

// newSchedulerTestEngine returns a test engine and a mock store for use
// in scheduler tests.
func newSchedulerTestEngine(t *testing.T) (*Engine, *storeMocks.MockStore) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	mc := feedMocks.NewMockClient(t)
	return newTestEngine(ms, mc), ms
}

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, 15*time.Minute, 6*time.Hour, quietLogger())
	require.NoError(t, err)

	entries := sched.Entries()
	assert.Len(t, entries, 2)
}

func TestScheduler_StoresEntryIDs(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, 15*time.Minute, 6*time.Hour, quietLogger())
	require.NoError(t, err)

	assert.NotZero(t, sched.feedSyncEntryID)
	assert.NotZero(t, sched.snapshotEntryID)
	assert.NotEqual(t, sched.feedSyncEntryID, sched.snapshotEntryID)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, 1*time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, 15*time.Minute, 6*time.Hour, quietLogger())
	require.NoError(t, err)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	feedNext := ptestutil.ToFloat64(metrics.SchedulerNextFeedSyncTimestamp)
	snapshotNext := ptestutil.ToFloat64(metrics.SchedulerNextSnapshotTimestamp)
	assert.Greater(t, feedNext, float64(0), "feed sync next timestamp should be set")
	assert.Greater(t, snapshotNext, float64(0), "snapshot next timestamp should be set")
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, 1*time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-1", "succeeded", "", 7).
		Return(nil).Once()

	called := false
	err = sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, 1*time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	jobErr := errors.New("something went wrong")

	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-id-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-2", "failed", jobErr.Error(), 0).
		Return(nil).Once()

	err = sched.runJob(context.Background(), "fail-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 0, jobErr
	})

	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_InsertFails(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, 1*time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("", errors.New("db down")).Once()

	err = sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		t.Fatal("job must not run when the run record cannot be created")
		return 0, nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording job run")
}

func TestScheduler_RunJob_BookkeepingFailureDoesNotMaskResult(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, 1*time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-3", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-3", "succeeded", "", 1).
		Return(errors.New("db blip")).Once()

	err = sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 1, nil
	})

	require.NoError(t, err)
}
