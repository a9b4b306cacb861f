package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/harborview/mls-comps/internal/metrics"
	"github.com/harborview/mls-comps/internal/store"
)

// Job names recorded in job_runs.
const (
	JobFeedSync        = "feed_sync"
	JobSnapshotRefresh = "snapshot_refresh"
)

// Job run statuses.
const (
	jobStatusSucceeded = "succeeded"
	jobStatusFailed    = "failed"
)

const defaultJobTimeout = 30 * time.Minute

// Scheduler runs feed sync and snapshot refresh on fixed intervals,
// recording each execution in job_runs.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger

	feedSyncEntryID cron.EntryID
	snapshotEntryID cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine tasks on a
// schedule.
func NewScheduler(
	eng *Engine,
	s store.Store,
	feedSyncInterval time.Duration,
	snapshotInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	sched := &Scheduler{
		cron:   cron.New(),
		engine: eng,
		store:  s,
		log:    log,
	}

	id, err := sched.cron.AddFunc(
		"@every "+feedSyncInterval.String(),
		sched.runFeedSync,
	)
	if err != nil {
		return nil, fmt.Errorf("scheduling feed sync: %w", err)
	}
	sched.feedSyncEntryID = id

	id, err = sched.cron.AddFunc(
		"@every "+snapshotInterval.String(),
		sched.runSnapshotRefresh,
	)
	if err != nil {
		return nil, fmt.Errorf("scheduling snapshot refresh: %w", err)
	}
	sched.snapshotEntryID = id

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to
// finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next scheduled run times as
// gauges so dashboards can show when the next cycle fires.
func (s *Scheduler) SyncNextRunTimestamps() {
	if e := s.cron.Entry(s.feedSyncEntryID); !e.Next.IsZero() {
		metrics.SchedulerNextFeedSyncTimestamp.Set(float64(e.Next.Unix()))
	}
	if e := s.cron.Entry(s.snapshotEntryID); !e.Next.IsZero() {
		metrics.SchedulerNextSnapshotTimestamp.Set(float64(e.Next.Unix()))
	}
}

func (s *Scheduler) runFeedSync() {
	ctx := context.Background()
	s.log.Info("scheduled feed sync starting")
	if err := s.runJob(ctx, JobFeedSync, defaultJobTimeout, s.engine.RunFeedSync); err != nil {
		s.log.Error("scheduled feed sync failed", "error", err)
	}
	s.SyncNextRunTimestamps()
}

func (s *Scheduler) runSnapshotRefresh() {
	ctx := context.Background()
	s.log.Info("scheduled snapshot refresh starting")
	if err := s.runJob(ctx, JobSnapshotRefresh, defaultJobTimeout, s.engine.RunSnapshotRefresh); err != nil {
		s.log.Error("scheduled snapshot refresh failed", "error", err)
	}
	s.SyncNextRunTimestamps()
}

// runJob wraps one job execution with a timeout and a job_runs record.
// Bookkeeping failures are logged but never mask the job's own error.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	timeout time.Duration,
	fn func(context.Context) (int, error),
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		return fmt.Errorf("recording job run: %w", err)
	}

	rows, jobErr := fn(ctx)

	status := jobStatusSucceeded
	errText := ""
	if jobErr != nil {
		status = jobStatusFailed
		errText = jobErr.Error()
	}
	metrics.JobRunsTotal.WithLabelValues(name, status).Inc()

	if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		s.log.Error("completing job run failed", "job", name, "run_id", runID, "error", err)
	}

	return jobErr
}
