// internal/service/reporting.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/quicktest/backend/internal/domain/quizsession"
	"github.com/quicktest/backend/internal/store"
	"github.com/quicktest/backend/internal/worker"
)

// ReportResult is what a reporting job hands back to the pool.
type ReportResult struct {
	Event quizsession.Event
	Err   error
}

// Reporter forwards session events to the stats store on a worker pool so
// the quiz engine never waits on the database. Publish drops events when
// the queue is full.
type Reporter struct {
	stats  store.StatsStore
	pool   *worker.Pool[ReportResult]
	logger *slog.Logger
	now    func() time.Time
	done   chan struct{}
}

// NewReporter creates a Reporter and starts its workers.
func NewReporter(stats store.StatsStore, workers, queue int, logger *slog.Logger) *Reporter {
	if workers < 1 {
		workers = 1
	}
	r := &Reporter{
		stats:  stats,
		pool:   worker.NewPool[ReportResult](workers, queue),
		logger: logger,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	go r.collect()
	return r
}

var _ quizsession.Sink = (*Reporter)(nil)

func (r *Reporter) Publish(e quizsession.Event) {
	at := r.now()
	ok := r.pool.TrySubmit(e.UserID+"/"+e.TestID, func() ReportResult {
		return ReportResult{Event: e, Err: r.report(e, at)}
	})
	if !ok {
		r.logger.Warn("dropping session report",
			"user_id", e.UserID,
			"test_id", e.TestID,
			"kind", e.Kind,
		)
	}
}

// reportTimeout bounds a single report. The originating request has
// usually returned by the time a report runs.
const reportTimeout = 10 * time.Second

func (r *Reporter) report(e quizsession.Event, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	if e.Kind == quizsession.EventCompleted {
		if _, err := r.stats.RecordCompletedTest(ctx, e.UserID, e.Score); err != nil {
			return err
		}
	}
	if e.ElapsedSeconds > 0 {
		if _, err := r.stats.RecordTimeSpent(ctx, e.UserID, e.ElapsedSeconds, at); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) collect() {
	defer close(r.done)
	for res := range r.pool.Results() {
		e := res.Output.Event
		if res.Output.Err != nil {
			r.logger.Error("failed to record session report",
				"job_id", res.JobID,
				"kind", e.Kind,
				"error", res.Output.Err,
			)
			continue
		}
		r.logger.Debug("session report recorded",
			"job_id", res.JobID,
			"kind", e.Kind,
			"score", e.Score,
			"elapsed_seconds", e.ElapsedSeconds,
		)
	}
}

// Close waits for queued reports to be written. Events published after
// Close are dropped.
func (r *Reporter) Close() {
	r.pool.Close()
	<-r.done
}
