package audit

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskhive/backend/internal/infrastructure/journal"
	"github.com/taskhive/backend/usecase"
)

// Config controls recorder buffering and retention.
type Config struct {
	QueueSize       int
	Retention       time.Duration
	CleanupSchedule string
}

// Recorder writes auth events to the journal off the request path and prunes
// old entries on a cron schedule. Implements usecase.AuditTrail.
type Recorder struct {
	store  *journal.Store
	logger *zap.Logger
	cfg    Config

	events chan journal.Entry
	cron   *cron.Cron
	wg     sync.WaitGroup
	once   sync.Once
}

func NewRecorder(store *journal.Store, cfg Config, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * 24 * time.Hour
	}
	if cfg.CleanupSchedule == "" {
		cfg.CleanupSchedule = "@hourly"
	}
	return &Recorder{
		store:  store,
		logger: logger,
		cfg:    cfg,
		events: make(chan journal.Entry, cfg.QueueSize),
		cron:   cron.New(),
	}
}

// Start launches the background writer and the retention job.
func (r *Recorder) Start() {
	r.wg.Add(1)
	go r.drain()

	if _, err := r.cron.AddFunc(r.cfg.CleanupSchedule, r.cleanup); err != nil {
		r.logger.Error("failed to schedule audit cleanup", zap.Error(err))
	} else {
		r.cron.Start()
	}
}

// Stop flushes pending events and halts the retention job.
func (r *Recorder) Stop(ctx context.Context) {
	r.once.Do(func() {
		close(r.events)
	})

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		r.logger.Warn("audit recorder stopped before flush completed")
	}

	cronCtx := r.cron.Stop()
	select {
	case <-cronCtx.Done():
	case <-ctx.Done():
	}
}

// RecordAuth enqueues an auth event. Recording is best-effort: when the queue
// is full the event is dropped and counted in the log rather than blocking
// the request.
func (r *Recorder) RecordAuth(_ context.Context, event usecase.AuthEvent) {
	entry := journal.Entry{
		Kind:      event.Kind,
		SubjectID: event.SubjectID,
		Email:     event.Email,
		Reason:    event.Reason,
		Timestamp: time.Now(),
	}

	select {
	case r.events <- entry:
	default:
		r.logger.Warn("audit queue full, dropping event", zap.String("kind", event.Kind))
	}
}

func (r *Recorder) drain() {
	defer r.wg.Done()
	for entry := range r.events {
		if err := r.store.Append(entry); err != nil {
			r.logger.Error("failed to append audit entry", zap.String("kind", entry.Kind), zap.Error(err))
		}
	}
}

func (r *Recorder) cleanup() {
	cutoff := time.Now().Add(-r.cfg.Retention)
	if err := r.store.Cleanup(cutoff); err != nil {
		r.logger.Error("audit retention cleanup failed", zap.Error(err))
		return
	}
	r.logger.Debug("audit retention cleanup complete", zap.Time("cutoff", cutoff))
}
