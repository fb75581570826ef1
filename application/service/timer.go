package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
)

// TimerJob fires a job function on a fixed interval in a background
// goroutine, optionally once immediately on cold start. A failed run is
// logged and the timer keeps ticking; the next firing is the retry.
type TimerJob struct {
	name       string
	interval   time.Duration
	runOnStart bool
	enabled    bool
	fn         func(ctx context.Context) error
	logger     *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewTimerJob creates a TimerJob from config and a job function.
func NewTimerJob(name string, cfg config.JobEnv, fn func(ctx context.Context) error, logger *slog.Logger) *TimerJob {
	return &TimerJob{
		name:       name,
		interval:   cfg.Interval(),
		runOnStart: cfg.RunOnStart,
		enabled:    cfg.Enabled,
		fn:         fn,
		logger:     logger,
	}
}

// Name returns the job name.
func (t *TimerJob) Name() string { return t.name }

// Start begins firing in a background goroutine.
// If disabled, this is a no-op.
func (t *TimerJob) Start(ctx context.Context) {
	if !t.enabled {
		t.logger.Info("timer job disabled", slog.String("job", t.name))
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ctx, t.cancel = context.WithCancel(ctx)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.run(ctx)
	}()

	t.logger.Info("timer job started",
		slog.String("job", t.name),
		slog.Duration("interval", t.interval),
	)
}

// Stop cancels the background goroutine and waits for it to finish.
func (t *TimerJob) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
	t.logger.Info("timer job stopped", slog.String("job", t.name))
}

func (t *TimerJob) run(ctx context.Context) {
	if t.runOnStart {
		t.fire(ctx)
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fire(ctx)
		}
	}
}

func (t *TimerJob) fire(ctx context.Context) {
	if err := t.fn(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		t.logger.Error("timer job run failed",
			slog.String("job", t.name),
			slog.String("error", err.Error()),
		)
	}
}
