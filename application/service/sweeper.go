package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
)

// RetentionSweeper deletes notifications older than the retention window,
// sent or not, in one batch per run.
type RetentionSweeper struct {
	uow       service.UnitOfWork
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewRetentionSweeper creates a RetentionSweeper purging notifications older
// than the given number of whole days.
func NewRetentionSweeper(uow service.UnitOfWork, retentionDays int, logger *slog.Logger) *RetentionSweeper {
	return &RetentionSweeper{
		uow:       uow,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (r *RetentionSweeper) WithClock(now func() time.Time) *RetentionSweeper {
	r.now = now
	return r
}

// Run deletes every notification past retention, returning how many went.
func (r *RetentionSweeper) Run(ctx context.Context) (int, error) {
	deleted := 0
	err := r.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		cutoff := r.now().Add(-r.retention)

		count, err := s.Notifications.Count(ctx, notification.WithCreatedBefore(cutoff))
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		if err := s.Notifications.DeleteBy(ctx, notification.WithCreatedBefore(cutoff)); err != nil {
			return err
		}
		deleted = int(count)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		r.logger.Info("purged notifications past retention", slog.Int("count", deleted))
	}
	return deleted, nil
}
