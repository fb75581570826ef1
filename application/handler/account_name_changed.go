package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// JobNameAccountNameChanged tags job audit rows written by AccountNameChanged.
const JobNameAccountNameChanged = "ChangedAccountNameEventHandler"

// AccountNameChanged applies employer account renames. Renames carry the
// event time, and an event older than the account's last rename is dropped so
// out-of-order redeliveries cannot roll a name back.
type AccountNameChanged struct {
	uow    service.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// NewAccountNameChanged creates an AccountNameChanged handler.
func NewAccountNameChanged(uow service.UnitOfWork, logger *slog.Logger) *AccountNameChanged {
	return &AccountNameChanged{uow: uow, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (h *AccountNameChanged) WithClock(now func() time.Time) *AccountNameChanged {
	h.now = now
	return h
}

// Execute renames the account when the event is newer than the last applied
// rename, then writes one job audit row, all in a single unit of work. An
// unknown account is dropped; the audit row is still written.
func (h *AccountNameChanged) Execute(ctx context.Context, payload map[string]any) error {
	evt, err := decodePayload[event.AccountNameChanged](payload)
	if err != nil {
		return err
	}

	return h.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		account, err := s.Accounts.FindOne(ctx, relationships.WithID(evt.AccountID))
		switch {
		case errors.Is(err, database.ErrNotFound):
			h.logger.Info("rename for unknown account", slog.Int64("account_id", evt.AccountID))
		case err != nil:
			return err
		case !account.NamedBefore(evt.Changed):
			h.logger.Info("stale rename dropped",
				slog.Int64("account_id", evt.AccountID),
				slog.Time("changed", evt.Changed),
			)
		default:
			if _, err := s.Accounts.Save(ctx, account.WithName(evt.Name, evt.Changed)); err != nil {
				return err
			}
			h.logger.Info("account renamed", slog.Int64("account_id", evt.AccountID))
		}

		jobAudit, err := audit.NewJobAuditJSON(JobNameAccountNameChanged, payload, h.now())
		if err != nil {
			return err
		}
		_, err = s.JobAudits.Save(ctx, jobAudit)
		return err
	})
}
