package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// JobNameAccountCreated tags job audit rows written by AccountCreated.
const JobNameAccountCreated = "CreatedAccountEventHandler"

// AccountCreated mirrors a newly registered employer account into the local
// relationship graph. Replays find the account already present and write
// nothing new. Events from older publishers omit the hashed identifiers;
// when an accounts reader is available those are backfilled from the
// accounts service before the row is written.
type AccountCreated struct {
	accounts service.AccountReader
	uow      service.UnitOfWork
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountCreated creates an AccountCreated handler. accounts may be nil,
// in which case missing hashed identifiers are stored as delivered.
func NewAccountCreated(accounts service.AccountReader, uow service.UnitOfWork, logger *slog.Logger) *AccountCreated {
	return &AccountCreated{accounts: accounts, uow: uow, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (h *AccountCreated) WithClock(now func() time.Time) *AccountCreated {
	h.now = now
	return h
}

// Execute creates the account unless it already exists, then writes one job
// audit row, all in a single unit of work.
func (h *AccountCreated) Execute(ctx context.Context, payload map[string]any) error {
	evt, err := decodePayload[event.AccountCreated](payload)
	if err != nil {
		return err
	}

	if (evt.HashedID == "" || evt.PublicHashedID == "") && h.accounts != nil {
		details, err := h.accounts.GetAccount(ctx, evt.AccountID)
		if err != nil {
			return fmt.Errorf("backfill account %d: %w", evt.AccountID, err)
		}
		if evt.HashedID == "" {
			evt.HashedID = details.HashedAccountID
		}
		if evt.PublicHashedID == "" {
			evt.PublicHashedID = details.PublicHashedAccountID
		}
		if evt.Name == "" {
			evt.Name = details.DasAccountName
		}
	}

	return h.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		_, err := s.Accounts.FindOne(ctx, relationships.WithID(evt.AccountID))
		switch {
		case err == nil:
			h.logger.Info("account already known", slog.Int64("account_id", evt.AccountID))
		case errors.Is(err, database.ErrNotFound):
			account := relationships.NewAccount(evt.AccountID, evt.HashedID, evt.PublicHashedID, evt.Name, evt.Created)
			if _, err := s.Accounts.Save(ctx, account); err != nil {
				return err
			}
			h.logger.Info("account created", slog.Int64("account_id", evt.AccountID))
		default:
			return err
		}

		jobAudit, err := audit.NewJobAuditJSON(JobNameAccountCreated, payload, h.now())
		if err != nil {
			return err
		}
		_, err = s.JobAudits.Save(ctx, jobAudit)
		return err
	})
}
