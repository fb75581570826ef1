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

// JobNameLegalEntityAdded tags job audit rows written by LegalEntityAdded.
const JobNameLegalEntityAdded = "AddedLegalEntityEventHandler"

// LegalEntityAdded mirrors a legal entity registered under an employer
// account. The event carries enough of the owning account to create it on
// first reference, so legal-entity events may arrive before the account's
// own creation event without being lost.
type LegalEntityAdded struct {
	uow    service.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// NewLegalEntityAdded creates a LegalEntityAdded handler.
func NewLegalEntityAdded(uow service.UnitOfWork, logger *slog.Logger) *LegalEntityAdded {
	return &LegalEntityAdded{uow: uow, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (h *LegalEntityAdded) WithClock(now func() time.Time) *LegalEntityAdded {
	h.now = now
	return h
}

// Execute ensures the owning account exists, creates the legal entity unless
// it already exists, then writes one job audit row, all in a single unit of
// work. Replays find both rows present and create nothing.
func (h *LegalEntityAdded) Execute(ctx context.Context, payload map[string]any) error {
	evt, err := decodePayload[event.LegalEntityAdded](payload)
	if err != nil {
		return err
	}

	return h.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		if err := h.ensureAccount(ctx, s, evt); err != nil {
			return err
		}

		_, err := s.LegalEntities.FindOne(ctx, relationships.WithID(evt.LegalEntityID))
		switch {
		case err == nil:
			h.logger.Info("legal entity already known",
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		case errors.Is(err, database.ErrNotFound):
			legalEntity := relationships.NewLegalEntity(
				evt.LegalEntityID, evt.AccountID, evt.Name, evt.PublicHashedID, evt.Added)
			if _, err := s.LegalEntities.Save(ctx, legalEntity); err != nil {
				return err
			}
			h.logger.Info("legal entity created",
				slog.Int64("account_id", evt.AccountID),
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		default:
			return err
		}

		jobAudit, err := audit.NewJobAuditJSON(JobNameLegalEntityAdded, payload, h.now())
		if err != nil {
			return err
		}
		_, err = s.JobAudits.Save(ctx, jobAudit)
		return err
	})
}

func (h *LegalEntityAdded) ensureAccount(ctx context.Context, s service.Stores, evt event.LegalEntityAdded) error {
	_, err := s.Accounts.FindOne(ctx, relationships.WithID(evt.AccountID))
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return err
	}

	account := relationships.NewAccount(
		evt.AccountID, evt.AccountHashedID, evt.AccountPublicHashedID, evt.AccountName, evt.Added)
	if _, err := s.Accounts.Save(ctx, account); err != nil {
		return err
	}
	h.logger.Info("account created on first reference", slog.Int64("account_id", evt.AccountID))
	return nil
}
