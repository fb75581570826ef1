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

// JobNameLegalEntityUpdated tags job audit rows written by LegalEntityUpdated.
const JobNameLegalEntityUpdated = "UpdatedLegalEntityEventHandler"

// LegalEntityUpdated applies legal entity renames. A soft-deleted legal
// entity is frozen; a late rename delivered after removal is dropped.
type LegalEntityUpdated struct {
	uow    service.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// NewLegalEntityUpdated creates a LegalEntityUpdated handler.
func NewLegalEntityUpdated(uow service.UnitOfWork, logger *slog.Logger) *LegalEntityUpdated {
	return &LegalEntityUpdated{uow: uow, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (h *LegalEntityUpdated) WithClock(now func() time.Time) *LegalEntityUpdated {
	h.now = now
	return h
}

// Execute renames the legal entity unless it is unknown or soft-deleted,
// then writes one job audit row, all in a single unit of work.
func (h *LegalEntityUpdated) Execute(ctx context.Context, payload map[string]any) error {
	evt, err := decodePayload[event.LegalEntityUpdated](payload)
	if err != nil {
		return err
	}

	return h.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		legalEntity, err := s.LegalEntities.FindOne(ctx, relationships.WithID(evt.LegalEntityID))
		switch {
		case errors.Is(err, database.ErrNotFound):
			h.logger.Info("rename for unknown legal entity",
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		case err != nil:
			return err
		case legalEntity.IsDeleted():
			h.logger.Info("rename for removed legal entity dropped",
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		default:
			if _, err := s.LegalEntities.Save(ctx, legalEntity.WithName(evt.Name, evt.Updated)); err != nil {
				return err
			}
			h.logger.Info("legal entity renamed",
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		}

		jobAudit, err := audit.NewJobAuditJSON(JobNameLegalEntityUpdated, payload, h.now())
		if err != nil {
			return err
		}
		_, err = s.JobAudits.Save(ctx, jobAudit)
		return err
	})
}
