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

// JobNameLegalEntityRemoved tags job audit rows written by LegalEntityRemoved.
const JobNameLegalEntityRemoved = "RemovedLegalEntityEventHandler"

// LegalEntityRemoved sets the soft-delete marker on a deregistered legal
// entity. Links and audits referencing it are kept; the marker only stops
// future renames and resolution.
type LegalEntityRemoved struct {
	uow    service.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// NewLegalEntityRemoved creates a LegalEntityRemoved handler.
func NewLegalEntityRemoved(uow service.UnitOfWork, logger *slog.Logger) *LegalEntityRemoved {
	return &LegalEntityRemoved{uow: uow, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (h *LegalEntityRemoved) WithClock(now func() time.Time) *LegalEntityRemoved {
	h.now = now
	return h
}

// Execute marks the legal entity deleted unless it is unknown or already
// marked, then writes one job audit row, all in a single unit of work.
func (h *LegalEntityRemoved) Execute(ctx context.Context, payload map[string]any) error {
	evt, err := decodePayload[event.LegalEntityRemoved](payload)
	if err != nil {
		return err
	}

	return h.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		legalEntity, err := s.LegalEntities.FindOne(ctx, relationships.WithID(evt.LegalEntityID))
		switch {
		case errors.Is(err, database.ErrNotFound):
			h.logger.Info("removal for unknown legal entity",
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		case err != nil:
			return err
		case legalEntity.IsDeleted():
			h.logger.Info("legal entity already removed",
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		default:
			if _, err := s.LegalEntities.Save(ctx, legalEntity.MarkDeleted(evt.Removed)); err != nil {
				return err
			}
			h.logger.Info("legal entity removed",
				slog.Int64("account_legal_entity_id", evt.LegalEntityID),
			)
		}

		jobAudit, err := audit.NewJobAuditJSON(JobNameLegalEntityRemoved, payload, h.now())
		if err != nil {
			return err
		}
		_, err = s.JobAudits.Save(ctx, jobAudit)
		return err
	})
}
