package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	appservice "github.com/SkillsFundingAgency/das-pr-jobs/application/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// JobNameCohortAssigned tags job audit rows written by CohortAssigned.
const JobNameCohortAssigned = "CohortAssignedToProviderEventHandler"

// CohortAssigned links a provider to the legal entity behind a newly
// assigned cohort of commitments. The cohort id on the event is a pointer
// into the commitments service; everything else is fetched.
type CohortAssigned struct {
	cohorts service.CohortReader
	stores  service.Stores
	linker  *appservice.RelationshipLinker
	uow     service.UnitOfWork
	logger  *slog.Logger
	now     func() time.Time
}

// NewCohortAssigned creates a CohortAssigned handler.
func NewCohortAssigned(
	cohorts service.CohortReader,
	stores service.Stores,
	linker *appservice.RelationshipLinker,
	uow service.UnitOfWork,
	logger *slog.Logger,
) *CohortAssigned {
	return &CohortAssigned{
		cohorts: cohorts,
		stores:  stores,
		linker:  linker,
		uow:     uow,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (h *CohortAssigned) WithClock(now func() time.Time) *CohortAssigned {
	h.now = now
	return h
}

// Execute fetches the cohort, verifies the local graph knows both ends of
// the relationship, and delegates to the linker. A cohort that references an
// unknown legal entity or provider is dropped without an audit row; once the
// linker is invoked, one job audit row is written whatever the outcome.
func (h *CohortAssigned) Execute(ctx context.Context, payload map[string]any) error {
	evt, err := decodePayload[event.CohortAssignedToProvider](payload)
	if err != nil {
		return err
	}

	details, err := h.cohorts.GetCohort(ctx, evt.CohortID)
	if err != nil {
		return err
	}

	known, err := h.relationshipKnown(ctx, details)
	if err != nil {
		return err
	}
	if !known {
		return nil
	}

	created, err := h.linker.CreateRelationship(ctx,
		appservice.LegalEntityByID(details.AccountLegalEntityID),
		details.ProviderID,
		notification.TemplateLinkedAccountCohort,
		notification.TemplateLinkedAccountCohort,
	)
	if err != nil {
		return err
	}

	h.logger.Info("cohort assignment handled",
		slog.Int64("cohort_id", evt.CohortID),
		slog.Bool("created", created),
	)
	return writeJobAudit(ctx, h.uow, JobNameCohortAssigned, payload, h.now())
}

func (h *CohortAssigned) relationshipKnown(ctx context.Context, details service.CohortDetails) (bool, error) {
	_, err := h.stores.LegalEntities.FindOne(ctx, relationships.WithID(details.AccountLegalEntityID))
	if errors.Is(err, database.ErrNotFound) {
		h.logger.Info("cohort references unknown legal entity",
			slog.Int64("cohort_id", details.CohortID),
			slog.Int64("account_legal_entity_id", details.AccountLegalEntityID),
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	_, err = h.stores.Providers.FindOne(ctx, relationships.WithUkprn(details.ProviderID))
	if errors.Is(err, database.ErrNotFound) {
		h.logger.Info("cohort references unknown provider",
			slog.Int64("cohort_id", details.CohortID),
			slog.Int64("ukprn", details.ProviderID),
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
