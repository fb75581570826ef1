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

// JobNameVacancyApproved tags job audit rows written by VacancyApproved.
const JobNameVacancyApproved = "VacancyApprovedEventHandler"

// VacancyApproved links a provider to the legal entity behind a vacancy that
// passed review. Vacancy approvals replay far more often than cohort
// assignments, so this handler checks for an existing link before delegating
// and drops pure replays without any writes.
type VacancyApproved struct {
	vacancies service.VacancyReader
	stores    service.Stores
	linker    *appservice.RelationshipLinker
	uow       service.UnitOfWork
	logger    *slog.Logger
	now       func() time.Time
}

// NewVacancyApproved creates a VacancyApproved handler.
func NewVacancyApproved(
	vacancies service.VacancyReader,
	stores service.Stores,
	linker *appservice.RelationshipLinker,
	uow service.UnitOfWork,
	logger *slog.Logger,
) *VacancyApproved {
	return &VacancyApproved{
		vacancies: vacancies,
		stores:    stores,
		linker:    linker,
		uow:       uow,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (h *VacancyApproved) WithClock(now func() time.Time) *VacancyApproved {
	h.now = now
	return h
}

// Execute fetches the live vacancy and delegates to the linker unless the
// relationship already exists. Unknown legal entities and providers are
// dropped without an audit row, as is the already-linked replay; once the
// linker is invoked, one job audit row is written whatever the outcome.
func (h *VacancyApproved) Execute(ctx context.Context, payload map[string]any) error {
	evt, err := decodePayload[event.VacancyApproved](payload)
	if err != nil {
		return err
	}

	vacancy, err := h.vacancies.GetLiveVacancy(ctx, evt.VacancyReference)
	if err != nil {
		return err
	}

	legalEntity, err := h.stores.LegalEntities.FindOne(ctx,
		relationships.WithPublicHashedID(vacancy.AccountLegalEntityPublicHashedID))
	if errors.Is(err, database.ErrNotFound) {
		h.logger.Info("vacancy references unknown legal entity",
			slog.Int64("vacancy_reference", evt.VacancyReference),
			slog.String("public_hashed_id", vacancy.AccountLegalEntityPublicHashedID),
		)
		return nil
	}
	if err != nil {
		return err
	}

	_, err = h.stores.Providers.FindOne(ctx, relationships.WithUkprn(vacancy.TrainingProviderUkprn))
	if errors.Is(err, database.ErrNotFound) {
		h.logger.Info("vacancy references unknown provider",
			slog.Int64("vacancy_reference", evt.VacancyReference),
			slog.Int64("ukprn", vacancy.TrainingProviderUkprn),
		)
		return nil
	}
	if err != nil {
		return err
	}

	linked, err := h.alreadyLinked(ctx, legalEntity, vacancy.TrainingProviderUkprn)
	if err != nil {
		return err
	}
	if linked {
		h.logger.Info("vacancy relationship already linked",
			slog.Int64("vacancy_reference", evt.VacancyReference),
			slog.Int64("ukprn", vacancy.TrainingProviderUkprn),
		)
		return nil
	}

	created, err := h.linker.CreateRelationship(ctx,
		appservice.LegalEntityByPublicHashedID(vacancy.AccountLegalEntityPublicHashedID),
		vacancy.TrainingProviderUkprn,
		notification.TemplateLinkedAccountVacancy,
		notification.TemplateLinkedAccountVacancy,
	)
	if err != nil {
		return err
	}

	h.logger.Info("vacancy approval handled",
		slog.Int64("vacancy_reference", evt.VacancyReference),
		slog.Bool("created", created),
	)
	return writeJobAudit(ctx, h.uow, JobNameVacancyApproved, payload, h.now())
}

func (h *VacancyApproved) alreadyLinked(ctx context.Context, legalEntity relationships.LegalEntity, ukprn int64) (bool, error) {
	accountProvider, err := h.stores.AccountProviders.FindOne(ctx,
		relationships.WithAccountID(legalEntity.AccountID()),
		relationships.WithProviderUkprn(ukprn),
	)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return h.stores.Links.Exists(ctx,
		relationships.WithAccountProviderID(accountProvider.ID()),
		relationships.WithLegalEntityID(legalEntity.ID()),
	)
}
