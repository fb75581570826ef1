// Package service provides the core jobs: relationship linking, request
// expiry, notification dispatch and retention, and the timer machinery that
// drives them.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// LegalEntityRef identifies a legal entity by exactly one of its numeric id
// or its public hashed id.
type LegalEntityRef struct {
	id             *int64
	publicHashedID *string
}

// LegalEntityByID references a legal entity by numeric id.
func LegalEntityByID(id int64) LegalEntityRef {
	return LegalEntityRef{id: &id}
}

// LegalEntityByPublicHashedID references a legal entity by public hashed id.
func LegalEntityByPublicHashedID(publicHashedID string) LegalEntityRef {
	return LegalEntityRef{publicHashedID: &publicHashedID}
}

// IsValid reports whether exactly one reference form is supplied.
func (r LegalEntityRef) IsValid() bool {
	return (r.id != nil) != (r.publicHashedID != nil)
}

func (r LegalEntityRef) resolve(ctx context.Context, legalEntities relationships.LegalEntityStore) (relationships.LegalEntity, error) {
	if r.id != nil {
		return legalEntities.FindOne(ctx, relationships.WithID(*r.id))
	}
	return legalEntities.FindOne(ctx, relationships.WithPublicHashedID(*r.publicHashedID))
}

// RelationshipLinker creates provider/employer linkage records exactly once
// despite at-least-once event delivery. Every successful creation stages one
// AccountProvider (when missing), one link, one notification, and one
// permission audit, committed atomically.
type RelationshipLinker struct {
	uow    service.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// NewRelationshipLinker creates a RelationshipLinker.
func NewRelationshipLinker(uow service.UnitOfWork, logger *slog.Logger) *RelationshipLinker {
	return &RelationshipLinker{uow: uow, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (l *RelationshipLinker) WithClock(now func() time.Time) *RelationshipLinker {
	l.now = now
	return l
}

// CreateRelationship links the provider to the legal entity's account and to
// the legal entity itself, emitting one notification and one permission
// audit. It returns true only when a new link was committed. Resolution
// misses and the already-linked case are normal no-op outcomes reported as
// (false, nil); the error is reserved for store failure, which the host
// retries.
func (l *RelationshipLinker) CreateRelationship(
	ctx context.Context,
	ref LegalEntityRef,
	providerUkprn int64,
	templateName string,
	auditAction string,
) (bool, error) {
	if !ref.IsValid() {
		l.logger.Warn("create relationship: exactly one of legal entity id or public hashed id required")
		return false, nil
	}

	created := false
	err := l.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		legalEntity, err := ref.resolve(ctx, s.LegalEntities)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				l.logger.Info("create relationship: legal entity not found",
					slog.Int64("ukprn", providerUkprn),
				)
				return nil
			}
			return err
		}

		provider, err := s.Providers.FindOne(ctx, relationships.WithUkprn(providerUkprn))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				l.logger.Info("create relationship: provider not found",
					slog.Int64("ukprn", providerUkprn),
				)
				return nil
			}
			return err
		}

		now := l.now()

		accountProvider, err := s.AccountProviders.FindOne(ctx,
			relationships.WithAccountID(legalEntity.AccountID()),
			relationships.WithProviderUkprn(provider.Ukprn()),
		)
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			return err
		}
		if errors.Is(err, database.ErrNotFound) {
			accountProvider = relationships.NewAccountProvider(legalEntity.AccountID(), provider.Ukprn(), now)
		}

		// A freshly constructed AccountProvider cannot have links yet,
		// so the lookup is only needed for a pre-existing one.
		if !accountProvider.IsNew() {
			linked, err := s.Links.Exists(ctx,
				relationships.WithAccountProviderID(accountProvider.ID()),
				relationships.WithLegalEntityID(legalEntity.ID()),
			)
			if err != nil {
				return err
			}
			if linked {
				l.logger.Info("create relationship: already linked",
					slog.Int64("ukprn", provider.Ukprn()),
					slog.Int64("account_legal_entity_id", legalEntity.ID()),
				)
				return nil
			}
		}

		if accountProvider.IsNew() {
			accountProvider, err = s.AccountProviders.Save(ctx, accountProvider)
			if err != nil {
				return err
			}
		}

		if _, err := s.Links.Save(ctx, relationships.NewLink(accountProvider.ID(), legalEntity.ID(), now)); err != nil {
			return err
		}

		note := notification.New(templateName, notification.TypeProvider, notification.CreatedBySystem, now).
			WithUkprn(provider.Ukprn()).
			WithLegalEntityID(legalEntity.ID())
		if _, err := s.Notifications.Save(ctx, note); err != nil {
			return err
		}

		permissionAudit := audit.NewPermissionAudit(now, auditAction, provider.Ukprn(), legalEntity.ID(), audit.EmptyOperations)
		if _, err := s.PermissionAudits.Save(ctx, permissionAudit); err != nil {
			return err
		}

		created = true
		l.logger.Info("relationship created",
			slog.Int64("ukprn", provider.Ukprn()),
			slog.Int64("account_id", legalEntity.AccountID()),
			slog.Int64("account_legal_entity_id", legalEntity.ID()),
			slog.String("action", auditAction),
		)
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
