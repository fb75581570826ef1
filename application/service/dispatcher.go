package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/store"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// NotificationDispatcher sends pending notifications through the external
// email channel, oldest first. A send failure leaves that notification
// unsent and eligible for the next batch; the successful sends of a batch
// are committed together.
type NotificationDispatcher struct {
	uow       service.UnitOfWork
	sender    service.EmailSender
	catalog   notification.Catalog
	batchSize int
	logger    *slog.Logger
	now       func() time.Time
}

// NewNotificationDispatcher creates a NotificationDispatcher.
func NewNotificationDispatcher(
	uow service.UnitOfWork,
	sender service.EmailSender,
	catalog notification.Catalog,
	batchSize int,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		uow:       uow,
		sender:    sender,
		catalog:   catalog,
		batchSize: batchSize,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (d *NotificationDispatcher) WithClock(now func() time.Time) *NotificationDispatcher {
	d.now = now
	return d
}

// Run dispatches one batch of provider notifications, returning how many
// were sent.
func (d *NotificationDispatcher) Run(ctx context.Context) (int, error) {
	sent := 0
	err := d.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		batch, err := s.Notifications.Find(ctx,
			notification.WithUnsent(),
			notification.WithType(notification.TypeProvider),
			notification.OldestFirst(),
			store.WithLimit(d.batchSize),
		)
		if err != nil {
			return err
		}

		for _, note := range batch {
			if err := d.dispatch(ctx, s, note); err != nil {
				// Leave unsent; the next batch retries it.
				d.logger.Warn("notification not sent",
					slog.String("notification_id", note.ID()),
					slog.String("template", note.TemplateName()),
					slog.String("error", err.Error()),
				)
				continue
			}
			if _, err := s.Notifications.Save(ctx, note.MarkSent(d.now())); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if sent > 0 {
		d.logger.Info("notifications dispatched", slog.Int("count", sent))
	}
	return sent, nil
}

func (d *NotificationDispatcher) dispatch(ctx context.Context, s service.Stores, note notification.Notification) error {
	templateID, ok := d.catalog.TemplateID(note.TemplateName())
	if !ok {
		return fmt.Errorf("template %q not in catalog", note.TemplateName())
	}

	resolve, ok := tokenResolvers[note.NotificationType()]
	if !ok {
		return fmt.Errorf("no token resolver for notification type %q", note.NotificationType())
	}
	tokens, err := resolve(ctx, s, note)
	if err != nil {
		return err
	}

	if note.Ukprn() == nil {
		return fmt.Errorf("notification has no ukprn")
	}
	return d.sender.Send(ctx, *note.Ukprn(), templateID, tokens)
}

// tokenResolver builds the token map for one notification variant.
type tokenResolver func(ctx context.Context, s service.Stores, note notification.Notification) (map[string]string, error)

// tokenResolvers is the closed variant set of notification addressees.
// Adding an Employer variant means adding one entry here.
var tokenResolvers = map[notification.Type]tokenResolver{
	notification.TypeProvider: providerTokens,
}

// providerTokens resolves the provider-facing token set: provider name,
// employer name, and the permit tokens derived from the permission codes.
func providerTokens(ctx context.Context, s service.Stores, note notification.Notification) (map[string]string, error) {
	tokens := map[string]string{}

	if note.Ukprn() != nil {
		provider, err := s.Providers.FindOne(ctx, relationships.WithUkprn(*note.Ukprn()))
		if err != nil {
			return nil, fmt.Errorf("resolve provider: %w", err)
		}
		tokens[notification.TokenProviderName] = provider.Name()
	}

	switch {
	case note.EmployerName() != nil:
		tokens[notification.TokenEmployerName] = *note.EmployerName()
	case note.LegalEntityID() != nil:
		legalEntity, err := s.LegalEntities.FindOne(ctx, relationships.WithID(*note.LegalEntityID()))
		if err != nil {
			return nil, fmt.Errorf("resolve legal entity: %w", err)
		}
		tokens[notification.TokenEmployerName] = legalEntity.Name()
	}

	switch {
	case note.PermitApprovals() != nil || note.PermitRecruit() != nil:
		if note.PermitApprovals() != nil {
			tokens[notification.TokenPermitApprovals] = notification.PermitApprovalsText(*note.PermitApprovals())
		}
		if note.PermitRecruit() != nil {
			tokens[notification.TokenPermitRecruit] = notification.PermitRecruitText(*note.PermitRecruit())
		}
	case note.Ukprn() != nil && note.LegalEntityID() != nil:
		approvals, recruit, found, err := grantedPermits(ctx, s, *note.Ukprn(), *note.LegalEntityID())
		if err != nil {
			return nil, err
		}
		if found {
			tokens[notification.TokenPermitApprovals] = notification.PermitApprovalsText(approvals)
			tokens[notification.TokenPermitRecruit] = notification.PermitRecruitText(recruit)
		}
	}

	return tokens, nil
}

// grantedPermits derives the permit token codes from the permissions granted
// on the provider's link to the legal entity. found is false when no such
// link exists, in which case the permit tokens are omitted.
func grantedPermits(ctx context.Context, s service.Stores, ukprn, legalEntityID int64) (approvals, recruit int, found bool, err error) {
	legalEntity, err := s.LegalEntities.FindOne(ctx, relationships.WithID(legalEntityID))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, 0, false, nil
		}
		return 0, 0, false, err
	}

	accountProvider, err := s.AccountProviders.FindOne(ctx,
		relationships.WithAccountID(legalEntity.AccountID()),
		relationships.WithProviderUkprn(ukprn),
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, 0, false, nil
		}
		return 0, 0, false, err
	}

	link, err := s.Links.FindOne(ctx,
		relationships.WithAccountProviderID(accountProvider.ID()),
		relationships.WithLegalEntityID(legalEntityID),
	)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, 0, false, nil
		}
		return 0, 0, false, err
	}

	permissions, err := s.Permissions.Find(ctx, relationships.WithLinkID(link.ID()))
	if err != nil {
		return 0, 0, false, err
	}

	for _, p := range permissions {
		switch p.Operation() {
		case relationships.OperationCreateCohort:
			approvals = 1
		case relationships.OperationRecruitment:
			recruit = 1
		case relationships.OperationRecruitmentRequiresReview:
			if recruit == 0 {
				recruit = 2
			}
		}
	}
	return approvals, recruit, true, nil
}
