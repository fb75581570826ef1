package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/request"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
)

// JobNameRequestExpiry is the JobAudit name of the expiry processor.
const JobNameRequestExpiry = "RequestExpiryProcessor"

// RequestExpiry transitions stale pending requests to Expired and raises
// one typed notification per expired request. One batch is one unit of work;
// a run that finds nothing writes nothing, not even a job audit.
type RequestExpiry struct {
	uow       service.UnitOfWork
	threshold time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewRequestExpiry creates a RequestExpiry expiring requests older than the
// given number of whole days.
func NewRequestExpiry(uow service.UnitOfWork, expiryAfterDays int, logger *slog.Logger) *RequestExpiry {
	return &RequestExpiry{
		uow:       uow,
		threshold: time.Duration(expiryAfterDays) * 24 * time.Hour,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (e *RequestExpiry) WithClock(now func() time.Time) *RequestExpiry {
	e.now = now
	return e
}

// Run expires every pending request whose age strictly exceeds the
// threshold, returning how many were expired.
func (e *RequestExpiry) Run(ctx context.Context) (int, error) {
	expired := 0
	err := e.uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		now := e.now()
		cutoff := now.Add(-e.threshold)

		requests, err := s.Requests.Find(ctx,
			request.WithPendingStatus(),
			request.WithRequestedBefore(cutoff),
		)
		if err != nil {
			return err
		}
		if len(requests) == 0 {
			return nil
		}

		notifications := make([]notification.Notification, 0, len(requests))
		requestIDs := make([]string, 0, len(requests))

		for _, req := range requests {
			if _, err := s.Requests.Save(ctx, req.Expire(now)); err != nil {
				return err
			}
			requestIDs = append(requestIDs, req.ID())

			templateName, createdBy, ok := expiryTemplate(req.RequestType())
			if !ok {
				e.logger.Warn("request expired without notification: unknown request type",
					slog.String("request_id", req.ID()),
					slog.String("request_type", string(req.RequestType())),
				)
				continue
			}

			notifications = append(notifications,
				notification.New(templateName, notification.TypeProvider, createdBy, now).
					WithUkprn(req.Ukprn()).
					WithLegalEntityID(req.LegalEntityID()).
					WithRequestID(req.ID()),
			)
		}

		if err := s.Notifications.SaveAll(ctx, notifications); err != nil {
			return err
		}

		jobAudit, err := audit.NewJobAuditJSON(JobNameRequestExpiry, map[string]any{
			"expired_request_ids": requestIDs,
			"notifications":       len(notifications),
		}, now)
		if err != nil {
			return err
		}
		if _, err := s.JobAudits.Save(ctx, jobAudit); err != nil {
			return err
		}

		expired = len(requests)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		e.logger.Info("expired pending requests", slog.Int("count", expired))
	}
	return expired, nil
}

// expiryTemplate selects the notification template and creator tag for an
// expiring request. Unknown types expire silently.
func expiryTemplate(t request.RequestType) (templateName, createdBy string, ok bool) {
	switch t {
	case request.TypeCreateAccount:
		return notification.TemplateCreateAccountExpired, "PR Jobs: CreateAccountExpired", true
	case request.TypeAddAccount:
		return notification.TemplateAddAccountExpired, "PR Jobs: AddAccountExpired", true
	case request.TypePermission:
		return notification.TemplateUpdatePermissionExpired, "PR Jobs: UpdatePermissionExpired", true
	default:
		return "", "", false
	}
}
