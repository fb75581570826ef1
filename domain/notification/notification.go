// Package notification provides the outbound notification entity, the
// template catalog, and email token derivation.
package notification

import (
	"time"

	"github.com/google/uuid"
)

// CreatedBySystem is the creator tag for notifications raised by the
// relationship linker.
const CreatedBySystem = "System"

// Type discriminates who a notification is addressed to. Today the only
// variant is Provider; adding an Employer variant means adding a constant
// and a token resolver, nothing else.
type Type string

// Type values.
const (
	TypeProvider Type = "Provider"
)

// Notification is one outbound email, created unsent and marked sent exactly
// once by the dispatcher. The retention sweeper purges it after the retention
// window regardless of send state.
type Notification struct {
	id               string
	templateName     string
	notificationType Type
	ukprn            *int64
	legalEntityID    *int64
	requestID        *string
	permitApprovals  *int
	permitRecruit    *int
	employerName     *string
	contact          *string
	createdBy        string
	createdDate      time.Time
	sentTime         *time.Time
}

// New creates an unsent Notification with a fresh id.
func New(templateName string, notificationType Type, createdBy string, createdDate time.Time) Notification {
	return Notification{
		id:               uuid.NewString(),
		templateName:     templateName,
		notificationType: notificationType,
		createdBy:        createdBy,
		createdDate:      createdDate,
	}
}

// Reconstruct rebuilds a Notification from persisted state.
func Reconstruct(
	id, templateName string,
	notificationType Type,
	ukprn, legalEntityID *int64,
	requestID *string,
	permitApprovals, permitRecruit *int,
	employerName, contact *string,
	createdBy string,
	createdDate time.Time,
	sentTime *time.Time,
) Notification {
	return Notification{
		id:               id,
		templateName:     templateName,
		notificationType: notificationType,
		ukprn:            ukprn,
		legalEntityID:    legalEntityID,
		requestID:        requestID,
		permitApprovals:  permitApprovals,
		permitRecruit:    permitRecruit,
		employerName:     employerName,
		contact:          contact,
		createdBy:        createdBy,
		createdDate:      createdDate,
		sentTime:         sentTime,
	}
}

// ID returns the notification id.
func (n Notification) ID() string { return n.id }

// TemplateName returns the catalog template name.
func (n Notification) TemplateName() string { return n.templateName }

// NotificationType returns the addressee discriminator.
func (n Notification) NotificationType() Type { return n.notificationType }

// Ukprn returns the addressed provider's UKPRN, or nil.
func (n Notification) Ukprn() *int64 { return copyPtr(n.ukprn) }

// LegalEntityID returns the subject legal entity id, or nil.
func (n Notification) LegalEntityID() *int64 { return copyPtr(n.legalEntityID) }

// RequestID returns the originating request id, or nil.
func (n Notification) RequestID() *string { return copyPtr(n.requestID) }

// PermitApprovals returns the approvals permission code token, or nil.
func (n Notification) PermitApprovals() *int { return copyPtr(n.permitApprovals) }

// PermitRecruit returns the recruitment permission code token, or nil.
func (n Notification) PermitRecruit() *int { return copyPtr(n.permitRecruit) }

// EmployerName returns the employer-name token override, or nil.
func (n Notification) EmployerName() *string { return copyPtr(n.employerName) }

// Contact returns the contact token override, or nil.
func (n Notification) Contact() *string { return copyPtr(n.contact) }

// CreatedBy returns the creator tag.
func (n Notification) CreatedBy() string { return n.createdBy }

// CreatedDate returns when the notification was created.
func (n Notification) CreatedDate() time.Time { return n.createdDate }

// SentTime returns when the notification was sent, or nil while pending.
func (n Notification) SentTime() *time.Time { return copyPtr(n.sentTime) }

// IsSent reports whether the notification has been dispatched.
func (n Notification) IsSent() bool { return n.sentTime != nil }

// WithUkprn returns a copy addressed to the given provider.
func (n Notification) WithUkprn(ukprn int64) Notification {
	n.ukprn = &ukprn
	return n
}

// WithLegalEntityID returns a copy scoped to the given legal entity.
func (n Notification) WithLegalEntityID(id int64) Notification {
	n.legalEntityID = &id
	return n
}

// WithRequestID returns a copy tied to the originating request.
func (n Notification) WithRequestID(id string) Notification {
	n.requestID = &id
	return n
}

// WithPermits returns a copy carrying the permission code tokens.
func (n Notification) WithPermits(approvals, recruit int) Notification {
	n.permitApprovals = &approvals
	n.permitRecruit = &recruit
	return n
}

// WithEmployerName returns a copy carrying an employer-name token override.
func (n Notification) WithEmployerName(name string) Notification {
	n.employerName = &name
	return n
}

// MarkSent returns a copy stamped as sent at the given time.
func (n Notification) MarkSent(at time.Time) Notification {
	n.sentTime = &at
	return n
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
