package notification

import (
	"context"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/store"
)

// Store defines persistence for notifications.
type Store interface {
	store.Store[Notification]

	// SaveAll batch-inserts notifications.
	SaveAll(ctx context.Context, notifications []Notification) error
}

// --- Typed query options ---

// WithID filters by notification id.
func WithID(id string) store.Option {
	return store.WithCondition("id", id)
}

// WithUnsent filters to notifications not yet dispatched.
func WithUnsent() store.Option {
	return store.WithNull("sent_time")
}

// WithType filters by the addressee discriminator.
func WithType(t Type) store.Option {
	return store.WithCondition("notification_type", string(t))
}

// WithCreatedBefore filters to notifications created before the given time.
func WithCreatedBefore(cutoff time.Time) store.Option {
	return store.WithBefore("created_date", cutoff)
}

// OldestFirst orders by creation time ascending (FIFO fairness).
func OldestFirst() store.Option {
	return store.WithOrderAsc("created_date")
}
