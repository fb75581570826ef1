package request

import (
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/store"
)

// Store defines persistence for requests.
type Store interface {
	store.Store[Request]
}

// WithID filters by request id.
func WithID(id string) store.Option {
	return store.WithCondition("id", id)
}

// WithPendingStatus filters to the New and Sent states.
func WithPendingStatus() store.Option {
	return store.WithConditionIn("status", []string{string(StatusNew), string(StatusSent)})
}

// WithRequestedBefore filters to requests raised before the given time.
func WithRequestedBefore(cutoff time.Time) store.Option {
	return store.WithBefore("requested_date", cutoff)
}
