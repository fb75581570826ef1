// Package request provides pending provider/employer requests and their
// status state machine.
package request

import "time"

// RequestType discriminates what a request asks for.
type RequestType string

// RequestType values.
const (
	TypeCreateAccount RequestType = "CreateAccount"
	TypeAddAccount    RequestType = "AddAccount"
	TypePermission    RequestType = "Permission"
)

// Status is the request lifecycle state. New and Sent are the only states
// this service transitions out of, and only to Expired; the rest are
// terminal states owned by other flows.
type Status string

// Status values.
const (
	StatusNew      Status = "New"
	StatusSent     Status = "Sent"
	StatusAccepted Status = "Accepted"
	StatusDeclined Status = "Declined"
	StatusExpired  Status = "Expired"
	StatusDeleted  Status = "Deleted"
)

// CanExpire reports whether the status is still pending.
func (s Status) CanExpire() bool {
	return s == StatusNew || s == StatusSent
}

// Request is a pending ask from a provider to an employer: create an
// account, add an account, or change permissions.
type Request struct {
	id            string
	requestType   RequestType
	ukprn         int64
	legalEntityID int64
	requestedDate time.Time
	status        Status
	updatedDate   time.Time
}

// New creates a Request in status New.
func New(id string, requestType RequestType, ukprn, legalEntityID int64, requestedDate time.Time) Request {
	return Request{
		id:            id,
		requestType:   requestType,
		ukprn:         ukprn,
		legalEntityID: legalEntityID,
		requestedDate: requestedDate,
		status:        StatusNew,
		updatedDate:   requestedDate,
	}
}

// Reconstruct rebuilds a Request from persisted state.
func Reconstruct(
	id string,
	requestType RequestType,
	ukprn, legalEntityID int64,
	requestedDate time.Time,
	status Status,
	updatedDate time.Time,
) Request {
	return Request{
		id:            id,
		requestType:   requestType,
		ukprn:         ukprn,
		legalEntityID: legalEntityID,
		requestedDate: requestedDate,
		status:        status,
		updatedDate:   updatedDate,
	}
}

// ID returns the request id.
func (r Request) ID() string { return r.id }

// RequestType returns what the request asks for.
func (r Request) RequestType() RequestType { return r.requestType }

// Ukprn returns the requesting provider's UKPRN.
func (r Request) Ukprn() int64 { return r.ukprn }

// LegalEntityID returns the subject legal entity id.
func (r Request) LegalEntityID() int64 { return r.legalEntityID }

// RequestedDate returns when the request was raised.
func (r Request) RequestedDate() time.Time { return r.requestedDate }

// Status returns the lifecycle state.
func (r Request) Status() Status { return r.status }

// UpdatedDate returns when the status last changed.
func (r Request) UpdatedDate() time.Time { return r.updatedDate }

// OlderThan reports whether the request's age exceeds the threshold at the
// given instant. The comparison is strict, evaluated at second granularity:
// a request becomes eligible one second past the boundary day, not on it.
func (r Request) OlderThan(threshold time.Duration, now time.Time) bool {
	return now.Sub(r.requestedDate) > threshold
}

// Expire returns a copy transitioned to Expired at the given time.
func (r Request) Expire(at time.Time) Request {
	r.status = StatusExpired
	r.updatedDate = at
	return r
}
