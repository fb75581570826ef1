// Package event defines the inbound domain events this service reacts to
// and the operation names handlers register under.
package event

import "fmt"

// Operation names an inbound event kind. The message transport maps each
// delivery to exactly one operation; the registry dispatches on it.
type Operation string

// Operation values.
const (
	OperationCohortAssigned     Operation = "cohort_assigned_to_provider"
	OperationVacancyApproved    Operation = "vacancy_approved"
	OperationAccountCreated     Operation = "account_created"
	OperationAccountNameChanged Operation = "account_name_changed"
	OperationLegalEntityAdded   Operation = "legal_entity_added"
	OperationLegalEntityUpdated Operation = "legal_entity_updated"
	OperationLegalEntityRemoved Operation = "legal_entity_removed"
)

// String returns the operation name.
func (o Operation) String() string { return string(o) }

// ParseOperation validates an operation name.
func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OperationCohortAssigned,
		OperationVacancyApproved,
		OperationAccountCreated,
		OperationAccountNameChanged,
		OperationLegalEntityAdded,
		OperationLegalEntityUpdated,
		OperationLegalEntityRemoved:
		return Operation(s), nil
	default:
		return "", fmt.Errorf("unknown operation: %q", s)
	}
}
