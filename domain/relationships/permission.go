package relationships

import "fmt"

// Operation is a capability granted to a provider on a legal entity.
type Operation int

// Operation values. The integer codes are shared with the employer-facing
// services; the dispatcher derives notification tokens from them.
const (
	OperationCreateCohort              Operation = 0
	OperationRecruitment               Operation = 1
	OperationRecruitmentRequiresReview Operation = 2
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OperationCreateCohort:
		return "CreateCohort"
	case OperationRecruitment:
		return "Recruitment"
	case OperationRecruitmentRequiresReview:
		return "RecruitmentRequiresReview"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Permission grants one Operation to the provider on the legal entity a
// Link joins. Grants are made by a separate employer-facing flow; this
// service reads them for audit snapshots and notification tokens.
type Permission struct {
	id        int64
	linkID    int64
	operation Operation
}

// NewPermission creates a Permission not yet persisted (zero id).
func NewPermission(linkID int64, operation Operation) Permission {
	return Permission{linkID: linkID, operation: operation}
}

// ReconstructPermission rebuilds a Permission from persisted state.
func ReconstructPermission(id, linkID int64, operation Operation) Permission {
	return Permission{id: id, linkID: linkID, operation: operation}
}

// ID returns the row id.
func (p Permission) ID() int64 { return p.id }

// LinkID returns the owning link id.
func (p Permission) LinkID() int64 { return p.linkID }

// Operation returns the granted capability.
func (p Permission) Operation() Operation { return p.operation }
