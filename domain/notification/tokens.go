package notification

// Token names substituted into email templates.
const (
	TokenProviderName    = "provider_name"
	TokenEmployerName    = "employer_name"
	TokenPermitApprovals = "permit_approvals"
	TokenPermitRecruit   = "permit_recruit"
)

// PermitRecruitText renders the recruitment permission code as template text.
func PermitRecruitText(code int) string {
	switch code {
	case 1:
		return "create and publish"
	case 2:
		return "create"
	default:
		return "cannot create"
	}
}

// PermitApprovalsText renders the approvals permission code as template text.
func PermitApprovalsText(code int) string {
	if code == 1 {
		return "add"
	}
	return "cannot add"
}
