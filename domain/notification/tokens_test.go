package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermitRecruitText(t *testing.T) {
	assert.Equal(t, "cannot create", PermitRecruitText(0))
	assert.Equal(t, "create and publish", PermitRecruitText(1))
	assert.Equal(t, "create", PermitRecruitText(2))
	assert.Equal(t, "cannot create", PermitRecruitText(3))
}

func TestPermitApprovalsText(t *testing.T) {
	assert.Equal(t, "cannot add", PermitApprovalsText(0))
	assert.Equal(t, "add", PermitApprovalsText(1))
	assert.Equal(t, "cannot add", PermitApprovalsText(2))
}
