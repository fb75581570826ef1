package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPermissionAuditDefaultsEmptyOperations(t *testing.T) {
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	a := NewPermissionAudit(at, "LinkedAccountCohort", 12345678, 100, "")
	assert.Equal(t, EmptyOperations, a.Operations())
	assert.Nil(t, a.EmployerUser())

	b := NewPermissionAudit(at, "LinkedAccountCohort", 12345678, 100, `[{"operation":1}]`)
	assert.Equal(t, `[{"operation":1}]`, b.Operations())
}

func TestNewJobAuditJSON(t *testing.T) {
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	a, err := NewJobAuditJSON("TestJob", map[string]any{"count": 3}, at)
	require.NoError(t, err)
	assert.Equal(t, "TestJob", a.JobName())
	assert.JSONEq(t, `{"count":3}`, a.JobInfo())
	assert.Equal(t, at, a.ExecutedOn())
}

func TestNewJobAuditJSONRejectsUnserializable(t *testing.T) {
	_, err := NewJobAuditJSON("TestJob", map[string]any{"fn": func() {}}, time.Now())
	assert.Error(t, err)
}
