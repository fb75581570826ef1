package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/infrastructure/persistence"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/testdb"
)

const (
	testAccountID     = int64(1)
	testLegalEntityID = int64(100)
	testPublicHashed  = "PUB100"
	testUkprn         = int64(12345678)
)

func newHandlerEnv(t *testing.T) (service.UnitOfWork, service.Stores) {
	t.Helper()
	db := testdb.New(t)
	return persistence.NewUnitOfWork(db), persistence.NewStores(db)
}

func seedGraph(t *testing.T, stores service.Stores) {
	t.Helper()
	ctx := context.Background()
	seeded := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	_, err := stores.Accounts.Save(ctx,
		relationships.NewAccount(testAccountID, "HASH1", "PUB1", "Test Employer", seeded))
	require.NoError(t, err)

	_, err = stores.LegalEntities.Save(ctx,
		relationships.NewLegalEntity(testLegalEntityID, testAccountID, "Test Employer Ltd", testPublicHashed, seeded))
	require.NoError(t, err)

	_, err = stores.Providers.Save(ctx,
		relationships.NewProvider(testUkprn, "Test Provider", seeded))
	require.NoError(t, err)
}

// payload converts a typed event into the map shape handlers receive.
func payload(t *testing.T, evt any) map[string]any {
	t.Helper()
	data, err := json.Marshal(evt)
	require.NoError(t, err)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func countJobAudits(t *testing.T, stores service.Stores) int64 {
	t.Helper()
	count, err := stores.JobAudits.Count(context.Background())
	require.NoError(t, err)
	return count
}
