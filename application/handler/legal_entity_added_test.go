package handler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
)

func legalEntityAddedEvent() event.LegalEntityAdded {
	return event.LegalEntityAdded{
		AccountID:             77,
		AccountHashedID:       "HASH77",
		AccountPublicHashedID: "PUB77",
		AccountName:           "Owning Employer",
		LegalEntityID:         770,
		Name:                  "Owning Employer Ltd",
		PublicHashedID:        "PUBLE770",
		Added:                 time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC),
	}
}

func TestLegalEntityAddedCreatesAccountAndLegalEntity(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	ctx := context.Background()

	h := NewLegalEntityAdded(uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, legalEntityAddedEvent())))

	account, err := stores.Accounts.FindOne(ctx, relationships.WithID(77))
	require.NoError(t, err)
	assert.Equal(t, "Owning Employer", account.Name())
	assert.Equal(t, "HASH77", account.HashedID())

	legalEntity, err := stores.LegalEntities.FindOne(ctx, relationships.WithID(770))
	require.NoError(t, err)
	assert.Equal(t, "Owning Employer Ltd", legalEntity.Name())
	assert.Equal(t, int64(77), legalEntity.AccountID())
	assert.Equal(t, "PUBLE770", legalEntity.PublicHashedID())
	assert.False(t, legalEntity.IsDeleted())

	assert.Equal(t, int64(1), countJobAudits(t, stores))
}

func TestLegalEntityAddedReplayCreatesAccountOnce(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	ctx := context.Background()

	h := NewLegalEntityAdded(uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, legalEntityAddedEvent())))
	require.NoError(t, h.Execute(ctx, payload(t, legalEntityAddedEvent())))

	accounts, err := stores.Accounts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), accounts)

	legalEntities, err := stores.LegalEntities.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), legalEntities)

	assert.Equal(t, int64(2), countJobAudits(t, stores))
}

func TestLegalEntityAddedUsesExistingAccount(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	evt := legalEntityAddedEvent()
	evt.AccountID = testAccountID
	evt.AccountName = "Should Not Overwrite"

	h := NewLegalEntityAdded(uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, evt)))

	account, err := stores.Accounts.FindOne(ctx, relationships.WithID(testAccountID))
	require.NoError(t, err)
	assert.Equal(t, "Test Employer", account.Name())

	legalEntity, err := stores.LegalEntities.FindOne(ctx, relationships.WithID(770))
	require.NoError(t, err)
	assert.Equal(t, testAccountID, legalEntity.AccountID())
}

func TestLegalEntityAddedSecondEntityUnderSameAccount(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	ctx := context.Background()

	h := NewLegalEntityAdded(uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, legalEntityAddedEvent())))

	second := legalEntityAddedEvent()
	second.LegalEntityID = 771
	second.Name = "Second Entity Ltd"
	second.PublicHashedID = "PUBLE771"
	require.NoError(t, h.Execute(ctx, payload(t, second)))

	accounts, err := stores.Accounts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), accounts)

	legalEntities, err := stores.LegalEntities.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), legalEntities)
}
