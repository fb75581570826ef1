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

func TestLegalEntityUpdatedRenames(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	evt := event.LegalEntityUpdated{
		LegalEntityID: testLegalEntityID,
		Name:          "Renamed Ltd",
		Updated:       time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}

	h := NewLegalEntityUpdated(uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, evt)))

	legalEntity, err := stores.LegalEntities.FindOne(ctx, relationships.WithID(testLegalEntityID))
	require.NoError(t, err)
	assert.Equal(t, "Renamed Ltd", legalEntity.Name())
	assert.Equal(t, int64(1), countJobAudits(t, stores))
}

func TestLegalEntityUpdatedRemovedEntityIsFrozen(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	removed := NewLegalEntityRemoved(uow, slog.Default())
	require.NoError(t, removed.Execute(ctx, payload(t, event.LegalEntityRemoved{
		LegalEntityID: testLegalEntityID,
		Removed:       time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC),
	})))

	evt := event.LegalEntityUpdated{
		LegalEntityID: testLegalEntityID,
		Name:          "Late Rename",
		Updated:       time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}

	h := NewLegalEntityUpdated(uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, evt)))

	legalEntity, err := stores.LegalEntities.FindOne(ctx, relationships.WithID(testLegalEntityID))
	require.NoError(t, err)
	assert.Equal(t, "Test Employer Ltd", legalEntity.Name())
	assert.True(t, legalEntity.IsDeleted())
}

func TestLegalEntityUpdatedUnknownEntityStillAudits(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	ctx := context.Background()

	evt := event.LegalEntityUpdated{
		LegalEntityID: 404,
		Name:          "Ghost Ltd",
		Updated:       time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}

	h := NewLegalEntityUpdated(uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, evt)))
	assert.Equal(t, int64(1), countJobAudits(t, stores))
}
