package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
)

func TestRetentionSweeperPurgesOldNotifications(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	ctx := context.Background()

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	old := seedNotification(t, stores, notification.TemplateLinkedAccountCohort, now.Add(-366*24*time.Hour))
	kept := seedNotification(t, stores, notification.TemplateLinkedAccountCohort, now.Add(-364*24*time.Hour))

	sweeper := NewRetentionSweeper(uow, 365, slog.Default()).WithClock(func() time.Time { return now })

	deleted, err := sweeper.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	exists, err := stores.Notifications.Exists(ctx, notification.WithID(old.ID()))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = stores.Notifications.Exists(ctx, notification.WithID(kept.ID()))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRetentionSweeperPurgesRegardlessOfSendState(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	ctx := context.Background()

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-400 * 24 * time.Hour)

	unsent := seedNotification(t, stores, notification.TemplateLinkedAccountCohort, old)
	sent := seedNotification(t, stores, notification.TemplateLinkedAccountVacancy, old)
	_, err := stores.Notifications.Save(ctx, sent.MarkSent(old.Add(time.Hour)))
	require.NoError(t, err)

	sweeper := NewRetentionSweeper(uow, 365, slog.Default()).WithClock(func() time.Time { return now })

	deleted, err := sweeper.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	for _, id := range []string{unsent.ID(), sent.ID()} {
		exists, err := stores.Notifications.Exists(ctx, notification.WithID(id))
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestRetentionSweeperEmptyRunIsNoOp(t *testing.T) {
	uow, _ := newLinkerEnv(t)

	sweeper := NewRetentionSweeper(uow, 365, slog.Default())
	deleted, err := sweeper.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
