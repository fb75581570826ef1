package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	domainservice "github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
)

type sentEmail struct {
	ukprn      int64
	templateID string
	tokens     map[string]string
}

// fakeSender records sends and fails any template id present in failing.
type fakeSender struct {
	mu      sync.Mutex
	sent    []sentEmail
	failing map[string]bool
}

func (f *fakeSender) Send(_ context.Context, ukprn int64, templateID string, tokens map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing[templateID] {
		return fmt.Errorf("send rejected for template %s", templateID)
	}
	f.sent = append(f.sent, sentEmail{ukprn: ukprn, templateID: templateID, tokens: tokens})
	return nil
}

func seedNotification(t *testing.T, stores domainservice.Stores, templateName string, created time.Time) notification.Notification {
	t.Helper()
	note := notification.New(templateName, notification.TypeProvider, notification.CreatedBySystem, created).
		WithUkprn(testUkprn).
		WithLegalEntityID(testLegalEntityID)
	saved, err := stores.Notifications.Save(context.Background(), note)
	require.NoError(t, err)
	return saved
}

func TestNotificationDispatcherSendsOldestFirst(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	oldest := seedNotification(t, stores, notification.TemplateLinkedAccountCohort, base)
	middle := seedNotification(t, stores, notification.TemplateLinkedAccountVacancy, base.Add(time.Minute))
	newest := seedNotification(t, stores, notification.TemplateLinkedAccountCohort, base.Add(2*time.Minute))

	sender := &fakeSender{}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 2, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, notification.TemplateLinkedAccountCohort, sender.sent[0].templateID)
	assert.Equal(t, notification.TemplateLinkedAccountVacancy, sender.sent[1].templateID)

	for _, tc := range []struct {
		note notification.Notification
		sent bool
	}{
		{oldest, true}, {middle, true}, {newest, false},
	} {
		got, err := stores.Notifications.FindOne(ctx, notification.WithID(tc.note.ID()))
		require.NoError(t, err)
		assert.Equal(t, tc.sent, got.IsSent())
	}

	// The next run picks up the remainder.
	sent, err = dispatcher.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestNotificationDispatcherFailureLeavesNotificationUnsent(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedNotification(t, stores, notification.TemplateLinkedAccountCohort, base)
	failing := seedNotification(t, stores, notification.TemplateLinkedAccountVacancy, base.Add(time.Minute))
	seedNotification(t, stores, notification.TemplateLinkedAccountCohort, base.Add(2*time.Minute))

	sender := &fakeSender{failing: map[string]bool{notification.TemplateLinkedAccountVacancy: true}}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 10, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	got, err := stores.Notifications.FindOne(ctx, notification.WithID(failing.ID()))
	require.NoError(t, err)
	assert.False(t, got.IsSent())

	unsent, err := stores.Notifications.Count(ctx, notification.WithUnsent())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unsent)
}

func TestNotificationDispatcherResolvesProviderTokens(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	note := notification.New(notification.TemplateUpdatePermissionExpired, notification.TypeProvider,
		"PR Jobs: UpdatePermissionExpired", created).
		WithUkprn(testUkprn).
		WithLegalEntityID(testLegalEntityID).
		WithPermits(1, 2)
	_, err := stores.Notifications.Save(ctx, note)
	require.NoError(t, err)

	sender := &fakeSender{}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 10, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sent)
	require.Len(t, sender.sent, 1)

	tokens := sender.sent[0].tokens
	assert.Equal(t, "Test Provider", tokens[notification.TokenProviderName])
	assert.Equal(t, "Test Employer Ltd", tokens[notification.TokenEmployerName])
	assert.Equal(t, "add", tokens[notification.TokenPermitApprovals])
	assert.Equal(t, "create", tokens[notification.TokenPermitRecruit])
	assert.Equal(t, testUkprn, sender.sent[0].ukprn)
}

func TestNotificationDispatcherDerivesPermitsFromGrantedPermissions(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	accountProvider, err := stores.AccountProviders.Save(ctx,
		relationships.NewAccountProvider(testAccountID, testUkprn, created))
	require.NoError(t, err)
	link, err := stores.Links.Save(ctx,
		relationships.NewLink(accountProvider.ID(), testLegalEntityID, created))
	require.NoError(t, err)
	for _, op := range []relationships.Operation{
		relationships.OperationCreateCohort,
		relationships.OperationRecruitment,
	} {
		_, err = stores.Permissions.Save(ctx, relationships.NewPermission(link.ID(), op))
		require.NoError(t, err)
	}

	seedNotification(t, stores, notification.TemplateLinkedAccountCohort, created)

	sender := &fakeSender{}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 10, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sent)
	require.Len(t, sender.sent, 1)

	tokens := sender.sent[0].tokens
	assert.Equal(t, "add", tokens[notification.TokenPermitApprovals])
	assert.Equal(t, "create and publish", tokens[notification.TokenPermitRecruit])
}

func TestNotificationDispatcherOmitsPermitsWithoutLink(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedNotification(t, stores, notification.TemplateLinkedAccountCohort, created)

	sender := &fakeSender{}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 10, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sent)

	tokens := sender.sent[0].tokens
	assert.NotContains(t, tokens, notification.TokenPermitApprovals)
	assert.NotContains(t, tokens, notification.TokenPermitRecruit)
}

func TestNotificationDispatcherEmployerNameOverrideWins(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	note := notification.New(notification.TemplateLinkedAccountCohort, notification.TypeProvider,
		notification.CreatedBySystem, created).
		WithUkprn(testUkprn).
		WithLegalEntityID(testLegalEntityID).
		WithEmployerName("Override Plc")
	_, err := stores.Notifications.Save(ctx, note)
	require.NoError(t, err)

	sender := &fakeSender{}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 10, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sent)
	assert.Equal(t, "Override Plc", sender.sent[0].tokens[notification.TokenEmployerName])
}

func TestNotificationDispatcherSkipsUncataloguedTemplate(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orphan := seedNotification(t, stores, "RetiredTemplate", created)
	seedNotification(t, stores, notification.TemplateLinkedAccountCohort, created.Add(time.Minute))

	sender := &fakeSender{}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 10, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	got, err := stores.Notifications.FindOne(ctx, notification.WithID(orphan.ID()))
	require.NoError(t, err)
	assert.False(t, got.IsSent())
}

func TestNotificationDispatcherIgnoresSentNotifications(t *testing.T) {
	uow, stores := newLinkerEnv(t)
	seedGraph(t, stores)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	note := seedNotification(t, stores, notification.TemplateLinkedAccountCohort, created)
	_, err := stores.Notifications.Save(ctx, note.MarkSent(created.Add(time.Hour)))
	require.NoError(t, err)

	sender := &fakeSender{}
	dispatcher := NewNotificationDispatcher(uow, sender, notification.DefaultCatalog(), 10, slog.Default())

	sent, err := dispatcher.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, sender.sent)
}
