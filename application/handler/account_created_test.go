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
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
)

type fakeAccounts struct {
	details service.AccountDetails
	err     error
	calls   int
}

func (f *fakeAccounts) GetAccount(_ context.Context, _ int64) (service.AccountDetails, error) {
	f.calls++
	if f.err != nil {
		return service.AccountDetails{}, f.err
	}
	return f.details, nil
}

func accountCreatedEvent() event.AccountCreated {
	return event.AccountCreated{
		AccountID:      55,
		HashedID:       "HASH55",
		PublicHashedID: "PUB55",
		Name:           "New Employer",
		Created:        time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestAccountCreatedCreatesAccount(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	ctx := context.Background()

	h := NewAccountCreated(nil, uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, accountCreatedEvent())))

	account, err := stores.Accounts.FindOne(ctx, relationships.WithID(55))
	require.NoError(t, err)
	assert.Equal(t, "New Employer", account.Name())
	assert.Equal(t, "HASH55", account.HashedID())
	assert.Equal(t, "PUB55", account.PublicHashedID())

	assert.Equal(t, int64(1), countJobAudits(t, stores))
}

func TestAccountCreatedReplayCreatesOnce(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	ctx := context.Background()

	h := NewAccountCreated(nil, uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, accountCreatedEvent())))
	require.NoError(t, h.Execute(ctx, payload(t, accountCreatedEvent())))

	accounts, err := stores.Accounts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), accounts)

	// Every invocation audits, including the replay.
	assert.Equal(t, int64(2), countJobAudits(t, stores))
}

func TestAccountCreatedBackfillsMissingIdentifiers(t *testing.T) {
	uow, stores := newHandlerEnv(t)
	ctx := context.Background()

	evt := accountCreatedEvent()
	evt.HashedID = ""
	evt.PublicHashedID = ""

	accounts := &fakeAccounts{details: service.AccountDetails{
		HashedAccountID:       "HASHAPI",
		PublicHashedAccountID: "PUBAPI",
		DasAccountName:        "API Employer",
	}}

	h := NewAccountCreated(accounts, uow, slog.Default())
	require.NoError(t, h.Execute(ctx, payload(t, evt)))

	account, err := stores.Accounts.FindOne(ctx, relationships.WithID(55))
	require.NoError(t, err)
	assert.Equal(t, "HASHAPI", account.HashedID())
	assert.Equal(t, "PUBAPI", account.PublicHashedID())
	// The event's own name wins over the backfill.
	assert.Equal(t, "New Employer", account.Name())
	assert.Equal(t, 1, accounts.calls)
}

func TestAccountCreatedCompleteEventSkipsBackfill(t *testing.T) {
	uow, _ := newHandlerEnv(t)
	accounts := &fakeAccounts{}

	h := NewAccountCreated(accounts, uow, slog.Default())
	require.NoError(t, h.Execute(context.Background(), payload(t, accountCreatedEvent())))

	assert.Zero(t, accounts.calls)
}

func TestAccountCreatedBackfillErrorPropagates(t *testing.T) {
	uow, stores := newHandlerEnv(t)

	evt := accountCreatedEvent()
	evt.PublicHashedID = ""

	h := NewAccountCreated(&fakeAccounts{err: assert.AnError}, uow, slog.Default())
	err := h.Execute(context.Background(), payload(t, evt))
	assert.ErrorIs(t, err, assert.AnError)

	accounts, countErr := stores.Accounts.Count(context.Background())
	require.NoError(t, countErr)
	assert.Zero(t, accounts)
}
