package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
)

type recordingHandler struct {
	payloads []map[string]any
	err      error
}

func (h *recordingHandler) Execute(_ context.Context, payload map[string]any) error {
	h.payloads = append(h.payloads, payload)
	return h.err
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	handler := &recordingHandler{}

	registry.Register(event.OperationAccountCreated, handler)

	got, ok := registry.Handler(event.OperationAccountCreated)
	require.True(t, ok)
	assert.Same(t, handler, got)

	_, ok = registry.Handler(event.OperationVacancyApproved)
	assert.False(t, ok)

	assert.ElementsMatch(t, []event.Operation{event.OperationAccountCreated}, registry.Operations())
}

func TestEventDispatcherRoutesToHandler(t *testing.T) {
	registry := NewRegistry()
	handler := &recordingHandler{}
	registry.Register(event.OperationLegalEntityAdded, handler)

	dispatcher := NewEventDispatcher(registry, slog.Default())

	payload := map[string]any{"legal_entity_id": float64(100)}
	err := dispatcher.Dispatch(context.Background(), event.OperationLegalEntityAdded, payload)
	require.NoError(t, err)
	require.Len(t, handler.payloads, 1)
	assert.Equal(t, payload, handler.payloads[0])
}

func TestEventDispatcherUnregisteredOperationErrors(t *testing.T) {
	dispatcher := NewEventDispatcher(NewRegistry(), slog.Default())

	err := dispatcher.Dispatch(context.Background(), event.OperationCohortAssigned, map[string]any{})
	assert.ErrorContains(t, err, "no handler registered")
}

func TestEventDispatcherPropagatesHandlerError(t *testing.T) {
	registry := NewRegistry()
	registry.Register(event.OperationAccountCreated, &recordingHandler{err: assert.AnError})

	dispatcher := NewEventDispatcher(registry, slog.Default())

	err := dispatcher.Dispatch(context.Background(), event.OperationAccountCreated, map[string]any{})
	assert.ErrorIs(t, err, assert.AnError)
}
