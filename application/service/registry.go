package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
)

// Handler executes one inbound event operation.
type Handler interface {
	Execute(ctx context.Context, payload map[string]any) error
}

// Registry manages event handlers keyed by operation.
type Registry struct {
	handlers map[event.Operation]Handler
	mu       sync.RWMutex
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[event.Operation]Handler)}
}

// Register registers a handler for an operation.
func (r *Registry) Register(operation event.Operation, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[operation] = handler
}

// Handler returns the handler for an operation.
func (r *Registry) Handler(operation event.Operation) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[operation]
	return handler, ok
}

// Operations returns all registered operations.
func (r *Registry) Operations() []event.Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]event.Operation, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	return ops
}

// EventDispatcher routes one delivered event to its registered handler.
// The message transport is an external collaborator; whatever host receives
// the delivery calls Dispatch with the operation name and decoded payload.
// A handler error propagates so the host can apply its redelivery policy —
// handlers are idempotent, so a retried delivery lands on the
// check-then-create short-circuit.
type EventDispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewEventDispatcher creates an EventDispatcher.
func NewEventDispatcher(registry *Registry, logger *slog.Logger) *EventDispatcher {
	return &EventDispatcher{registry: registry, logger: logger}
}

// Dispatch executes the handler registered for the operation.
func (d *EventDispatcher) Dispatch(ctx context.Context, operation event.Operation, payload map[string]any) error {
	handler, ok := d.registry.Handler(operation)
	if !ok {
		return fmt.Errorf("no handler registered for operation %q", operation)
	}

	d.logger.Debug("dispatching event", slog.String("operation", operation.String()))

	if err := handler.Execute(ctx, payload); err != nil {
		return fmt.Errorf("handle %s: %w", operation, err)
	}
	return nil
}
