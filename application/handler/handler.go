// Package handler provides the event handler adapters: thin translations
// from inbound event payloads to the relationship linker and the account /
// legal-entity upserts. Handlers contain no linking logic of their own.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
)

// decodePayload converts a dispatched payload map into a typed event via a
// JSON round trip, so payloads decoded straight off the wire and payloads
// built in process behave identically.
func decodePayload[T any](payload map[string]any) (T, error) {
	var evt T
	data, err := json.Marshal(payload)
	if err != nil {
		return evt, fmt.Errorf("marshal payload: %w", err)
	}
	if err := json.Unmarshal(data, &evt); err != nil {
		return evt, fmt.Errorf("decode payload: %w", err)
	}
	return evt, nil
}

// writeJobAudit records one handler invocation in its own unit of work,
// capturing the raw event payload for replay and debugging.
func writeJobAudit(ctx context.Context, uow service.UnitOfWork, jobName string, payload map[string]any, at time.Time) error {
	return uow.Do(ctx, func(ctx context.Context, s service.Stores) error {
		jobAudit, err := audit.NewJobAuditJSON(jobName, payload, at)
		if err != nil {
			return err
		}
		_, err = s.JobAudits.Save(ctx, jobAudit)
		return err
	})
}
