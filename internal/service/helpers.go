// Package service provides business logic between API handlers and data
// stores: validation delegation, password hashing, and the async audit
// trail hook on every mutation.
package service

import "encoding/json"

// auditAsync enqueues an audit entry via the AuditWorker (best-effort, non-blocking).
func auditAsync(worker AuditEnqueuer, actorID int64, action, entity string, entityID int64, details map[string]any) {
	if worker == nil {
		return
	}
	worker.Enqueue(&AuditJob{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  details,
	})
}

// payloadMap renders a request struct as the audit details map. Pointer
// fields the caller omitted carry omitempty tags and disappear, so the
// recorded payload reflects exactly what was submitted.
func payloadMap(req any) map[string]any {
	data, err := json.Marshal(req)
	if err != nil {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}

	return m
}
