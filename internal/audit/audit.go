// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package audit records an immutable trail of authenticated mutations.
// Every state-changing admin operation writes exactly one entry after
// the mutation succeeds and before the response is sent.
package audit

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/store"
)

// Recorder writes audit entries through the audit store.
type Recorder struct {
	entries *store.AuditStore
}

// NewRecorder creates a Recorder backed by the given store.
func NewRecorder(entries *store.AuditStore) *Recorder {
	return &Recorder{entries: entries}
}

// Record appends one audit entry for a mutation performed by actor.
// Changes holds the raw request payload; resourceID may be nil for
// operations without a single target (login, settings bootstrap).
// A write failure is returned to the caller so the handler can fail
// the request rather than complete a mutation unaudited.
func (rec *Recorder) Record(r *http.Request, actorID uuid.UUID, action models.AuditAction, resourceType string, resourceID *uuid.UUID, changes json.RawMessage) error {
	entry := &models.AuditEntry{
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      changes,
	}
	if ip := middleware.ClientIP(r); ip != "" {
		entry.IPAddress = &ip
	}
	if ua := r.UserAgent(); ua != "" {
		entry.UserAgent = &ua
	}
	if _, err := rec.entries.Insert(entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

// List exposes the stored trail for the admin audit endpoints.
func (rec *Recorder) List(f store.AuditFilter, p store.Page) ([]models.AuditEntry, int, error) {
	return rec.entries.List(f, p)
}
