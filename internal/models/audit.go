// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditAction is the fixed verb set for audit entries.
type AuditAction string

const (
	AuditCreate    AuditAction = "create"
	AuditUpdate    AuditAction = "update"
	AuditDelete    AuditAction = "delete"
	AuditLogin     AuditAction = "login"
	AuditLogout    AuditAction = "logout"
	AuditPublish   AuditAction = "publish"
	AuditUnpublish AuditAction = "unpublish"
)

// Valid reports whether a is a known audit action.
func (a AuditAction) Valid() bool {
	switch a {
	case AuditCreate, AuditUpdate, AuditDelete, AuditLogin, AuditLogout,
		AuditPublish, AuditUnpublish:
		return true
	}
	return false
}

// AuditEntry is an immutable record of who did what to which resource.
// Entries are only ever appended; nothing in the system updates or
// deletes them. Changes holds the raw request payload of the mutation.
type AuditEntry struct {
	ID           uuid.UUID       `json:"id"`
	ActorID      uuid.UUID       `json:"actorId"`
	Action       AuditAction     `json:"action"`
	ResourceType string          `json:"resourceType"`
	ResourceID   *uuid.UUID      `json:"resourceId,omitempty"`
	Changes      json.RawMessage `json:"changes,omitempty"`
	IPAddress    *string         `json:"ipAddress,omitempty"`
	UserAgent    *string         `json:"userAgent,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}
