// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// AuditStore appends and queries audit entries. Entries are append-only;
// no update or delete methods exist on purpose.
type AuditStore struct {
	db *sql.DB
}

// NewAuditStore creates a new AuditStore.
func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{db: db}
}

const auditColumns = `id, actor_id, action, resource_type, resource_id, changes, ip_address, user_agent, created_at`

func scanAudit(row interface{ Scan(...any) error }) (*models.AuditEntry, error) {
	e := &models.AuditEntry{}
	var changes []byte
	err := row.Scan(
		&e.ID, &e.ActorID, &e.Action, &e.ResourceType, &e.ResourceID,
		&changes, &e.IPAddress, &e.UserAgent, &e.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		e.Changes = changes
	}
	return e, nil
}

// Insert appends an audit entry and returns it with the generated ID.
func (s *AuditStore) Insert(e *models.AuditEntry) (*models.AuditEntry, error) {
	var changes any
	if len(e.Changes) > 0 {
		changes = []byte(e.Changes)
	}
	out, err := scanAudit(s.db.QueryRow(`
		INSERT INTO audit_entries (actor_id, action, resource_type, resource_id, changes, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+auditColumns+`
	`, e.ActorID, e.Action, e.ResourceType, e.ResourceID, changes,
		e.IPAddress, e.UserAgent))
	if err != nil {
		return nil, fmt.Errorf("insert audit entry: %w", err)
	}
	return out, nil
}

// AuditFilter narrows List results. Zero-value fields are ignored.
type AuditFilter struct {
	ActorID      uuid.UUID
	Action       models.AuditAction
	ResourceType string
	ResourceID   uuid.UUID
}

// List returns audit entries newest first, with the total count before
// pagination.
func (s *AuditStore) List(f AuditFilter, p Page) ([]models.AuditEntry, int, error) {
	where := "WHERE 1=1"
	var args []any
	if f.ActorID != uuid.Nil {
		args = append(args, f.ActorID)
		where += fmt.Sprintf(" AND actor_id = $%d", len(args))
	}
	if f.Action != "" {
		args = append(args, f.Action)
		where += fmt.Sprintf(" AND action = $%d", len(args))
	}
	if f.ResourceType != "" {
		args = append(args, f.ResourceType)
		where += fmt.Sprintf(" AND resource_type = $%d", len(args))
	}
	if f.ResourceID != uuid.Nil {
		args = append(args, f.ResourceID)
		where += fmt.Sprintf(" AND resource_id = $%d", len(args))
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM audit_entries `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT `+auditColumns+` FROM audit_entries %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var items []models.AuditEntry
	for rows.Next() {
		e, err := scanAudit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan audit entry: %w", err)
		}
		items = append(items, *e)
	}
	return items, total, rows.Err()
}
