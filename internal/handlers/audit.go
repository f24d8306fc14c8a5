// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"regsite/internal/models"
	"regsite/internal/store"
)

// ListAuditEntries returns the audit trail newest first. Entries can be
// narrowed by actor, action or resource through query parameters.
func (api *API) ListAuditEntries(w http.ResponseWriter, r *http.Request) {
	p := pageFromQuery(r, 20)
	q := r.URL.Query()

	var f store.AuditFilter
	if raw := q.Get("actorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid actor id")
			return
		}
		f.ActorID = id
	}
	if raw := q.Get("resourceId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid resource id")
			return
		}
		f.ResourceID = id
	}
	f.Action = models.AuditAction(q.Get("action"))
	if f.Action != "" && !f.Action.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown audit action")
		return
	}
	f.ResourceType = q.Get("resourceType")

	items, total, err := api.trail.List(f, p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.AuditEntry{}
	}
	respondList(w, items, p, total)
}
