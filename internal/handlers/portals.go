// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"regsite/internal/middleware"
	"regsite/internal/models"
)

type portalRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	URL          string  `json:"url"`
	Icon         *string `json:"icon"`
	Category     string  `json:"category"`
	IsExternal   *bool   `json:"isExternal"`
	RequiresAuth *bool   `json:"requiresAuth"`
	Order        int     `json:"order"`
	IsActive     *bool   `json:"isActive"`
}

func (req *portalRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"url":         req.URL,
		"category":    req.Category,
	})
	checkLen(errs, "name", req.Name, maxNameLen)
	return errs
}

// portalUpdateRequest is the partial update payload; omitted fields
// keep their stored values.
type portalUpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	URL          *string `json:"url"`
	Icon         *string `json:"icon"`
	Category     *string `json:"category"`
	IsExternal   *bool   `json:"isExternal"`
	RequiresAuth *bool   `json:"requiresAuth"`
	Order        *int    `json:"order"`
	IsActive     *bool   `json:"isActive"`
}

func (req *portalUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"name":        req.Name,
		"description": req.Description,
		"url":         req.URL,
		"category":    req.Category,
	})
	checkLenPtr(errs, "name", req.Name, maxNameLen)
	return errs
}

// ListPortals returns service portal links in manual order. Anonymous
// callers only see active portals; those responses are cached in Valkey.
func (api *API) ListPortals(w http.ResponseWriter, r *http.Request) {
	anonymous := middleware.IdentityFromCtx(r.Context()) == nil
	category := r.URL.Query().Get("category")

	cacheKey := "portals:" + category
	if anonymous {
		if body, ok := api.respCache.Get(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	items, err := api.portals.List(category, anonymous)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.Portal{}
	}

	if anonymous {
		if body, err := json.Marshal(envelope{Success: true, Data: items}); err == nil {
			api.respCache.Set(r.Context(), cacheKey, body)
		}
	}
	respondData(w, http.StatusOK, items)
}

// GetPortal returns one portal by id.
func (api *API) GetPortal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, err := api.portals.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if p == nil {
		respondNotFound(w, "Portal")
		return
	}
	respondData(w, http.StatusOK, p)
}

// CreatePortal adds a portal link.
func (api *API) CreatePortal(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req portalRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	p := &models.Portal{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Icon:        req.Icon,
		Category:    req.Category,
		IsExternal:  true,
		IsActive:    true,
		Order:       req.Order,
		CreatedBy:   ident.UserID,
	}
	if req.IsExternal != nil {
		p.IsExternal = *req.IsExternal
	}
	if req.RequiresAuth != nil {
		p.RequiresAuth = *req.RequiresAuth
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	created, err := api.portals.Create(p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.respCache.Invalidate(r.Context(), "portals")

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "Portal", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdatePortal merges the provided fields into a portal link.
func (api *API) UpdatePortal(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req portalUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	p, err := api.portals.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if p == nil {
		respondNotFound(w, "Portal")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.URL != nil {
		p.URL = *req.URL
	}
	if req.Icon != nil {
		p.Icon = req.Icon
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Order != nil {
		p.Order = *req.Order
	}
	if req.IsExternal != nil {
		p.IsExternal = *req.IsExternal
	}
	if req.RequiresAuth != nil {
		p.RequiresAuth = *req.RequiresAuth
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	updated, err := api.portals.Update(p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Portal")
		return
	}
	api.respCache.Invalidate(r.Context(), "portals")

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "Portal", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeletePortal removes a portal link.
func (api *API) DeletePortal(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	p, err := api.portals.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if p == nil {
		respondNotFound(w, "Portal")
		return
	}

	if err := api.portals.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.respCache.Invalidate(r.Context(), "portals")

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "Portal", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Portal deleted")
}
