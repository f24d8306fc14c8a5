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

type boardMemberRequest struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Image    string  `json:"image"`
	Bio      *string `json:"bio"`
	Order    int     `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (req *boardMemberRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"name":     req.Name,
		"position": req.Position,
		"image":    req.Image,
	})
	checkLen(errs, "name", req.Name, maxNameLen)
	return errs
}

// boardMemberUpdateRequest is the partial update payload; omitted
// fields keep their stored values.
type boardMemberUpdateRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Image    *string `json:"image"`
	Bio      *string `json:"bio"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (req *boardMemberUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"name":     req.Name,
		"position": req.Position,
		"image":    req.Image,
	})
	checkLenPtr(errs, "name", req.Name, maxNameLen)
	return errs
}

// ListBoardMembers returns board members in manual order. Anonymous
// callers only see active members; those responses are cached in Valkey.
func (api *API) ListBoardMembers(w http.ResponseWriter, r *http.Request) {
	anonymous := middleware.IdentityFromCtx(r.Context()) == nil

	if anonymous {
		if body, ok := api.respCache.Get(r.Context(), "boardmembers"); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	items, err := api.boardMembers.List(anonymous)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.BoardMember{}
	}

	if anonymous {
		if body, err := json.Marshal(envelope{Success: true, Data: items}); err == nil {
			api.respCache.Set(r.Context(), "boardmembers", body)
		}
	}
	respondData(w, http.StatusOK, items)
}

// GetBoardMember returns one board member by id.
func (api *API) GetBoardMember(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	b, err := api.boardMembers.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if b == nil {
		respondNotFound(w, "Board member")
		return
	}
	respondData(w, http.StatusOK, b)
}

// CreateBoardMember adds a board member.
func (api *API) CreateBoardMember(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req boardMemberRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	b := &models.BoardMember{
		Name:     req.Name,
		Position: req.Position,
		Image:    req.Image,
		Bio:      req.Bio,
		Order:    req.Order,
		IsActive: true,
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	created, err := api.boardMembers.Create(b)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.respCache.Invalidate(r.Context(), "boardmembers")

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "BoardMember", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdateBoardMember merges the provided fields into a board member.
func (api *API) UpdateBoardMember(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req boardMemberUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	b, err := api.boardMembers.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if b == nil {
		respondNotFound(w, "Board member")
		return
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Position != nil {
		b.Position = *req.Position
	}
	if req.Image != nil {
		b.Image = *req.Image
	}
	if req.Bio != nil {
		b.Bio = req.Bio
	}
	if req.Order != nil {
		b.Order = *req.Order
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	updated, err := api.boardMembers.Update(b)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Board member")
		return
	}
	api.respCache.Invalidate(r.Context(), "boardmembers")

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "BoardMember", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteBoardMember removes a board member.
func (api *API) DeleteBoardMember(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	b, err := api.boardMembers.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if b == nil {
		respondNotFound(w, "Board member")
		return
	}

	if err := api.boardMembers.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.respCache.Invalidate(r.Context(), "boardmembers")

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "BoardMember", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Board member deleted")
}
