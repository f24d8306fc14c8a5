// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"regsite/internal/middleware"
	"regsite/internal/models"
)

type adRequest struct {
	Title   *string         `json:"title"`
	Type    models.AdType   `json:"type"`
	Content string          `json:"content"`
	Link    *string         `json:"link"`
	ColSpan int             `json:"colSpan"`
	RowSpan int             `json:"rowSpan"`
	Status  models.AdStatus `json:"status"`
	Order   int             `json:"order"`
}

func (req *adRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"content": req.Content,
	})
	if req.Type != "" && !req.Type.Valid() {
		errs["type"] = "Type must be one of text, image, video, youtube"
	}
	if req.Status != "" && !req.Status.Valid() {
		errs["status"] = "Status must be draft or published"
	}
	if req.ColSpan < 0 || req.ColSpan > 4 {
		errs["colSpan"] = "Column span must be between 1 and 4"
	}
	if req.RowSpan < 0 || req.RowSpan > 4 {
		errs["rowSpan"] = "Row span must be between 1 and 4"
	}
	return errs
}

// adUpdateRequest is the partial update payload; omitted fields keep
// their stored values.
type adUpdateRequest struct {
	Title   *string          `json:"title"`
	Type    *models.AdType   `json:"type"`
	Content *string          `json:"content"`
	Link    *string          `json:"link"`
	ColSpan *int             `json:"colSpan"`
	RowSpan *int             `json:"rowSpan"`
	Status  *models.AdStatus `json:"status"`
	Order   *int             `json:"order"`
}

func (req *adUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{"content": req.Content})
	if req.Type != nil && !req.Type.Valid() {
		errs["type"] = "Type must be one of text, image, video, youtube"
	}
	if req.Status != nil && !req.Status.Valid() {
		errs["status"] = "Status must be draft or published"
	}
	if req.ColSpan != nil && (*req.ColSpan < 1 || *req.ColSpan > 4) {
		errs["colSpan"] = "Column span must be between 1 and 4"
	}
	if req.RowSpan != nil && (*req.RowSpan < 1 || *req.RowSpan > 4) {
		errs["rowSpan"] = "Row span must be between 1 and 4"
	}
	return errs
}

// ListAds returns all ad tiles for the admin grid editor.
func (api *API) ListAds(w http.ResponseWriter, r *http.Request) {
	items, err := api.ads.List(false)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.Ad{}
	}
	respondData(w, http.StatusOK, items)
}

// ListPublishedAds returns published ad tiles for the public homepage.
func (api *API) ListPublishedAds(w http.ResponseWriter, r *http.Request) {
	items, err := api.ads.List(true)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.Ad{}
	}
	respondData(w, http.StatusOK, items)
}

// GetAd returns one ad by id.
func (api *API) GetAd(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	a, err := api.ads.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if a == nil {
		respondNotFound(w, "Ad")
		return
	}
	respondData(w, http.StatusOK, a)
}

// CreateAd adds a homepage ad tile. New ads default to a 1x1 draft.
func (api *API) CreateAd(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req adRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	a := &models.Ad{
		Title:    req.Title,
		Type:     req.Type,
		Content:  req.Content,
		Link:     req.Link,
		ColSpan:  req.ColSpan,
		RowSpan:  req.RowSpan,
		Status:   req.Status,
		Order:    req.Order,
		AuthorID: ident.UserID,
	}
	if a.Type == "" {
		a.Type = models.AdText
	}
	if a.Status == "" {
		a.Status = models.AdDraft
	}
	if a.ColSpan == 0 {
		a.ColSpan = 1
	}
	if a.RowSpan == 0 {
		a.RowSpan = 1
	}

	created, err := api.ads.Create(a)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "Ad", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdateAd merges the provided fields into an ad tile.
func (api *API) UpdateAd(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req adUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	a, err := api.ads.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if a == nil {
		respondNotFound(w, "Ad")
		return
	}

	if req.Title != nil {
		a.Title = req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Link != nil {
		a.Link = req.Link
	}
	if req.Order != nil {
		a.Order = *req.Order
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.ColSpan != nil {
		a.ColSpan = *req.ColSpan
	}
	if req.RowSpan != nil {
		a.RowSpan = *req.RowSpan
	}

	updated, err := api.ads.Update(a)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Ad")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "Ad", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteAd removes an ad tile.
func (api *API) DeleteAd(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	a, err := api.ads.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if a == nil {
		respondNotFound(w, "Ad")
		return
	}

	if err := api.ads.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "Ad", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Ad deleted")
}
