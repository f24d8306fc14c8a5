package handlers

import (
	"net/http"

	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/store"
)

type mediaRequest struct {
	Title        string           `json:"title"`
	Description  *string          `json:"description"`
	Type         models.MediaType `json:"type"`
	URL          string           `json:"url"`
	ThumbnailURL *string          `json:"thumbnailUrl"`
	Category     *string          `json:"category"`
	Album        *string          `json:"album"`
	Tags         []string         `json:"tags"`
}

func (req *mediaRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"title": req.Title,
		"url":   req.URL,
	})
	checkLen(errs, "title", req.Title, maxTitleLen)
	if !req.Type.Valid() {
		errs["type"] = "type must be photo or video"
	}
	return errs
}

// mediaUpdateRequest is the partial update payload; omitted fields keep
// their stored values.
type mediaUpdateRequest struct {
	Title        *string           `json:"title"`
	Description  *string           `json:"description"`
	Type         *models.MediaType `json:"type"`
	URL          *string           `json:"url"`
	ThumbnailURL *string           `json:"thumbnailUrl"`
	Category     *string           `json:"category"`
	Album        *string           `json:"album"`
	Tags         []string          `json:"tags"`
}

func (req *mediaUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"title": req.Title,
		"url":   req.URL,
	})
	checkLenPtr(errs, "title", req.Title, maxTitleLen)
	if req.Type != nil && !req.Type.Valid() {
		errs["type"] = "type must be photo or video"
	}
	return errs
}

// ListMedia returns gallery items matching the query filters.
func (api *API) ListMedia(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.MediaFilter{
		Type:     models.MediaType(q.Get("type")),
		Category: q.Get("category"),
		Album:    q.Get("album"),
		Search:   q.Get("search"),
	}

	p := pageFromQuery(r, 20)
	items, total, err := api.media.List(f, p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.Media{}
	}
	respondList(w, items, p, total)
}

// ListAlbums returns the distinct album names in use.
func (api *API) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := api.media.Albums()
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if albums == nil {
		albums = []string{}
	}
	respondData(w, http.StatusOK, albums)
}

// GetMedia returns one gallery item by id.
func (api *API) GetMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	m, err := api.media.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if m == nil {
		respondNotFound(w, "Media item")
		return
	}
	respondData(w, http.StatusOK, m)
}

// CreateMedia adds a gallery item referencing an already uploaded file.
func (api *API) CreateMedia(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req mediaRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	created, err := api.media.Create(&models.Media{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Album:        req.Album,
		Tags:         req.Tags,
		UploadedBy:   ident.UserID,
	})
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "Media", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdateMedia merges the provided fields into a gallery item.
func (api *API) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req mediaUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	m, err := api.media.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if m == nil {
		respondNotFound(w, "Media item")
		return
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.Type != nil {
		m.Type = *req.Type
	}
	if req.URL != nil {
		m.URL = *req.URL
	}
	if req.ThumbnailURL != nil {
		m.ThumbnailURL = req.ThumbnailURL
	}
	if req.Category != nil {
		m.Category = req.Category
	}
	if req.Album != nil {
		m.Album = req.Album
	}
	if req.Tags != nil {
		m.Tags = req.Tags
	}

	updated, err := api.media.Update(m)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Media item")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "Media", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteMedia removes a gallery item and best-effort deletes the backing
// object from storage.
func (api *API) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	m, err := api.media.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if m == nil {
		respondNotFound(w, "Media item")
		return
	}

	if err := api.media.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	// Removing the stored file is best effort; a stale object must not
	// fail the delete.
	if api.storageClient != nil {
		if key, ok := api.storageClient.ExtractKey(m.URL); ok {
			_ = api.storageClient.Delete(r.Context(), key)
		}
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "Media", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Media item deleted")
}
