package handlers

import (
	"net/http"
	"time"

	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/store"
)

type regulationRequest struct {
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	Category      models.RegulationCategory `json:"category"`
	FileURL       string                    `json:"fileUrl"`
	FileSize      *int64                    `json:"fileSize"`
	FileType      *string                   `json:"fileType"`
	EffectiveDate *time.Time                `json:"effectiveDate"`
	Status        *models.ContentStatus     `json:"status"`
	Tags          []string                  `json:"tags"`
}

func (req *regulationRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"fileUrl":     req.FileURL,
	})
	checkLen(errs, "title", req.Title, maxTitleLen)
	if !req.Category.Valid() {
		errs["category"] = "category is not a known regulation category"
	}
	if req.Status != nil && !req.Status.Valid() {
		errs["status"] = "status must be draft, published or archived"
	}
	return errs
}

// regulationUpdateRequest is the partial update payload; omitted fields
// keep their stored values.
type regulationUpdateRequest struct {
	Title         *string                    `json:"title"`
	Description   *string                    `json:"description"`
	Category      *models.RegulationCategory `json:"category"`
	FileURL       *string                    `json:"fileUrl"`
	FileSize      *int64                     `json:"fileSize"`
	FileType      *string                    `json:"fileType"`
	EffectiveDate *time.Time                 `json:"effectiveDate"`
	Status        *models.ContentStatus      `json:"status"`
	Tags          []string                   `json:"tags"`
}

func (req *regulationUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"title":       req.Title,
		"description": req.Description,
		"fileUrl":     req.FileURL,
	})
	checkLenPtr(errs, "title", req.Title, maxTitleLen)
	if req.Category != nil && !req.Category.Valid() {
		errs["category"] = "category is not a known regulation category"
	}
	if req.Status != nil && !req.Status.Valid() {
		errs["status"] = "status must be draft, published or archived"
	}
	return errs
}

// ListRegulations returns regulatory documents. Anonymous callers only
// see published documents.
func (api *API) ListRegulations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.RegulationFilter{
		Category: models.RegulationCategory(q.Get("category")),
		Status:   models.ContentStatus(q.Get("status")),
		Search:   q.Get("search"),
	}
	if middleware.IdentityFromCtx(r.Context()) == nil {
		f.Status = models.StatusPublished
	}

	p := pageFromQuery(r, 10)
	items, total, err := api.regulations.List(f, p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.Regulation{}
	}
	respondList(w, items, p, total)
}

// GetRegulation returns one regulation by id, hiding unpublished
// documents from anonymous callers.
func (api *API) GetRegulation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	reg, err := api.regulations.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	anonymous := middleware.IdentityFromCtx(r.Context()) == nil
	if reg == nil || (anonymous && reg.Status != models.StatusPublished) {
		respondNotFound(w, "Regulation")
		return
	}
	respondData(w, http.StatusOK, reg)
}

// CreateRegulation creates a regulation. Unlike news, regulations
// default to published.
func (api *API) CreateRegulation(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req regulationRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	status := models.StatusPublished
	if req.Status != nil {
		status = *req.Status
	}

	created, err := api.regulations.Create(&models.Regulation{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		FileURL:       req.FileURL,
		FileSize:      req.FileSize,
		FileType:      req.FileType,
		EffectiveDate: req.EffectiveDate,
		Status:        status,
		Tags:          req.Tags,
		CreatedBy:     ident.UserID,
	})
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "Regulation", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdateRegulation merges the provided fields into a regulation.
func (api *API) UpdateRegulation(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req regulationUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	reg, err := api.regulations.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if reg == nil {
		respondNotFound(w, "Regulation")
		return
	}

	if req.Title != nil {
		reg.Title = *req.Title
	}
	if req.Description != nil {
		reg.Description = *req.Description
	}
	if req.Category != nil {
		reg.Category = *req.Category
	}
	if req.FileURL != nil {
		reg.FileURL = *req.FileURL
	}
	if req.FileSize != nil {
		reg.FileSize = req.FileSize
	}
	if req.FileType != nil {
		reg.FileType = req.FileType
	}
	if req.EffectiveDate != nil {
		reg.EffectiveDate = req.EffectiveDate
	}
	if req.Tags != nil {
		reg.Tags = req.Tags
	}
	if req.Status != nil {
		reg.Status = *req.Status
	}

	updated, err := api.regulations.Update(reg)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Regulation")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "Regulation", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteRegulation removes a regulation.
func (api *API) DeleteRegulation(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	reg, err := api.regulations.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if reg == nil {
		respondNotFound(w, "Regulation")
		return
	}

	if err := api.regulations.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "Regulation", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Regulation deleted")
}
