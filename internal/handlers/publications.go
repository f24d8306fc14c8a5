package handlers

import (
	"net/http"
	"strconv"
	"time"

	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/store"
)

type publicationRequest struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Category    models.PublicationCategory `json:"category"`
	FileURL     string                     `json:"fileUrl"`
	FileSize    int64                      `json:"fileSize"`
	FileType    string                     `json:"fileType"`
	PublishYear int                        `json:"publishYear"`
	PublishedAt *time.Time                 `json:"publishedAt"`
}

func (req *publicationRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"fileUrl":     req.FileURL,
	})
	checkLen(errs, "title", req.Title, maxTitleLen)
	if !req.Category.Valid() {
		errs["category"] = "category is not a known publication category"
	}
	if req.PublishYear < minPublishYear || req.PublishYear > time.Now().Year()+1 {
		errs["publishYear"] = "publishYear is out of range"
	}
	return errs
}

// minPublishYear is the oldest accepted publication year.
const minPublishYear = 1960

// publicationUpdateRequest is the partial update payload; omitted
// fields keep their stored values.
type publicationUpdateRequest struct {
	Title       *string                     `json:"title"`
	Description *string                     `json:"description"`
	Category    *models.PublicationCategory `json:"category"`
	FileURL     *string                     `json:"fileUrl"`
	FileSize    *int64                      `json:"fileSize"`
	FileType    *string                     `json:"fileType"`
	PublishYear *int                        `json:"publishYear"`
	PublishedAt *time.Time                  `json:"publishedAt"`
}

func (req *publicationUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"title":       req.Title,
		"description": req.Description,
		"fileUrl":     req.FileURL,
	})
	checkLenPtr(errs, "title", req.Title, maxTitleLen)
	if req.Category != nil && !req.Category.Valid() {
		errs["category"] = "category is not a known publication category"
	}
	if req.PublishYear != nil && (*req.PublishYear < minPublishYear || *req.PublishYear > time.Now().Year()+1) {
		errs["publishYear"] = "publishYear is out of range"
	}
	return errs
}

// ListPublications returns publication metadata for the public site.
func (api *API) ListPublications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	f := store.PublicationFilter{
		Category: models.PublicationCategory(q.Get("category")),
		Year:     year,
		Search:   q.Get("search"),
	}

	p := pageFromQuery(r, 10)
	items, total, err := api.publications.List(f, p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.Publication{}
	}
	respondList(w, items, p, total)
}

// GetPublication returns one publication by id.
func (api *API) GetPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	pub, err := api.publications.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if pub == nil {
		respondNotFound(w, "Publication")
		return
	}
	respondData(w, http.StatusOK, pub)
}

// DownloadPublication counts a download and hands back the file URL.
// The file itself is served by object storage, not this API.
func (api *API) DownloadPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	pub, err := api.publications.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if pub == nil {
		respondNotFound(w, "Publication")
		return
	}

	if err := api.publications.IncrementDownloads(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"downloadUrl": pub.FileURL,
		"fileName":    pub.Title,
		"fileType":    pub.FileType,
	})
}

// CreatePublication creates a publication record.
func (api *API) CreatePublication(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req publicationRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	created, err := api.publications.Create(&models.Publication{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FileURL:     req.FileURL,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
		PublishYear: req.PublishYear,
		PublishedAt: publishedAt,
		CreatedBy:   ident.UserID,
	})
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "Publication", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdatePublication merges the provided fields into a publication
// record.
func (api *API) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req publicationUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	pub, err := api.publications.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if pub == nil {
		respondNotFound(w, "Publication")
		return
	}

	if req.Title != nil {
		pub.Title = *req.Title
	}
	if req.Description != nil {
		pub.Description = *req.Description
	}
	if req.Category != nil {
		pub.Category = *req.Category
	}
	if req.FileURL != nil {
		pub.FileURL = *req.FileURL
	}
	if req.FileSize != nil {
		pub.FileSize = *req.FileSize
	}
	if req.FileType != nil {
		pub.FileType = *req.FileType
	}
	if req.PublishYear != nil {
		pub.PublishYear = *req.PublishYear
	}
	if req.PublishedAt != nil {
		pub.PublishedAt = *req.PublishedAt
	}

	updated, err := api.publications.Update(pub)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Publication")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "Publication", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeletePublication removes a publication record.
func (api *API) DeletePublication(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	pub, err := api.publications.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if pub == nil {
		respondNotFound(w, "Publication")
		return
	}

	if err := api.publications.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "Publication", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Publication deleted")
}
