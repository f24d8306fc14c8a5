// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/slug"
	"regsite/internal/store"
)

// newsRequest is the create payload for articles.
type newsRequest struct {
	Title         string                `json:"title"`
	Slug          string                `json:"slug"`
	Content       string                `json:"content"`
	Excerpt       string                `json:"excerpt"`
	FeaturedImage *string               `json:"featuredImage"`
	Category      string                `json:"category"`
	Tags          []string              `json:"tags"`
	Status        *models.ContentStatus `json:"status"`
}

func (req *newsRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"title":    req.Title,
		"content":  req.Content,
		"category": req.Category,
	})
	checkLen(errs, "title", req.Title, maxTitleLen)
	checkLen(errs, "excerpt", req.Excerpt, maxExcerptLen)
	checkLen(errs, "content", req.Content, maxBodyLen)
	if req.Status != nil && !req.Status.Valid() {
		errs["status"] = "status must be draft, published or archived"
	}
	return errs
}

// newsUpdateRequest is the partial update payload. Only fields present
// in the body are validated and merged into the stored article.
type newsUpdateRequest struct {
	Title         *string               `json:"title"`
	Slug          *string               `json:"slug"`
	Content       *string               `json:"content"`
	Excerpt       *string               `json:"excerpt"`
	FeaturedImage *string               `json:"featuredImage"`
	Category      *string               `json:"category"`
	Tags          []string              `json:"tags"`
	Status        *models.ContentStatus `json:"status"`
}

func (req *newsUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"title":    req.Title,
		"content":  req.Content,
		"category": req.Category,
	})
	checkLenPtr(errs, "title", req.Title, maxTitleLen)
	checkLenPtr(errs, "excerpt", req.Excerpt, maxExcerptLen)
	checkLenPtr(errs, "content", req.Content, maxBodyLen)
	if req.Status != nil && !req.Status.Valid() {
		errs["status"] = "status must be draft, published or archived"
	}
	return errs
}

// ListNews returns articles matching the query filters. Anonymous
// callers only ever see published articles, whatever filters they send.
func (api *API) ListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.NewsFilter{
		Status:   models.ContentStatus(q.Get("status")),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
	}
	if middleware.IdentityFromCtx(r.Context()) == nil {
		f.Status = models.StatusPublished
	}

	p := pageFromQuery(r, 10)
	items, total, err := api.news.List(f, p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.News{}
	}
	respondList(w, items, p, total)
}

// GetNewsBySlug returns one article by slug. Drafts and archived
// articles are hidden from anonymous callers; an anonymous read of a
// published article bumps the view counter without blocking the response.
func (api *API) GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	n, err := api.news.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.serveNews(w, r, n)
}

// GetNewsByID returns one article by UUID, with the same visibility and
// view-count rules as GetNewsBySlug.
func (api *API) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	n, err := api.news.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.serveNews(w, r, n)
}

func (api *API) serveNews(w http.ResponseWriter, r *http.Request, n *models.News) {
	anonymous := middleware.IdentityFromCtx(r.Context()) == nil
	if n == nil || (anonymous && !n.IsPublished()) {
		respondNotFound(w, "News article")
		return
	}

	if anonymous {
		// Fire and forget: the read must neither wait on the counter
		// nor fail if it errors.
		id := n.ID
		go func() {
			if err := api.news.IncrementViews(id); err != nil {
				slog.Warn("view count increment failed", "id", id, "error", err)
			}
		}()
		n.Views++
	}

	respondData(w, http.StatusOK, n)
}

// CreateNews creates an article. The slug is derived from the title when
// not supplied; a colliding slug is a conflict, reported as 400.
func (api *API) CreateNews(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req newsRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	s := req.Slug
	if strings.TrimSpace(s) == "" {
		s = slug.Generate(req.Title)
	}
	if taken, err := api.newsSlugTaken(s, uuid.Nil); err != nil {
		api.respondInternal(w, r, err)
		return
	} else if taken {
		respondError(w, http.StatusBadRequest, "An article with this slug already exists")
		return
	}

	status := models.StatusDraft
	if req.Status != nil {
		status = *req.Status
	}

	n := &models.News{
		Title:         req.Title,
		Slug:          s,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		AuthorID:      ident.UserID,
		Status:        status,
	}
	created, err := api.news.Create(n)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "News", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdateNews merges the provided fields into an article; omitted fields
// keep their stored values. Publishing for the first time stamps
// publishedAt; later edits never move it.
func (api *API) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req newsUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	n, err := api.news.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if n == nil {
		respondNotFound(w, "News article")
		return
	}

	// The slug only moves when the caller sends one, or re-derives when
	// the title changes without an explicit slug.
	s := n.Slug
	switch {
	case req.Slug != nil && strings.TrimSpace(*req.Slug) != "":
		s = *req.Slug
	case req.Title != nil:
		s = slug.Generate(*req.Title)
	}
	if s != n.Slug {
		if taken, err := api.newsSlugTaken(s, n.ID); err != nil {
			api.respondInternal(w, r, err)
			return
		} else if taken {
			respondError(w, http.StatusBadRequest, "An article with this slug already exists")
			return
		}
	}

	n.Slug = s
	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	if req.Excerpt != nil {
		n.Excerpt = *req.Excerpt
	}
	if req.FeaturedImage != nil {
		n.FeaturedImage = req.FeaturedImage
	}
	if req.Category != nil {
		n.Category = *req.Category
	}
	if req.Tags != nil {
		n.Tags = req.Tags
	}
	if req.Status != nil {
		n.Status = *req.Status
	}

	updated, err := api.news.Update(n)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "News article")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "News", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteNews removes an article.
func (api *API) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	n, err := api.news.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if n == nil {
		respondNotFound(w, "News article")
		return
	}

	if err := api.news.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "News", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "News article deleted")
}

// newsSlugTaken reports whether another article already owns slug.
func (api *API) newsSlugTaken(s string, self uuid.UUID) (bool, error) {
	existing, err := api.news.FindBySlug(s)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != self, nil
}
