package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/slug"
)

type pageRequest struct {
	Title           string               `json:"title"`
	Slug            string               `json:"slug"`
	Content         string               `json:"content"`
	Sections        []models.PageSection `json:"sections"`
	MetaTitle       *string              `json:"metaTitle"`
	MetaDescription *string              `json:"metaDescription"`
	Template        string               `json:"template"`
	Order           int                  `json:"order"`
	IsPublished     *bool                `json:"isPublished"`
}

func (req *pageRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{"title": req.Title})
	checkLen(errs, "title", req.Title, maxTitleLen)
	checkLen(errs, "content", req.Content, maxBodyLen)
	for _, s := range req.Sections {
		if !s.Type.Valid() {
			errs["sections"] = "section type must be text, image, video, list or table"
			break
		}
	}
	return errs
}

// pageUpdateRequest is the partial update payload; omitted fields are
// left untouched.
type pageUpdateRequest struct {
	Title           *string              `json:"title"`
	Slug            *string              `json:"slug"`
	Content         *string              `json:"content"`
	Sections        []models.PageSection `json:"sections"`
	MetaTitle       *string              `json:"metaTitle"`
	MetaDescription *string              `json:"metaDescription"`
	Template        *string              `json:"template"`
	Order           *int                 `json:"order"`
	IsPublished     *bool                `json:"isPublished"`
}

func (req *pageUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{"title": req.Title})
	checkLenPtr(errs, "title", req.Title, maxTitleLen)
	checkLenPtr(errs, "content", req.Content, maxBodyLen)
	for _, s := range req.Sections {
		if !s.Type.Valid() {
			errs["sections"] = "section type must be text, image, video, list or table"
			break
		}
	}
	return errs
}

// ListPages returns static pages in manual order. Anonymous callers only
// see published pages.
func (api *API) ListPages(w http.ResponseWriter, r *http.Request) {
	anonymous := middleware.IdentityFromCtx(r.Context()) == nil
	items, err := api.pages.List(anonymous)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.StaticPage{}
	}
	respondData(w, http.StatusOK, items)
}

// GetPageBySlug returns one page by slug, hiding drafts from anonymous
// callers.
func (api *API) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := api.pages.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.servePage(w, r, p)
}

// GetPageByID returns one page by UUID with the same visibility rules.
func (api *API) GetPageByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, err := api.pages.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.servePage(w, r, p)
}

func (api *API) servePage(w http.ResponseWriter, r *http.Request, p *models.StaticPage) {
	anonymous := middleware.IdentityFromCtx(r.Context()) == nil
	if p == nil || (anonymous && !p.IsPublished) {
		respondNotFound(w, "Page")
		return
	}
	respondData(w, http.StatusOK, p)
}

// CreatePage creates a static page. Slug rules match news: derived from
// the title when absent, collisions are a 400.
func (api *API) CreatePage(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req pageRequest
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
	if taken, err := api.pageSlugTaken(s, uuid.Nil); err != nil {
		api.respondInternal(w, r, err)
		return
	} else if taken {
		respondError(w, http.StatusBadRequest, "A page with this slug already exists")
		return
	}

	template := req.Template
	if template == "" {
		template = "default"
	}
	published := false
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	created, err := api.pages.Create(&models.StaticPage{
		Title:           req.Title,
		Slug:            s,
		Content:         req.Content,
		Sections:        req.Sections,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Template:        template,
		Order:           req.Order,
		IsPublished:     published,
		LastEditedBy:    ident.UserID,
	})
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "Page", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdatePage merges the provided fields into a static page, stamping
// the editor.
func (api *API) UpdatePage(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req pageUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	p, err := api.pages.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if p == nil {
		respondNotFound(w, "Page")
		return
	}

	s := p.Slug
	switch {
	case req.Slug != nil && strings.TrimSpace(*req.Slug) != "":
		s = *req.Slug
	case req.Title != nil:
		s = slug.Generate(*req.Title)
	}
	if s != p.Slug {
		if taken, err := api.pageSlugTaken(s, p.ID); err != nil {
			api.respondInternal(w, r, err)
			return
		} else if taken {
			respondError(w, http.StatusBadRequest, "A page with this slug already exists")
			return
		}
	}

	p.Slug = s
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Sections != nil {
		p.Sections = req.Sections
	}
	if req.MetaTitle != nil {
		p.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		p.MetaDescription = req.MetaDescription
	}
	if req.Template != nil && *req.Template != "" {
		p.Template = *req.Template
	}
	if req.Order != nil {
		p.Order = *req.Order
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	p.LastEditedBy = ident.UserID

	updated, err := api.pages.Update(p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Page")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "Page", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeletePage removes a static page.
func (api *API) DeletePage(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	p, err := api.pages.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if p == nil {
		respondNotFound(w, "Page")
		return
	}

	if err := api.pages.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "Page", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Page deleted")
}

// pageSlugTaken reports whether another page already owns slug.
func (api *API) pageSlugTaken(s string, self uuid.UUID) (bool, error) {
	existing, err := api.pages.FindBySlug(s)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != self, nil
}
