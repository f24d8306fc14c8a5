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

type faqRequest struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	IsPublished *bool  `json:"isPublished"`
}

func (req *faqRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"question": req.Question,
		"answer":   req.Answer,
		"category": req.Category,
	})
	checkLen(errs, "question", req.Question, maxQuestionLen)
	checkLen(errs, "answer", req.Answer, maxAnswerLen)
	return errs
}

// faqUpdateRequest is the partial update payload; omitted fields keep
// their stored values.
type faqUpdateRequest struct {
	Question    *string `json:"question"`
	Answer      *string `json:"answer"`
	Category    *string `json:"category"`
	Order       *int    `json:"order"`
	IsPublished *bool   `json:"isPublished"`
}

func (req *faqUpdateRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"question": req.Question,
		"answer":   req.Answer,
		"category": req.Category,
	})
	checkLenPtr(errs, "question", req.Question, maxQuestionLen)
	checkLenPtr(errs, "answer", req.Answer, maxAnswerLen)
	return errs
}

// ListFAQs returns FAQ entries in manual order. Anonymous callers only
// see published entries; those responses are cached in Valkey.
func (api *API) ListFAQs(w http.ResponseWriter, r *http.Request) {
	anonymous := middleware.IdentityFromCtx(r.Context()) == nil
	category := r.URL.Query().Get("category")

	cacheKey := "faqs:" + category
	if anonymous {
		if body, ok := api.respCache.Get(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	items, err := api.faqs.List(category, anonymous)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.FAQ{}
	}

	if anonymous {
		if body, err := json.Marshal(envelope{Success: true, Data: items}); err == nil {
			api.respCache.Set(r.Context(), cacheKey, body)
		}
	}
	respondData(w, http.StatusOK, items)
}

// GetFAQ returns one FAQ entry by id.
func (api *API) GetFAQ(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	f, err := api.faqs.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if f == nil {
		respondNotFound(w, "FAQ")
		return
	}
	respondData(w, http.StatusOK, f)
}

// CreateFAQ adds an FAQ entry.
func (api *API) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req faqRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	f := &models.FAQ{
		Question:    req.Question,
		Answer:      req.Answer,
		Category:    req.Category,
		Order:       req.Order,
		IsPublished: true,
		CreatedBy:   ident.UserID,
	}
	if req.IsPublished != nil {
		f.IsPublished = *req.IsPublished
	}

	created, err := api.faqs.Create(f)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.respCache.Invalidate(r.Context(), "faqs")

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "FAQ", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdateFAQ merges the provided fields into an FAQ entry.
func (api *API) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req faqUpdateRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	f, err := api.faqs.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if f == nil {
		respondNotFound(w, "FAQ")
		return
	}

	if req.Question != nil {
		f.Question = *req.Question
	}
	if req.Answer != nil {
		f.Answer = *req.Answer
	}
	if req.Category != nil {
		f.Category = *req.Category
	}
	if req.Order != nil {
		f.Order = *req.Order
	}
	if req.IsPublished != nil {
		f.IsPublished = *req.IsPublished
	}

	updated, err := api.faqs.Update(f)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "FAQ")
		return
	}
	api.respCache.Invalidate(r.Context(), "faqs")

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "FAQ", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteFAQ removes an FAQ entry.
func (api *API) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	f, err := api.faqs.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if f == nil {
		respondNotFound(w, "FAQ")
		return
	}

	if err := api.faqs.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.respCache.Invalidate(r.Context(), "faqs")

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "FAQ", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "FAQ deleted")
}
