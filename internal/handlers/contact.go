// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"regsite/internal/middleware"
	"regsite/internal/models"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (req *contactRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	})
	if req.Email != "" && !validEmail(req.Email) {
		errs["email"] = "Email must be a valid email address"
	}
	checkLen(errs, "name", req.Name, maxNameLen)
	checkLen(errs, "subject", req.Subject, maxSubjectLen)
	checkLen(errs, "message", req.Message, maxMessageLen)
	return errs
}

type contactStatusRequest struct {
	Status models.ContactStatus `json:"status"`
}

// SubmitContact records a message from the public contact form. The
// sender IP is stored for abuse handling. No authentication required.
func (api *API) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	ip := middleware.ClientIP(r)
	c := &models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if ip != "" {
		c.IPAddress = &ip
	}

	if _, err := api.contacts.Create(c); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Thank you for contacting us. We will get back to you shortly.")
}

// ListContactSubmissions returns submissions newest first for triage.
func (api *API) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	p := pageFromQuery(r, 20)

	status := models.ContactStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		respondError(w, http.StatusBadRequest, "Status must be one of new, read, replied")
		return
	}

	items, total, err := api.contacts.List(status, p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.ContactSubmission{}
	}
	respondList(w, items, p, total)
}

// GetContactSubmission returns one submission by id.
func (api *API) GetContactSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	c, err := api.contacts.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if c == nil {
		respondNotFound(w, "Contact submission")
		return
	}
	respondData(w, http.StatusOK, c)
}

// UpdateContactStatus moves a submission through its triage states.
func (api *API) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req contactStatusRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if !req.Status.Valid() {
		respondValidation(w, map[string]string{"status": "Status must be one of new, read, replied"})
		return
	}

	updated, err := api.contacts.UpdateStatus(id, req.Status)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "Contact submission")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "ContactSubmission", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteContactSubmission removes a submission.
func (api *API) DeleteContactSubmission(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	c, err := api.contacts.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if c == nil {
		respondNotFound(w, "Contact submission")
		return
	}

	if err := api.contacts.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "ContactSubmission", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Contact submission deleted")
}
