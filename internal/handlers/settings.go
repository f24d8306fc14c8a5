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

type settingsRequest struct {
	SiteName        string              `json:"siteName"`
	SiteDescription string              `json:"siteDescription"`
	ContactEmail    string              `json:"contactEmail"`
	ContactPhone    string              `json:"contactPhone"`
	Address         string              `json:"address"`
	SocialMedia     []models.SocialLink `json:"socialMedia"`
	FooterLinks     []models.QuickLink  `json:"footerLinks"`
	QuickLinks      []models.QuickLink  `json:"quickLinks"`
	Logo            *string             `json:"logo"`
	Favicon         *string             `json:"favicon"`
	OfficeHours     *string             `json:"officeHours"`
}

func (req *settingsRequest) validate() map[string]string {
	errs := map[string]string{}
	if req.ContactEmail != "" && !validEmail(req.ContactEmail) {
		errs["contactEmail"] = "Contact email must be a valid email address"
	}
	return errs
}

// GetSettings returns the sitewide settings document, creating the
// defaults row on first access. The response is cached in Valkey since
// every public page load reads it.
func (api *API) GetSettings(w http.ResponseWriter, r *http.Request) {
	if body, ok := api.respCache.Get(r.Context(), "settings"); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
		return
	}

	st, err := api.settings.GetOrCreate()
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if body, err := json.Marshal(envelope{Success: true, Data: st}); err == nil {
		api.respCache.Set(r.Context(), "settings", body)
	}
	respondData(w, http.StatusOK, st)
}

// UpdateSettings replaces the settings document and stamps the editor.
func (api *API) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req settingsRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	st, err := api.settings.GetOrCreate()
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	st.SiteName = req.SiteName
	st.SiteDescription = req.SiteDescription
	st.ContactEmail = req.ContactEmail
	st.ContactPhone = req.ContactPhone
	st.Address = req.Address
	st.SocialMedia = req.SocialMedia
	st.FooterLinks = req.FooterLinks
	st.QuickLinks = req.QuickLinks
	st.Logo = req.Logo
	st.Favicon = req.Favicon
	st.OfficeHours = req.OfficeHours

	updated, err := api.settings.Update(st, ident.UserID)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	api.respCache.Invalidate(r.Context(), "settings")

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "Settings", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}
