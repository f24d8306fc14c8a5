// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"regsite/internal/models"
	"regsite/internal/store"
)

type dashboardCounts struct {
	Users        int `json:"users"`
	News         int `json:"news"`
	Publications int `json:"publications"`
	Regulations  int `json:"regulations"`
	Media        int `json:"media"`
	Messages     int `json:"messages"`
	NewMessages  int `json:"newMessages"`
}

type dashboardStats struct {
	Counts         dashboardCounts     `json:"counts"`
	RecentActivity []models.AuditEntry `json:"recentActivity"`
}

// DashboardStats returns per-resource record counts and the latest
// audit entries for the admin dashboard. A failing count is logged and
// reported as zero so one broken table does not blank the whole page.
func (api *API) DashboardStats(w http.ResponseWriter, r *http.Request) {
	safeCount := func(name string, count func() (int, error)) int {
		n, err := count()
		if err != nil {
			slog.Error("dashboard count failed", "resource", name, "error", err)
			return 0
		}
		return n
	}

	counts := dashboardCounts{
		Users:        safeCount("users", api.users.Count),
		News:         safeCount("news", api.news.Count),
		Publications: safeCount("publications", api.publications.Count),
		Regulations:  safeCount("regulations", api.regulations.Count),
		Media:        safeCount("media", api.media.Count),
		Messages:     safeCount("messages", api.contacts.Count),
		NewMessages:  safeCount("newMessages", api.contacts.CountNew),
	}

	recent, _, err := api.trail.List(store.AuditFilter{}, store.Page{Number: 1, Limit: 10})
	if err != nil {
		slog.Error("dashboard recent activity failed", "error", err)
		recent = nil
	}
	if recent == nil {
		recent = []models.AuditEntry{}
	}

	respondData(w, http.StatusOK, dashboardStats{Counts: counts, RecentActivity: recent})
}
