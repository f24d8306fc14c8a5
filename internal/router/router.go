// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// agency site API. It organizes routes into public and admin groups
// with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"regsite/internal/config"
	"regsite/internal/handlers"
	"regsite/internal/middleware"
	"regsite/internal/obs"
	"regsite/internal/rbac"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cfg *config.Config, gate *middleware.Gate, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(obs.Instrument)

	// Brute-force and spam protection for the unauthenticated endpoints.
	loginLimiter := middleware.NewRateLimiter(10, 5)
	contactLimiter := middleware.NewRateLimiter(5, 3)

	r.Get("/metrics", obs.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler)

		// Auth
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Limit).Post("/login", api.Login)
			r.Post("/refresh", api.Refresh)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.Post("/logout", api.Logout)
				r.Get("/me", api.Me)
				r.Put("/change-password", api.ChangePassword)
			})
		})

		// News
		r.Route("/news", func(r chi.Router) {
			r.With(gate.OptionalAuth).Get("/", api.ListNews)
			r.With(gate.OptionalAuth).Get("/id/{id}", api.GetNewsByID)
			r.With(gate.OptionalAuth).Get("/{slug}", api.GetNewsBySlug)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpNewsWrite)).Post("/", api.CreateNews)
				r.With(gate.Authorize(rbac.OpNewsWrite)).Put("/{id}", api.UpdateNews)
				r.With(gate.Authorize(rbac.OpNewsDelete)).Delete("/{id}", api.DeleteNews)
			})
		})

		// Publications
		r.Route("/publications", func(r chi.Router) {
			r.Get("/", api.ListPublications)
			r.Get("/{id}", api.GetPublication)
			r.Get("/{id}/download", api.DownloadPublication)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpPublicationsWrite)).Post("/", api.CreatePublication)
				r.With(gate.Authorize(rbac.OpPublicationsWrite)).Put("/{id}", api.UpdatePublication)
				r.With(gate.Authorize(rbac.OpPublicationsDelete)).Delete("/{id}", api.DeletePublication)
			})
		})

		// Regulations
		r.Route("/regulations", func(r chi.Router) {
			r.With(gate.OptionalAuth).Get("/", api.ListRegulations)
			r.With(gate.OptionalAuth).Get("/{id}", api.GetRegulation)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpRegulationsWrite)).Post("/", api.CreateRegulation)
				r.With(gate.Authorize(rbac.OpRegulationsWrite)).Put("/{id}", api.UpdateRegulation)
				r.With(gate.Authorize(rbac.OpRegulationsDelete)).Delete("/{id}", api.DeleteRegulation)
			})
		})

		// Media galleries
		r.Route("/media", func(r chi.Router) {
			r.Get("/", api.ListMedia)
			r.Get("/albums", api.ListAlbums)
			r.Get("/{id}", api.GetMedia)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpMediaWrite)).Post("/", api.CreateMedia)
				r.With(gate.Authorize(rbac.OpMediaWrite)).Put("/{id}", api.UpdateMedia)
				r.With(gate.Authorize(rbac.OpMediaDelete)).Delete("/{id}", api.DeleteMedia)
			})
		})

		// Static pages
		r.Route("/pages", func(r chi.Router) {
			r.With(gate.OptionalAuth).Get("/", api.ListPages)
			r.With(gate.OptionalAuth).Get("/id/{id}", api.GetPageByID)
			r.With(gate.OptionalAuth).Get("/{slug}", api.GetPageBySlug)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpPagesWrite)).Post("/", api.CreatePage)
				r.With(gate.Authorize(rbac.OpPagesWrite)).Put("/{id}", api.UpdatePage)
				r.With(gate.Authorize(rbac.OpPagesDelete)).Delete("/{id}", api.DeletePage)
			})
		})

		// Service portals
		r.Route("/portals", func(r chi.Router) {
			r.With(gate.OptionalAuth).Get("/", api.ListPortals)
			r.Get("/{id}", api.GetPortal)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpPortalsWrite)).Post("/", api.CreatePortal)
				r.With(gate.Authorize(rbac.OpPortalsWrite)).Put("/{id}", api.UpdatePortal)
				r.With(gate.Authorize(rbac.OpPortalsDelete)).Delete("/{id}", api.DeletePortal)
			})
		})

		// FAQs
		r.Route("/faqs", func(r chi.Router) {
			r.With(gate.OptionalAuth).Get("/", api.ListFAQs)
			r.Get("/{id}", api.GetFAQ)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpFAQsWrite)).Post("/", api.CreateFAQ)
				r.With(gate.Authorize(rbac.OpFAQsWrite)).Put("/{id}", api.UpdateFAQ)
				r.With(gate.Authorize(rbac.OpFAQsDelete)).Delete("/{id}", api.DeleteFAQ)
			})
		})

		// Board members
		r.Route("/board-members", func(r chi.Router) {
			r.With(gate.OptionalAuth).Get("/", api.ListBoardMembers)
			r.Get("/{id}", api.GetBoardMember)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpBoardMembersWrite)).Post("/", api.CreateBoardMember)
				r.With(gate.Authorize(rbac.OpBoardMembersWrite)).Put("/{id}", api.UpdateBoardMember)
				r.With(gate.Authorize(rbac.OpBoardMembersDelete)).Delete("/{id}", api.DeleteBoardMember)
			})
		})

		// Homepage ads
		r.Route("/ads", func(r chi.Router) {
			r.Get("/published", api.ListPublishedAds)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpAdsWrite)).Get("/", api.ListAds)
				r.With(gate.Authorize(rbac.OpAdsWrite)).Get("/{id}", api.GetAd)
				r.With(gate.Authorize(rbac.OpAdsWrite)).Post("/", api.CreateAd)
				r.With(gate.Authorize(rbac.OpAdsWrite)).Put("/{id}", api.UpdateAd)
				r.With(gate.Authorize(rbac.OpAdsDelete)).Delete("/{id}", api.DeleteAd)
			})
		})

		// Site settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", api.GetSettings)
			r.With(gate.Authenticate, gate.Authorize(rbac.OpSettingsWrite)).Put("/", api.UpdateSettings)
		})

		// Contact form and triage
		r.Route("/contact", func(r chi.Router) {
			r.With(contactLimiter.Limit).Post("/", api.SubmitContact)
			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.With(gate.Authorize(rbac.OpContactsRead)).Get("/", api.ListContactSubmissions)
				r.With(gate.Authorize(rbac.OpContactsRead)).Get("/{id}", api.GetContactSubmission)
				r.With(gate.Authorize(rbac.OpContactsWrite)).Put("/{id}/status", api.UpdateContactStatus)
				r.With(gate.Authorize(rbac.OpContactsWrite)).Delete("/{id}", api.DeleteContactSubmission)
			})
		})

		// User administration
		r.Route("/users", func(r chi.Router) {
			r.Use(gate.Authenticate)
			r.With(gate.Authorize(rbac.OpUsersRead)).Get("/", api.ListUsers)
			r.With(gate.Authorize(rbac.OpUsersRead)).Get("/{id}", api.GetUser)
			r.With(gate.Authorize(rbac.OpUsersCreate)).Post("/", api.CreateUser)
			r.With(gate.Authorize(rbac.OpUsersUpdate)).Put("/{id}", api.UpdateUser)
			r.With(gate.Authorize(rbac.OpUsersDelete)).Delete("/{id}", api.DeleteUser)
		})

		// File upload, open to any authenticated role.
		r.With(gate.Authenticate).Post("/upload", api.Upload)

		// AI assistant for the public chat widget.
		r.Post("/ai/chat", api.Chat)

		// Admin dashboard and audit trail
		r.With(gate.Authenticate, gate.Authorize(rbac.OpDashboardRead)).Get("/dashboard/stats", api.DashboardStats)
		r.With(gate.Authenticate, gate.Authorize(rbac.OpAuditRead)).Get("/audit", api.ListAuditEntries)

		// Static homepage configuration
		r.Get("/config/home", api.HomeConfig)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
