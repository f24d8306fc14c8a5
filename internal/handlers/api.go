// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public site API and
// its admin surface. Handlers are grouped by resource and receive their
// dependencies through the API struct.
package handlers

import (
	"regsite/internal/ai"
	"regsite/internal/audit"
	"regsite/internal/cache"
	"regsite/internal/config"
	"regsite/internal/storage"
	"regsite/internal/store"
	"regsite/internal/token"
)

// API groups all HTTP handlers and their dependencies.
type API struct {
	cfg    *config.Config
	tokens *token.Service
	trail  *audit.Recorder

	users        *store.UserStore
	news         *store.NewsStore
	publications *store.PublicationStore
	regulations  *store.RegulationStore
	media        *store.MediaStore
	pages        *store.PageStore
	portals      *store.PortalStore
	faqs         *store.FAQStore
	boardMembers *store.BoardMemberStore
	ads          *store.AdStore
	settings     *store.SettingsStore
	contacts     *store.ContactStore

	storageClient *storage.Client
	respCache     *cache.ResponseCache
	assistant     *ai.Assistant
}

// Stores bundles every store the API needs, keeping NewAPI readable.
type Stores struct {
	Users        *store.UserStore
	News         *store.NewsStore
	Publications *store.PublicationStore
	Regulations  *store.RegulationStore
	Media        *store.MediaStore
	Pages        *store.PageStore
	Portals      *store.PortalStore
	FAQs         *store.FAQStore
	BoardMembers *store.BoardMemberStore
	Ads          *store.AdStore
	Settings     *store.SettingsStore
	Contacts     *store.ContactStore
}

// NewAPI creates the handler group with the given dependencies.
// storageClient, respCache and assistant may be nil when the matching
// service is not configured.
func NewAPI(cfg *config.Config, tokens *token.Service, trail *audit.Recorder, s Stores, storageClient *storage.Client, respCache *cache.ResponseCache, assistant *ai.Assistant) *API {
	return &API{
		cfg:           cfg,
		tokens:        tokens,
		trail:         trail,
		users:         s.Users,
		news:          s.News,
		publications:  s.Publications,
		regulations:   s.Regulations,
		media:         s.Media,
		pages:         s.Pages,
		portals:       s.Portals,
		faqs:          s.FAQs,
		boardMembers:  s.BoardMembers,
		ads:           s.Ads,
		settings:      s.Settings,
		contacts:      s.Contacts,
		storageClient: storageClient,
		respCache:     respCache,
		assistant:     assistant,
	}
}
