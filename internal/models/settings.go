// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLink is a social media profile reference in site settings.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// QuickLink is an ordered navigation link in site settings.
type QuickLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Settings is the sitewide configuration document. Exactly one row exists;
// it is always accessed through the store's GetOrCreate, never cached in a
// process-global variable.
type Settings struct {
	ID              uuid.UUID    `json:"id"`
	SiteName        string       `json:"siteName"`
	SiteDescription string       `json:"siteDescription"`
	ContactEmail    string       `json:"contactEmail"`
	ContactPhone    string       `json:"contactPhone"`
	Address         string       `json:"address"`
	SocialMedia     []SocialLink `json:"socialMedia"`
	FooterLinks     []QuickLink  `json:"footerLinks"`
	QuickLinks      []QuickLink  `json:"quickLinks"`
	Logo            *string      `json:"logo,omitempty"`
	Favicon         *string      `json:"favicon,omitempty"`
	OfficeHours     *string      `json:"officeHours,omitempty"`
	LastUpdatedBy   *uuid.UUID   `json:"lastUpdatedBy,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}
