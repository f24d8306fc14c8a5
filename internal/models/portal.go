// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Portal represents a link to an internal or external service portal
// shown on the public site, manually ordered.
type Portal struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	Icon         *string   `json:"icon,omitempty"`
	Category     string    `json:"category"`
	IsExternal   bool      `json:"isExternal"`
	RequiresAuth bool      `json:"requiresAuth"`
	Order        int       `json:"order"`
	IsActive     bool      `json:"isActive"`
	CreatedBy    uuid.UUID `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
