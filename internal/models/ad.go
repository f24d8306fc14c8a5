// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AdType identifies the content kind of an ad tile.
type AdType string

const (
	AdText    AdType = "text"
	AdImage   AdType = "image"
	AdVideo   AdType = "video"
	AdYouTube AdType = "youtube"
)

// Valid reports whether t is a known ad type.
func (t AdType) Valid() bool {
	switch t {
	case AdText, AdImage, AdVideo, AdYouTube:
		return true
	}
	return false
}

// AdStatus is the two-state lifecycle for ads.
type AdStatus string

const (
	AdDraft     AdStatus = "draft"
	AdPublished AdStatus = "published"
)

// Valid reports whether s is a known ad status.
func (s AdStatus) Valid() bool {
	return s == AdDraft || s == AdPublished
}

// Ad represents a promotional tile on the homepage grid. ColSpan and
// RowSpan control its footprint in the grid layout.
type Ad struct {
	ID        uuid.UUID `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Type      AdType    `json:"type"`
	Content   string    `json:"content"`
	Link      *string   `json:"link,omitempty"`
	ColSpan   int       `json:"colSpan"`
	RowSpan   int       `json:"rowSpan"`
	Status    AdStatus  `json:"status"`
	Order     int       `json:"order"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
