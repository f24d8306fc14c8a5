// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentStatus represents the publishing lifecycle of a content item.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// Valid reports whether s is a known content status.
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// News represents a news article on the public site. The view counter is
// incremented on anonymous reads of published articles.
type News struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Content       string        `json:"content"`
	Excerpt       string        `json:"excerpt"`
	FeaturedImage *string       `json:"featuredImage,omitempty"`
	Category      string        `json:"category"`
	Tags          []string      `json:"tags"`
	AuthorID      uuid.UUID     `json:"authorId"`
	Status        ContentStatus `json:"status"`
	PublishedAt   *time.Time    `json:"publishedAt,omitempty"`
	Views         int64         `json:"views"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// IsPublished returns true if the article is visible to anonymous callers.
func (n *News) IsPublished() bool {
	return n.Status == StatusPublished
}
