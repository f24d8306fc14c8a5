package models

import (
	"time"

	"github.com/google/uuid"
)

// SectionType identifies the rendering block of a page section.
type SectionType string

const (
	SectionText  SectionType = "text"
	SectionImage SectionType = "image"
	SectionVideo SectionType = "video"
	SectionList  SectionType = "list"
	SectionTable SectionType = "table"
)

// Valid reports whether t is a known section type.
func (t SectionType) Valid() bool {
	switch t {
	case SectionText, SectionImage, SectionVideo, SectionList, SectionTable:
		return true
	}
	return false
}

// PageSection is a typed content block within a static page. Sections are
// stored as a JSON document alongside the page body.
type PageSection struct {
	Type    SectionType `json:"type"`
	Heading *string     `json:"heading,omitempty"`
	Content string      `json:"content"`
	Order   int         `json:"order"`
}

// StaticPage represents a standalone site page identified by slug
// (about, leadership, history, and so on).
type StaticPage struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Content         string        `json:"content"`
	Sections        []PageSection `json:"sections"`
	MetaTitle       *string       `json:"metaTitle,omitempty"`
	MetaDescription *string       `json:"metaDescription,omitempty"`
	Template        string        `json:"template"`
	Order           int           `json:"order"`
	IsPublished     bool          `json:"isPublished"`
	LastEditedBy    uuid.UUID     `json:"lastEditedBy"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
