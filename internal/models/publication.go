// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PublicationCategory is the fixed set of report categories.
type PublicationCategory string

const (
	PubAnnualReports      PublicationCategory = "Annual Reports"
	PubOperationalReports PublicationCategory = "Operational Reports"
	PubProductionStatus   PublicationCategory = "Production Status"
	PubGasReports         PublicationCategory = "Gas Reports"
	PubOilReports         PublicationCategory = "Oil Reports"
	PubAcreageReports     PublicationCategory = "Acreage Reports"
	PubUpstreamGaze       PublicationCategory = "Upstream Gaze Magazine"
)

// Valid reports whether c is a known publication category.
func (c PublicationCategory) Valid() bool {
	switch c {
	case PubAnnualReports, PubOperationalReports, PubProductionStatus,
		PubGasReports, PubOilReports, PubAcreageReports, PubUpstreamGaze:
		return true
	}
	return false
}

// Publication represents a downloadable report or magazine issue.
type Publication struct {
	ID            uuid.UUID           `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      PublicationCategory `json:"category"`
	FileURL       string              `json:"fileUrl"`
	FileSize      int64               `json:"fileSize"`
	FileType      string              `json:"fileType"`
	PublishYear   int                 `json:"publishYear"`
	PublishedAt   time.Time           `json:"publishedAt"`
	DownloadCount int64               `json:"downloadCount"`
	CreatedBy     uuid.UUID           `json:"createdBy"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
