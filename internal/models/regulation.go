package models

import (
	"time"

	"github.com/google/uuid"
)

// RegulationCategory is the fixed set of regulatory instrument categories.
type RegulationCategory string

const (
	RegPrePIA     RegulationCategory = "Pre P.I.A"
	RegPIA        RegulationCategory = "P.I.A"
	RegGazetted   RegulationCategory = "Gazzetted Regulations"
	RegActs       RegulationCategory = "Acts"
	RegGuidelines RegulationCategory = "Guidelines"
)

// Valid reports whether c is a known regulation category.
func (c RegulationCategory) Valid() bool {
	switch c {
	case RegPrePIA, RegPIA, RegGazetted, RegActs, RegGuidelines:
		return true
	}
	return false
}

// Regulation represents a regulatory document (act, guideline, gazetted
// regulation). Unlike news, regulations default to published on creation.
type Regulation struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Category      RegulationCategory `json:"category"`
	FileURL       string             `json:"fileUrl"`
	FileSize      *int64             `json:"fileSize,omitempty"`
	FileType      *string            `json:"fileType,omitempty"`
	EffectiveDate *time.Time         `json:"effectiveDate,omitempty"`
	Status        ContentStatus      `json:"status"`
	Tags          []string           `json:"tags"`
	CreatedBy     uuid.UUID          `json:"createdBy"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}
