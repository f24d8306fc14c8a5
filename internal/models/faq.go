package models

import (
	"time"

	"github.com/google/uuid"
)

// FAQ represents a question/answer pair grouped by category and manually
// ordered within it.
type FAQ struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Category    string    `json:"category"`
	Order       int       `json:"order"`
	IsPublished bool      `json:"isPublished"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
