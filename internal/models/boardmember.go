package models

import (
	"time"

	"github.com/google/uuid"
)

// BoardMember represents a member of the agency's governing board shown
// on the leadership page.
type BoardMember struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Image     string    `json:"image"`
	Bio       *string   `json:"bio,omitempty"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
