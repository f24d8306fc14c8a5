// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"regsite/internal/models"
)

// PublishStamp decides the published_at value to persist for a content
// row. The timestamp is set exactly once, on the first transition to
// published; it survives later unpublish/republish cycles.
func PublishStamp(status models.ContentStatus, current *time.Time, now time.Time) *time.Time {
	if status == models.StatusPublished && current == nil {
		return &now
	}
	return current
}
