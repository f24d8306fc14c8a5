// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all site entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
// Lookups that find nothing return (nil, nil) rather than an error.
package store

import (
	"encoding/json"
	"fmt"
)

// Page is an offset/limit pagination request. Zero values are normalized
// to the given default limit and page 1.
type Page struct {
	Number int
	Limit  int
}

// Normalize clamps the page to valid bounds, applying defaultLimit when
// no limit was requested.
func (p Page) Normalize(defaultLimit int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	return p
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pages returns the total page count for the given filtered total.
func (p Page) Pages(total int) int {
	if total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// jsonValue marshals v for storage in a JSONB column. A nil slice is
// stored as an empty JSON array, not NULL.
func jsonValue(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	if string(data) == "null" {
		return []byte("[]"), nil
	}
	return data, nil
}

// scanJSON unmarshals a JSONB column into dest. NULL columns leave dest
// untouched.
func scanJSON(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}
