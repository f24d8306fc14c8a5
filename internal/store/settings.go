// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// SettingsStore manages the sitewide settings singleton. The table has a
// unique guard column so concurrent GetOrCreate calls converge on one row.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a new SettingsStore.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

const settingsColumns = `id, site_name, site_description, contact_email, contact_phone, address, social_media, footer_links, quick_links, logo, favicon, office_hours, last_updated_by, created_at, updated_at`

func scanSettings(row interface{ Scan(...any) error }) (*models.Settings, error) {
	st := &models.Settings{}
	var social, footer, quick []byte
	err := row.Scan(
		&st.ID, &st.SiteName, &st.SiteDescription, &st.ContactEmail,
		&st.ContactPhone, &st.Address, &social, &footer, &quick,
		&st.Logo, &st.Favicon, &st.OfficeHours, &st.LastUpdatedBy,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(social, &st.SocialMedia); err != nil {
		return nil, err
	}
	if err := scanJSON(footer, &st.FooterLinks); err != nil {
		return nil, err
	}
	if err := scanJSON(quick, &st.QuickLinks); err != nil {
		return nil, err
	}
	return st, nil
}

// GetOrCreate returns the settings row, inserting defaults on first use.
// The upsert on the singleton guard makes concurrent first calls safe.
func (s *SettingsStore) GetOrCreate() (*models.Settings, error) {
	st, err := scanSettings(s.db.QueryRow(`
		SELECT ` + settingsColumns + ` FROM settings LIMIT 1
	`))
	if err == nil {
		return st, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	st, err = scanSettings(s.db.QueryRow(`
		INSERT INTO settings (singleton) VALUES (TRUE)
		ON CONFLICT (singleton) DO UPDATE SET singleton = TRUE
		RETURNING ` + settingsColumns + `
	`))
	if err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}
	return st, nil
}

// Update replaces the settings document, stamping the editing user.
func (s *SettingsStore) Update(st *models.Settings, updatedBy uuid.UUID) (*models.Settings, error) {
	social, err := jsonValue(st.SocialMedia)
	if err != nil {
		return nil, err
	}
	footer, err := jsonValue(st.FooterLinks)
	if err != nil {
		return nil, err
	}
	quick, err := jsonValue(st.QuickLinks)
	if err != nil {
		return nil, err
	}

	out, err := scanSettings(s.db.QueryRow(`
		UPDATE settings
		SET site_name = $1, site_description = $2, contact_email = $3,
		    contact_phone = $4, address = $5, social_media = $6,
		    footer_links = $7, quick_links = $8, logo = $9, favicon = $10,
		    office_hours = $11, last_updated_by = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING `+settingsColumns+`
	`, st.SiteName, st.SiteDescription, st.ContactEmail, st.ContactPhone,
		st.Address, social, footer, quick, st.Logo, st.Favicon,
		st.OfficeHours, updatedBy, st.ID))
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return out, nil
}
