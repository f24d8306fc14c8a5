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

// MediaStore handles gallery item database operations.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, title, description, type, url, thumbnail_url, category, album, tags, uploaded_at, uploaded_by, created_at, updated_at`

func scanMedia(row interface{ Scan(...any) error }) (*models.Media, error) {
	m := &models.Media{}
	var tags []byte
	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Type, &m.URL, &m.ThumbnailURL,
		&m.Category, &m.Album, &tags, &m.UploadedAt, &m.UploadedBy,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(tags, &m.Tags); err != nil {
		return nil, err
	}
	return m, nil
}

// MediaFilter narrows List results. Zero-value fields are ignored.
type MediaFilter struct {
	Type     models.MediaType
	Category string
	Album    string
	Search   string
}

// List returns gallery items matching the filter, newest upload first,
// with the total count before pagination.
func (s *MediaStore) List(f MediaFilter, p Page) ([]models.Media, int, error) {
	where := "WHERE 1=1"
	var args []any
	if f.Type != "" {
		args = append(args, f.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Album != "" {
		args = append(args, f.Album)
		where += fmt.Sprintf(" AND album = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", n, n)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM media `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count media: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT `+mediaColumns+` FROM media %s
		ORDER BY uploaded_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, total, rows.Err()
}

// Albums returns the distinct album names in use, alphabetically.
func (s *MediaStore) Albums() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT album FROM media WHERE album IS NOT NULL ORDER BY album ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	var albums []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// FindByID retrieves a gallery item by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	m, err := scanMedia(s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create inserts a new gallery item and returns it with the generated ID.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	tags, err := jsonValue(m.Tags)
	if err != nil {
		return nil, err
	}
	out, err := scanMedia(s.db.QueryRow(`
		INSERT INTO media (title, description, type, url, thumbnail_url, category, album, tags, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+mediaColumns+`
	`, m.Title, m.Description, m.Type, m.URL, m.ThumbnailURL,
		m.Category, m.Album, tags, m.UploadedBy))
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return out, nil
}

// Update modifies an existing gallery item and returns the updated row.
// Returns nil if the item no longer exists.
func (s *MediaStore) Update(m *models.Media) (*models.Media, error) {
	tags, err := jsonValue(m.Tags)
	if err != nil {
		return nil, err
	}
	out, err := scanMedia(s.db.QueryRow(`
		UPDATE media
		SET title = $1, description = $2, type = $3, url = $4,
		    thumbnail_url = $5, category = $6, album = $7, tags = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING `+mediaColumns+`
	`, m.Title, m.Description, m.Type, m.URL, m.ThumbnailURL,
		m.Category, m.Album, tags, m.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update media: %w", err)
	}
	return out, nil
}

// Delete removes a gallery item.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

// Count returns the total number of gallery items.
func (s *MediaStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM media`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return n, nil
}
