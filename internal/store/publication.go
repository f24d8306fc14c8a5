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

// PublicationStore handles downloadable report database operations.
type PublicationStore struct {
	db *sql.DB
}

// NewPublicationStore creates a new PublicationStore.
func NewPublicationStore(db *sql.DB) *PublicationStore {
	return &PublicationStore{db: db}
}

const publicationColumns = `id, title, description, category, file_url, file_size, file_type, publish_year, published_at, download_count, created_by, created_at, updated_at`

func scanPublication(row interface{ Scan(...any) error }) (*models.Publication, error) {
	p := &models.Publication{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.FileURL,
		&p.FileSize, &p.FileType, &p.PublishYear, &p.PublishedAt,
		&p.DownloadCount, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PublicationFilter narrows List results. Zero-value fields are ignored.
type PublicationFilter struct {
	Category models.PublicationCategory
	Year     int
	Search   string
}

// List returns publications matching the filter, newest publish year
// first, with the total count before pagination.
func (s *PublicationStore) List(f PublicationFilter, p Page) ([]models.Publication, int, error) {
	where := "WHERE 1=1"
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Year != 0 {
		args = append(args, f.Year)
		where += fmt.Sprintf(" AND publish_year = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", n, n)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM publications `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count publications: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT `+publicationColumns+` FROM publications %s
		ORDER BY publish_year DESC, published_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list publications: %w", err)
	}
	defer rows.Close()

	var items []models.Publication
	for rows.Next() {
		pub, err := scanPublication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan publication: %w", err)
		}
		items = append(items, *pub)
	}
	return items, total, rows.Err()
}

// FindByID retrieves a publication by its UUID. Returns nil if not found.
func (s *PublicationStore) FindByID(id uuid.UUID) (*models.Publication, error) {
	p, err := scanPublication(s.db.QueryRow(`SELECT `+publicationColumns+` FROM publications WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find publication by id: %w", err)
	}
	return p, nil
}

// Create inserts a new publication and returns it with the generated ID.
func (s *PublicationStore) Create(p *models.Publication) (*models.Publication, error) {
	out, err := scanPublication(s.db.QueryRow(`
		INSERT INTO publications (title, description, category, file_url, file_size, file_type, publish_year, published_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+publicationColumns+`
	`, p.Title, p.Description, p.Category, p.FileURL, p.FileSize,
		p.FileType, p.PublishYear, p.PublishedAt, p.CreatedBy))
	if err != nil {
		return nil, fmt.Errorf("create publication: %w", err)
	}
	return out, nil
}

// Update modifies an existing publication and returns the updated row.
// Returns nil if the publication no longer exists.
func (s *PublicationStore) Update(p *models.Publication) (*models.Publication, error) {
	out, err := scanPublication(s.db.QueryRow(`
		UPDATE publications
		SET title = $1, description = $2, category = $3, file_url = $4,
		    file_size = $5, file_type = $6, publish_year = $7,
		    published_at = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+publicationColumns+`
	`, p.Title, p.Description, p.Category, p.FileURL, p.FileSize,
		p.FileType, p.PublishYear, p.PublishedAt, p.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update publication: %w", err)
	}
	return out, nil
}

// Delete removes a publication.
func (s *PublicationStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete publication: %w", err)
	}
	return nil
}

// IncrementDownloads bumps the download counter by one in the database.
func (s *PublicationStore) IncrementDownloads(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE publications SET download_count = download_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment publication downloads: %w", err)
	}
	return nil
}

// Count returns the total number of publications.
func (s *PublicationStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM publications`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count publications: %w", err)
	}
	return n, nil
}
