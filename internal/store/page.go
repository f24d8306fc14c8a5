package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// PageStore handles static page database operations.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, title, slug, content, sections, meta_title, meta_description, template, sort_order, is_published, last_edited_by, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*models.StaticPage, error) {
	p := &models.StaticPage{}
	var sections []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &sections, &p.MetaTitle,
		&p.MetaDescription, &p.Template, &p.Order, &p.IsPublished,
		&p.LastEditedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(sections, &p.Sections); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns pages in manual order. When publishedOnly is set, drafts
// are excluded.
func (s *PageStore) List(publishedOnly bool) ([]models.StaticPage, error) {
	query := `SELECT ` + pageColumns + ` FROM pages`
	if publishedOnly {
		query += ` WHERE is_published = TRUE`
	}
	query += ` ORDER BY sort_order ASC, title ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var items []models.StaticPage
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a page by its UUID. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.StaticPage, error) {
	p, err := scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a page by its slug regardless of publish state.
// Callers decide whether drafts are visible. Returns nil if not found.
func (s *PageStore) FindBySlug(slug string) (*models.StaticPage, error) {
	p, err := scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new page and returns it with the generated ID.
func (s *PageStore) Create(p *models.StaticPage) (*models.StaticPage, error) {
	sections, err := jsonValue(p.Sections)
	if err != nil {
		return nil, err
	}
	out, err := scanPage(s.db.QueryRow(`
		INSERT INTO pages (title, slug, content, sections, meta_title, meta_description, template, sort_order, is_published, last_edited_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+pageColumns+`
	`, p.Title, p.Slug, p.Content, sections, p.MetaTitle,
		p.MetaDescription, p.Template, p.Order, p.IsPublished, p.LastEditedBy))
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return out, nil
}

// Update modifies an existing page, stamping the editor. Returns nil if
// the page no longer exists.
func (s *PageStore) Update(p *models.StaticPage) (*models.StaticPage, error) {
	sections, err := jsonValue(p.Sections)
	if err != nil {
		return nil, err
	}
	out, err := scanPage(s.db.QueryRow(`
		UPDATE pages
		SET title = $1, slug = $2, content = $3, sections = $4,
		    meta_title = $5, meta_description = $6, template = $7,
		    sort_order = $8, is_published = $9, last_edited_by = $10,
		    updated_at = NOW()
		WHERE id = $11
		RETURNING `+pageColumns+`
	`, p.Title, p.Slug, p.Content, sections, p.MetaTitle,
		p.MetaDescription, p.Template, p.Order, p.IsPublished,
		p.LastEditedBy, p.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}
	return out, nil
}

// Delete removes a page.
func (s *PageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}
