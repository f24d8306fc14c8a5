// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// NewsStore handles all news article database operations.
type NewsStore struct {
	db *sql.DB
}

// NewNewsStore creates a new NewsStore with the given database connection.
func NewNewsStore(db *sql.DB) *NewsStore {
	return &NewsStore{db: db}
}

const newsColumns = `id, title, slug, content, excerpt, featured_image, category, tags, author_id, status, published_at, views, created_at, updated_at`

func scanNews(row interface{ Scan(...any) error }) (*models.News, error) {
	n := &models.News{}
	var tags []byte
	err := row.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Content, &n.Excerpt, &n.FeaturedImage,
		&n.Category, &tags, &n.AuthorID, &n.Status, &n.PublishedAt,
		&n.Views, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(tags, &n.Tags); err != nil {
		return nil, err
	}
	return n, nil
}

// NewsFilter narrows List results. Zero-value fields are ignored.
type NewsFilter struct {
	Status   models.ContentStatus
	Category string
	Tag      string
	Search   string
}

// List returns articles matching the filter ordered by publish date
// descending (drafts by creation date), with the total count before
// pagination.
func (s *NewsStore) List(f NewsFilter, p Page) ([]models.News, int, error) {
	where := "WHERE 1=1"
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Tag != "" {
		args = append(args, f.Tag)
		where += fmt.Sprintf(" AND tags ? $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d OR excerpt ILIKE $%d)", n, n, n)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM news `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count news: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT `+newsColumns+` FROM news %s
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, *n)
	}
	return items, total, rows.Err()
}

// FindByID retrieves an article by its UUID. Returns nil if not found.
func (s *NewsStore) FindByID(id uuid.UUID) (*models.News, error) {
	n, err := scanNews(s.db.QueryRow(`SELECT `+newsColumns+` FROM news WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by id: %w", err)
	}
	return n, nil
}

// FindBySlug retrieves an article by its slug regardless of status.
// Callers decide whether drafts are visible. Returns nil if not found.
func (s *NewsStore) FindBySlug(slug string) (*models.News, error) {
	n, err := scanNews(s.db.QueryRow(`SELECT `+newsColumns+` FROM news WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by slug: %w", err)
	}
	return n, nil
}

// Create inserts a new article and returns it with the generated ID.
// The publish timestamp is stamped when the article is created already
// published.
func (s *NewsStore) Create(n *models.News) (*models.News, error) {
	n.PublishedAt = PublishStamp(n.Status, n.PublishedAt, time.Now())
	tags, err := jsonValue(n.Tags)
	if err != nil {
		return nil, err
	}

	out, err := scanNews(s.db.QueryRow(`
		INSERT INTO news (title, slug, content, excerpt, featured_image, category, tags, author_id, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+newsColumns+`
	`, n.Title, n.Slug, n.Content, n.Excerpt, n.FeaturedImage,
		n.Category, tags, n.AuthorID, n.Status, n.PublishedAt))
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return out, nil
}

// Update modifies an existing article and returns the updated row.
// Returns nil if the article no longer exists.
func (s *NewsStore) Update(n *models.News) (*models.News, error) {
	n.PublishedAt = PublishStamp(n.Status, n.PublishedAt, time.Now())
	tags, err := jsonValue(n.Tags)
	if err != nil {
		return nil, err
	}

	out, err := scanNews(s.db.QueryRow(`
		UPDATE news
		SET title = $1, slug = $2, content = $3, excerpt = $4,
		    featured_image = $5, category = $6, tags = $7, status = $8,
		    published_at = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING `+newsColumns+`
	`, n.Title, n.Slug, n.Content, n.Excerpt, n.FeaturedImage,
		n.Category, tags, n.Status, n.PublishedAt, n.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return out, nil
}

// Delete removes an article.
func (s *NewsStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter by one. The increment happens
// in the database so concurrent reads never lose updates.
func (s *NewsStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE news SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment news views: %w", err)
	}
	return nil
}

// Count returns the total number of articles.
func (s *NewsStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM news`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return n, nil
}

// CountPublished returns the number of published articles.
func (s *NewsStore) CountPublished() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM news WHERE status = 'published'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count published news: %w", err)
	}
	return n, nil
}
