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

// FAQStore handles FAQ database operations.
type FAQStore struct {
	db *sql.DB
}

// NewFAQStore creates a new FAQStore.
func NewFAQStore(db *sql.DB) *FAQStore {
	return &FAQStore{db: db}
}

const faqColumns = `id, question, answer, category, sort_order, is_published, created_by, created_at, updated_at`

func scanFAQ(row interface{ Scan(...any) error }) (*models.FAQ, error) {
	f := &models.FAQ{}
	err := row.Scan(
		&f.ID, &f.Question, &f.Answer, &f.Category, &f.Order,
		&f.IsPublished, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List returns FAQs grouped by category and manual order. When
// publishedOnly is set, unpublished entries are excluded. An empty
// category matches all.
func (s *FAQStore) List(category string, publishedOnly bool) ([]models.FAQ, error) {
	where := "WHERE 1=1"
	var args []any
	if publishedOnly {
		where += " AND is_published = TRUE"
	}
	if category != "" {
		args = append(args, category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	rows, err := s.db.Query(`
		SELECT `+faqColumns+` FROM faqs `+where+`
		ORDER BY category ASC, sort_order ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var items []models.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

// FindByID retrieves an FAQ by its UUID. Returns nil if not found.
func (s *FAQStore) FindByID(id uuid.UUID) (*models.FAQ, error) {
	f, err := scanFAQ(s.db.QueryRow(`SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find faq by id: %w", err)
	}
	return f, nil
}

// Create inserts a new FAQ and returns it with the generated ID.
func (s *FAQStore) Create(f *models.FAQ) (*models.FAQ, error) {
	out, err := scanFAQ(s.db.QueryRow(`
		INSERT INTO faqs (question, answer, category, sort_order, is_published, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+faqColumns+`
	`, f.Question, f.Answer, f.Category, f.Order, f.IsPublished, f.CreatedBy))
	if err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return out, nil
}

// Update modifies an existing FAQ and returns the updated row. Returns
// nil if the FAQ no longer exists.
func (s *FAQStore) Update(f *models.FAQ) (*models.FAQ, error) {
	out, err := scanFAQ(s.db.QueryRow(`
		UPDATE faqs
		SET question = $1, answer = $2, category = $3, sort_order = $4,
		    is_published = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+faqColumns+`
	`, f.Question, f.Answer, f.Category, f.Order, f.IsPublished, f.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update faq: %w", err)
	}
	return out, nil
}

// Delete removes an FAQ.
func (s *FAQStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return nil
}
