package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// AdStore handles homepage ad tile database operations.
type AdStore struct {
	db *sql.DB
}

// NewAdStore creates a new AdStore.
func NewAdStore(db *sql.DB) *AdStore {
	return &AdStore{db: db}
}

const adColumns = `id, title, type, content, link, col_span, row_span, status, sort_order, author_id, created_at, updated_at`

func scanAd(row interface{ Scan(...any) error }) (*models.Ad, error) {
	a := &models.Ad{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Type, &a.Content, &a.Link, &a.ColSpan,
		&a.RowSpan, &a.Status, &a.Order, &a.AuthorID, &a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns ads in manual order. When publishedOnly is set, drafts
// are excluded.
func (s *AdStore) List(publishedOnly bool) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads`
	if publishedOnly {
		query += ` WHERE status = 'published'`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	defer rows.Close()

	var items []models.Ad
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindByID retrieves an ad by its UUID. Returns nil if not found.
func (s *AdStore) FindByID(id uuid.UUID) (*models.Ad, error) {
	a, err := scanAd(s.db.QueryRow(`SELECT `+adColumns+` FROM ads WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find ad by id: %w", err)
	}
	return a, nil
}

// Create inserts a new ad and returns it with the generated ID.
func (s *AdStore) Create(a *models.Ad) (*models.Ad, error) {
	out, err := scanAd(s.db.QueryRow(`
		INSERT INTO ads (title, type, content, link, col_span, row_span, status, sort_order, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+adColumns+`
	`, a.Title, a.Type, a.Content, a.Link, a.ColSpan, a.RowSpan,
		a.Status, a.Order, a.AuthorID))
	if err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return out, nil
}

// Update modifies an existing ad and returns the updated row. Returns
// nil if the ad no longer exists.
func (s *AdStore) Update(a *models.Ad) (*models.Ad, error) {
	out, err := scanAd(s.db.QueryRow(`
		UPDATE ads
		SET title = $1, type = $2, content = $3, link = $4,
		    col_span = $5, row_span = $6, status = $7, sort_order = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING `+adColumns+`
	`, a.Title, a.Type, a.Content, a.Link, a.ColSpan, a.RowSpan,
		a.Status, a.Order, a.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update ad: %w", err)
	}
	return out, nil
}

// Delete removes an ad.
func (s *AdStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	return nil
}
