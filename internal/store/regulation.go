package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// RegulationStore handles regulatory document database operations.
type RegulationStore struct {
	db *sql.DB
}

// NewRegulationStore creates a new RegulationStore.
func NewRegulationStore(db *sql.DB) *RegulationStore {
	return &RegulationStore{db: db}
}

const regulationColumns = `id, title, description, category, file_url, file_size, file_type, effective_date, status, tags, created_by, created_at, updated_at`

func scanRegulation(row interface{ Scan(...any) error }) (*models.Regulation, error) {
	r := &models.Regulation{}
	var tags []byte
	err := row.Scan(
		&r.ID, &r.Title, &r.Description, &r.Category, &r.FileURL,
		&r.FileSize, &r.FileType, &r.EffectiveDate, &r.Status,
		&tags, &r.CreatedBy, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(tags, &r.Tags); err != nil {
		return nil, err
	}
	return r, nil
}

// RegulationFilter narrows List results. Zero-value fields are ignored.
type RegulationFilter struct {
	Category models.RegulationCategory
	Status   models.ContentStatus
	Search   string
}

// List returns regulations matching the filter, newest first, with the
// total count before pagination.
func (s *RegulationStore) List(f RegulationFilter, p Page) ([]models.Regulation, int, error) {
	where := "WHERE 1=1"
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", n, n)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM regulations `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count regulations: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT `+regulationColumns+` FROM regulations %s
		ORDER BY effective_date DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list regulations: %w", err)
	}
	defer rows.Close()

	var items []models.Regulation
	for rows.Next() {
		r, err := scanRegulation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan regulation: %w", err)
		}
		items = append(items, *r)
	}
	return items, total, rows.Err()
}

// FindByID retrieves a regulation by its UUID. Returns nil if not found.
func (s *RegulationStore) FindByID(id uuid.UUID) (*models.Regulation, error) {
	r, err := scanRegulation(s.db.QueryRow(`SELECT `+regulationColumns+` FROM regulations WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find regulation by id: %w", err)
	}
	return r, nil
}

// Create inserts a new regulation and returns it with the generated ID.
func (s *RegulationStore) Create(r *models.Regulation) (*models.Regulation, error) {
	tags, err := jsonValue(r.Tags)
	if err != nil {
		return nil, err
	}
	out, err := scanRegulation(s.db.QueryRow(`
		INSERT INTO regulations (title, description, category, file_url, file_size, file_type, effective_date, status, tags, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+regulationColumns+`
	`, r.Title, r.Description, r.Category, r.FileURL, r.FileSize,
		r.FileType, r.EffectiveDate, r.Status, tags, r.CreatedBy))
	if err != nil {
		return nil, fmt.Errorf("create regulation: %w", err)
	}
	return out, nil
}

// Update modifies an existing regulation and returns the updated row.
// Returns nil if the regulation no longer exists.
func (s *RegulationStore) Update(r *models.Regulation) (*models.Regulation, error) {
	tags, err := jsonValue(r.Tags)
	if err != nil {
		return nil, err
	}
	out, err := scanRegulation(s.db.QueryRow(`
		UPDATE regulations
		SET title = $1, description = $2, category = $3, file_url = $4,
		    file_size = $5, file_type = $6, effective_date = $7,
		    status = $8, tags = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING `+regulationColumns+`
	`, r.Title, r.Description, r.Category, r.FileURL, r.FileSize,
		r.FileType, r.EffectiveDate, r.Status, tags, r.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update regulation: %w", err)
	}
	return out, nil
}

// Delete removes a regulation.
func (s *RegulationStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM regulations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete regulation: %w", err)
	}
	return nil
}

// Count returns the total number of regulations.
func (s *RegulationStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM regulations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count regulations: %w", err)
	}
	return n, nil
}
