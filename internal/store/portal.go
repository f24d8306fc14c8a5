package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// PortalStore handles service portal link database operations.
type PortalStore struct {
	db *sql.DB
}

// NewPortalStore creates a new PortalStore.
func NewPortalStore(db *sql.DB) *PortalStore {
	return &PortalStore{db: db}
}

const portalColumns = `id, name, description, url, icon, category, is_external, requires_auth, sort_order, is_active, created_by, created_at, updated_at`

func scanPortal(row interface{ Scan(...any) error }) (*models.Portal, error) {
	p := &models.Portal{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.URL, &p.Icon, &p.Category,
		&p.IsExternal, &p.RequiresAuth, &p.Order, &p.IsActive,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns portals in manual order. When activeOnly is set, disabled
// portals are excluded. An empty category matches all.
func (s *PortalStore) List(category string, activeOnly bool) ([]models.Portal, error) {
	where := "WHERE 1=1"
	var args []any
	if activeOnly {
		where += " AND is_active = TRUE"
	}
	if category != "" {
		args = append(args, category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	rows, err := s.db.Query(`
		SELECT `+portalColumns+` FROM portals `+where+`
		ORDER BY sort_order ASC, name ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("list portals: %w", err)
	}
	defer rows.Close()

	var items []models.Portal
	for rows.Next() {
		p, err := scanPortal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portal: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a portal by its UUID. Returns nil if not found.
func (s *PortalStore) FindByID(id uuid.UUID) (*models.Portal, error) {
	p, err := scanPortal(s.db.QueryRow(`SELECT `+portalColumns+` FROM portals WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find portal by id: %w", err)
	}
	return p, nil
}

// Create inserts a new portal and returns it with the generated ID.
func (s *PortalStore) Create(p *models.Portal) (*models.Portal, error) {
	out, err := scanPortal(s.db.QueryRow(`
		INSERT INTO portals (name, description, url, icon, category, is_external, requires_auth, sort_order, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+portalColumns+`
	`, p.Name, p.Description, p.URL, p.Icon, p.Category,
		p.IsExternal, p.RequiresAuth, p.Order, p.IsActive, p.CreatedBy))
	if err != nil {
		return nil, fmt.Errorf("create portal: %w", err)
	}
	return out, nil
}

// Update modifies an existing portal and returns the updated row.
// Returns nil if the portal no longer exists.
func (s *PortalStore) Update(p *models.Portal) (*models.Portal, error) {
	out, err := scanPortal(s.db.QueryRow(`
		UPDATE portals
		SET name = $1, description = $2, url = $3, icon = $4,
		    category = $5, is_external = $6, requires_auth = $7,
		    sort_order = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING `+portalColumns+`
	`, p.Name, p.Description, p.URL, p.Icon, p.Category,
		p.IsExternal, p.RequiresAuth, p.Order, p.IsActive, p.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update portal: %w", err)
	}
	return out, nil
}

// Delete removes a portal.
func (s *PortalStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM portals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete portal: %w", err)
	}
	return nil
}
