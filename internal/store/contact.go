package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// ContactStore handles contact form submission database operations.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

const contactColumns = `id, name, email, subject, message, status, ip_address, created_at, updated_at`

func scanContact(row interface{ Scan(...any) error }) (*models.ContactSubmission, error) {
	c := &models.ContactSubmission{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status,
		&c.IPAddress, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns submissions newest first, optionally filtered by status,
// with the total count before pagination.
func (s *ContactStore) List(status models.ContactStatus, p Page) ([]models.ContactSubmission, int, error) {
	where := "WHERE 1=1"
	var args []any
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contact submissions: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT `+contactColumns+` FROM contact_submissions %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var items []models.ContactSubmission
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact submission: %w", err)
		}
		items = append(items, *c)
	}
	return items, total, rows.Err()
}

// FindByID retrieves a submission by UUID. Returns nil if not found.
func (s *ContactStore) FindByID(id uuid.UUID) (*models.ContactSubmission, error) {
	c, err := scanContact(s.db.QueryRow(`SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact submission by id: %w", err)
	}
	return c, nil
}

// Create records a new submission. Submissions always start as new.
func (s *ContactStore) Create(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	out, err := scanContact(s.db.QueryRow(`
		INSERT INTO contact_submissions (name, email, subject, message, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+contactColumns+`
	`, c.Name, c.Email, c.Subject, c.Message, c.IPAddress))
	if err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return out, nil
}

// UpdateStatus moves a submission through its triage states. Returns nil
// if the submission no longer exists.
func (s *ContactStore) UpdateStatus(id uuid.UUID, status models.ContactStatus) (*models.ContactSubmission, error) {
	c, err := scanContact(s.db.QueryRow(`
		UPDATE contact_submissions
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+contactColumns+`
	`, status, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update contact submission status: %w", err)
	}
	return c, nil
}

// Delete removes a submission.
func (s *ContactStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	return nil
}

// Count returns the total number of submissions.
func (s *ContactStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contact submissions: %w", err)
	}
	return n, nil
}

// CountNew returns the number of submissions still awaiting triage.
func (s *ContactStore) CountNew() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions WHERE status = 'new'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count new contact submissions: %w", err)
	}
	return n, nil
}
