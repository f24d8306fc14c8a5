package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"regsite/internal/models"
)

// BoardMemberStore handles board member database operations.
type BoardMemberStore struct {
	db *sql.DB
}

// NewBoardMemberStore creates a new BoardMemberStore.
func NewBoardMemberStore(db *sql.DB) *BoardMemberStore {
	return &BoardMemberStore{db: db}
}

const boardMemberColumns = `id, name, position, image, bio, sort_order, is_active, created_at, updated_at`

func scanBoardMember(row interface{ Scan(...any) error }) (*models.BoardMember, error) {
	b := &models.BoardMember{}
	err := row.Scan(
		&b.ID, &b.Name, &b.Position, &b.Image, &b.Bio, &b.Order,
		&b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns board members in manual order. When activeOnly is set,
// inactive members are excluded.
func (s *BoardMemberStore) List(activeOnly bool) ([]models.BoardMember, error) {
	query := `SELECT ` + boardMemberColumns + ` FROM board_members`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}
	defer rows.Close()

	var items []models.BoardMember
	for rows.Next() {
		b, err := scanBoardMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board member: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a board member by UUID. Returns nil if not found.
func (s *BoardMemberStore) FindByID(id uuid.UUID) (*models.BoardMember, error) {
	b, err := scanBoardMember(s.db.QueryRow(`SELECT `+boardMemberColumns+` FROM board_members WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find board member by id: %w", err)
	}
	return b, nil
}

// Create inserts a new board member and returns it with the generated ID.
func (s *BoardMemberStore) Create(b *models.BoardMember) (*models.BoardMember, error) {
	out, err := scanBoardMember(s.db.QueryRow(`
		INSERT INTO board_members (name, position, image, bio, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+boardMemberColumns+`
	`, b.Name, b.Position, b.Image, b.Bio, b.Order, b.IsActive))
	if err != nil {
		return nil, fmt.Errorf("create board member: %w", err)
	}
	return out, nil
}

// Update modifies an existing board member and returns the updated row.
// Returns nil if the member no longer exists.
func (s *BoardMemberStore) Update(b *models.BoardMember) (*models.BoardMember, error) {
	out, err := scanBoardMember(s.db.QueryRow(`
		UPDATE board_members
		SET name = $1, position = $2, image = $3, bio = $4,
		    sort_order = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+boardMemberColumns+`
	`, b.Name, b.Position, b.Image, b.Bio, b.Order, b.IsActive, b.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update board member: %w", err)
	}
	return out, nil
}

// Delete removes a board member.
func (s *BoardMemberStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM board_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete board member: %w", err)
	}
	return nil
}
