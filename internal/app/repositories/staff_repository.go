package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
)

// StaffRepository handles dashboard login accounts.
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

// GetByEmail retrieves a staff account by email (case-insensitive).
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	query := `
		SELECT id, email, password_hash, display_name, created_at
		FROM staff
		WHERE email = $1
	`

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&staff.ID,
		&staff.Email,
		&staff.PasswordHash,
		&staff.DisplayName,
		&staff.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("%w: get staff: %v", apperrors.ErrRepositoryFailure, err)
	}

	return &staff, nil
}

// Create inserts a staff account and fills in its id.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		strings.ToLower(strings.TrimSpace(staff.Email)),
		staff.PasswordHash,
		staff.DisplayName,
	).Scan(&staff.ID, &staff.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: create staff: %v", apperrors.ErrRepositoryFailure, err)
	}

	return nil
}

// Count returns the number of staff accounts.
func (r *StaffRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count staff: %v", apperrors.ErrRepositoryFailure, err)
	}
	return count, nil
}
