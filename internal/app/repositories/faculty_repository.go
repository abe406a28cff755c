package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
)

// FacultyRepository stores faculty records as documents in the faculties
// collection: one JSONB document per record, keyed by an opaque id the
// repository assigns on creation. The department code is kept in its own
// column for filtering; the creation timestamp is stamped server-side and
// never rewritten by updates.
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// Create inserts a new record and returns the assigned id. The creation
// time is assigned by the store, not the caller.
func (r *FacultyRepository) Create(ctx context.Context, record *models.FacultyRecord) (string, error) {
	data, err := record.MarshalDocument()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrRepositoryFailure, err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO faculties (id, department_code, data)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	var createdAt time.Time
	err = r.db.QueryRow(ctx, query, id, strings.ToLower(record.Fixed.DepartmentCode), data).Scan(&createdAt)
	if err != nil {
		return "", fmt.Errorf("%w: create faculty: %v", apperrors.ErrRepositoryFailure, err)
	}

	record.ID = id
	record.CreatedAt = createdAt
	return id, nil
}

// GetByID retrieves a record by id.
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (*models.FacultyRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrFacultyNotFound
	}

	query := `
		SELECT data, created_at
		FROM faculties
		WHERE id = $1
	`

	var data []byte
	var createdAt time.Time
	err := r.db.QueryRow(ctx, query, id).Scan(&data, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("%w: get faculty %s: %v", apperrors.ErrRepositoryFailure, id, err)
	}

	return models.FacultyRecordFromDocument(id, data, createdAt)
}

// ListByDepartment retrieves every record of a department. The code is
// compared case-normalized; the result order is unspecified.
func (r *FacultyRepository) ListByDepartment(ctx context.Context, departmentCode string) ([]*models.FacultyRecord, error) {
	query := `
		SELECT id, data, created_at
		FROM faculties
		WHERE department_code = $1
	`

	rows, err := r.db.Query(ctx, query, strings.ToLower(strings.TrimSpace(departmentCode)))
	if err != nil {
		return nil, fmt.Errorf("%w: list faculties: %v", apperrors.ErrRepositoryFailure, err)
	}
	defer rows.Close()

	var records []*models.FacultyRecord
	for rows.Next() {
		var id string
		var data []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &data, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan faculty row: %v", apperrors.ErrRepositoryFailure, err)
		}

		record, err := models.FacultyRecordFromDocument(id, data, createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrRepositoryFailure, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list faculties: %v", apperrors.ErrRepositoryFailure, err)
	}

	return records, nil
}

// Update merges the record's document over the stored one. Keys not in
// the incoming document stay untouched and the creation time is never
// re-stamped.
func (r *FacultyRepository) Update(ctx context.Context, id string, record *models.FacultyRecord) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrFacultyNotFound
	}

	data, err := record.MarshalDocument()
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRepositoryFailure, err)
	}

	query := `
		UPDATE faculties
		SET data = data || $2::jsonb, department_code = $3
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id, data, strings.ToLower(record.Fixed.DepartmentCode))
	if err != nil {
		return fmt.Errorf("%w: update faculty %s: %v", apperrors.ErrRepositoryFailure, id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete removes a record by id.
func (r *FacultyRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrFacultyNotFound
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete faculty %s: %v", apperrors.ErrRepositoryFailure, id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
