package services

import (
	"context"
	"strings"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
	"github.com/campusdesk/campusdesk/internal/pkg/assetstorage"
	"github.com/campusdesk/campusdesk/internal/pkg/logger"
)

// FacultyReader is the repository surface the browsing side needs.
type FacultyReader interface {
	GetByID(ctx context.Context, id string) (*models.FacultyRecord, error)
	ListByDepartment(ctx context.Context, departmentCode string) ([]*models.FacultyRecord, error)
	Delete(ctx context.Context, id string) error
}

// FacultyService serves the browsing and deletion side of the dashboard.
// Creation and editing go through the form workflow instead.
type FacultyService struct {
	repo    FacultyReader
	storage assetstorage.Storage
}

// NewFacultyService creates a new faculty service
func NewFacultyService(repo FacultyReader, storage assetstorage.Storage) *FacultyService {
	return &FacultyService{repo: repo, storage: storage}
}

// ListByDepartment returns every faculty record of a known department.
// Unknown codes are rejected before the store is consulted.
func (s *FacultyService) ListByDepartment(ctx context.Context, departmentCode string) ([]*models.FacultyRecord, error) {
	code := strings.TrimSpace(departmentCode)
	if models.DepartmentNameFor(code) == "" {
		return nil, apperrors.ErrUnknownDepartment
	}

	records, err := s.repo.ListByDepartment(ctx, code)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*models.FacultyRecord{}
	}
	return records, nil
}

// GetByID returns a single faculty record.
func (s *FacultyService) GetByID(ctx context.Context, id string) (*models.FacultyRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a faculty record and its stored photo. The photo goes
// first, best-effort: a storage failure is logged and the record is
// removed anyway, so at worst an orphaned object remains.
func (s *FacultyService) Delete(ctx context.Context, id string) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if record.Fixed.Image != "" {
		if err := s.storage.Delete(ctx, record.Fixed.Image); err != nil {
			logger.Warn().Err(err).Str("facultyId", id).Msg("Failed to delete faculty image")
		}
	}

	return s.repo.Delete(ctx, id)
}
