package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
)

type stubFacultyRepo struct {
	records     map[string]*models.FacultyRecord
	listErr     error
	deleteErr   error
	deletedIDs  []string
	listedCodes []string
}

func (r *stubFacultyRepo) GetByID(_ context.Context, id string) (*models.FacultyRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return record, nil
}

func (r *stubFacultyRepo) ListByDepartment(_ context.Context, code string) ([]*models.FacultyRecord, error) {
	r.listedCodes = append(r.listedCodes, code)
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*models.FacultyRecord
	for _, rec := range r.records {
		if rec.Fixed.DepartmentCode == code {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubFacultyRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedIDs = append(r.deletedIDs, id)
	delete(r.records, id)
	return nil
}

type stubStorage struct {
	deletes   []string
	deleteErr error
}

func (s *stubStorage) Upload(_ context.Context, _ string, _ io.Reader) (string, error) {
	return "", errors.New("not used")
}

func (s *stubStorage) Delete(_ context.Context, fileURL string) error {
	s.deletes = append(s.deletes, fileURL)
	return s.deleteErr
}

func TestListByDepartmentRejectsUnknownCode(t *testing.T) {
	service := NewFacultyService(&stubFacultyRepo{}, &stubStorage{})

	_, err := service.ListByDepartment(context.Background(), "law")

	assert.ErrorIs(t, err, apperrors.ErrUnknownDepartment)
}

func TestListByDepartmentReturnsEmptySliceForNoRecords(t *testing.T) {
	repo := &stubFacultyRepo{records: map[string]*models.FacultyRecord{}}
	service := NewFacultyService(repo, &stubStorage{})

	records, err := service.ListByDepartment(context.Background(), "cse")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDeleteRemovesImageBeforeRecord(t *testing.T) {
	repo := &stubFacultyRepo{records: map[string]*models.FacultyRecord{
		"fac-1": {
			ID:    "fac-1",
			Fixed: models.FixedFields{Image: "https://cdn.example.com/faculty_images%2F1_a.png?alt=media"},
		},
	}}
	storage := &stubStorage{}
	service := NewFacultyService(repo, storage)

	err := service.Delete(context.Background(), "fac-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/faculty_images%2F1_a.png?alt=media"}, storage.deletes)
	assert.Equal(t, []string{"fac-1"}, repo.deletedIDs)
}

func TestDeleteSkipsStorageWhenNoImage(t *testing.T) {
	repo := &stubFacultyRepo{records: map[string]*models.FacultyRecord{
		"fac-1": {ID: "fac-1"},
	}}
	storage := &stubStorage{}
	service := NewFacultyService(repo, storage)

	err := service.Delete(context.Background(), "fac-1")

	require.NoError(t, err)
	assert.Empty(t, storage.deletes)
	assert.Equal(t, []string{"fac-1"}, repo.deletedIDs)
}

func TestDeleteProceedsWhenImageDeleteFails(t *testing.T) {
	repo := &stubFacultyRepo{records: map[string]*models.FacultyRecord{
		"fac-1": {
			ID:    "fac-1",
			Fixed: models.FixedFields{Image: "https://cdn.example.com/faculty_images%2F1_a.png?alt=media"},
		},
	}}
	storage := &stubStorage{deleteErr: errors.New("object locked")}
	service := NewFacultyService(repo, storage)

	err := service.Delete(context.Background(), "fac-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"fac-1"}, repo.deletedIDs)
}

func TestDeleteUnknownRecord(t *testing.T) {
	service := NewFacultyService(&stubFacultyRepo{}, &stubStorage{})

	err := service.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}
