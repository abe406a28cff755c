package forms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/app/models"
)

type fakeRepository struct {
	records map[string]*models.FacultyRecord

	createCalls int
	updateCalls int
	lastWritten *models.FacultyRecord

	failCreate error
	failUpdate error
	failGet    error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: make(map[string]*models.FacultyRecord)}
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*models.FacultyRecord, error) {
	if r.failGet != nil {
		return nil, r.failGet
	}
	record, ok := r.records[id]
	if !ok {
		return nil, errors.New("faculty not found")
	}
	return record, nil
}

func (r *fakeRepository) Create(_ context.Context, record *models.FacultyRecord) (string, error) {
	r.createCalls++
	if r.failCreate != nil {
		return "", r.failCreate
	}
	id := fmt.Sprintf("fac-%d", r.createCalls)
	r.records[id] = record
	r.lastWritten = record
	return id, nil
}

func (r *fakeRepository) Update(_ context.Context, id string, record *models.FacultyRecord) error {
	r.updateCalls++
	if r.failUpdate != nil {
		return r.failUpdate
	}
	r.records[id] = record
	r.lastWritten = record
	return nil
}

type fakeStorage struct {
	uploads    int
	deletes    []string
	failUpload error
	failDelete error
}

func (s *fakeStorage) Upload(_ context.Context, filename string, _ io.Reader) (string, error) {
	s.uploads++
	if s.failUpload != nil {
		return "", s.failUpload
	}
	return "https://cdn.example.com/faculty_images%2F" + filename + "?alt=media", nil
}

func (s *fakeStorage) Delete(_ context.Context, fileURL string) error {
	s.deletes = append(s.deletes, fileURL)
	return s.failDelete
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func seededRecord(image string) *models.FacultyRecord {
	return &models.FacultyRecord{
		ID: "fac-1",
		Fixed: models.FixedFields{
			Name:           "B. Iyer",
			Designation:    "Professor",
			DepartmentCode: "cse",
			DepartmentName: "Computer Science & Engineering",
			Image:          image,
		},
		Lists: models.EmptyLists(),
	}
}

func TestAddEntryDiscardsWhitespaceOnlyInput(t *testing.T) {
	form := NewCreateForm("cse", newFakeRepository(), &fakeStorage{}, &recordingNotifier{})

	form.StageInput("publications", "   ")
	form.AddEntry("publications")

	assert.Empty(t, form.Entries("publications"))
}

func TestAddAndRemoveEntriesKeepOrder(t *testing.T) {
	form := NewCreateForm("cse", newFakeRepository(), &fakeStorage{}, &recordingNotifier{})

	for _, v := range []string{"First", "Second", "Third"} {
		form.StageInput("achievements", v)
		form.AddEntry("achievements")
	}
	form.RemoveEntry("achievements", 1)

	assert.Equal(t, []string{"First", "Third"}, form.Entries("achievements"))

	// Out-of-range removals do nothing.
	form.RemoveEntry("achievements", 5)
	form.RemoveEntry("achievements", -1)
	assert.Equal(t, []string{"First", "Third"}, form.Entries("achievements"))
}

func TestAddEntryTrimsValue(t *testing.T) {
	form := NewCreateForm("cse", newFakeRepository(), &fakeStorage{}, &recordingNotifier{})

	form.StageInput("expertise", "  Distributed Systems  ")
	form.AddEntry("expertise")

	assert.Equal(t, []string{"Distributed Systems"}, form.Entries("expertise"))
	assert.Equal(t, "", form.StagedInput("expertise"))
}

func TestCreateSubmitWritesRecordAndRedirects(t *testing.T) {
	repo := newFakeRepository()
	notifier := &recordingNotifier{}
	form := NewCreateForm("cse", repo, &fakeStorage{}, notifier)

	form.SetField("name", "A. Rao")
	form.StageInput("publications", "Paper X")
	form.AddEntry("publications")
	form.StageInput("publications", "Paper Y")
	form.AddEntry("publications")

	redirect, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/dashboard/faculty/CSE", redirect)
	assert.Equal(t, StateSucceeded, form.State())
	assert.Equal(t, 1, repo.createCalls)
	require.NotNil(t, repo.lastWritten)
	assert.Equal(t, "A. Rao", repo.lastWritten.Fixed.Name)
	assert.Equal(t, "cse", repo.lastWritten.Fixed.DepartmentCode)
	assert.Equal(t, []string{"Paper X", "Paper Y"}, repo.lastWritten.Lists["publications"])
	assert.Equal(t, []string{"Faculty added successfully!"}, notifier.successes)

	// The form resets to create-mode defaults with the department kept.
	fixed := form.FixedFields()
	assert.Equal(t, "", fixed.Name)
	assert.Equal(t, "cse", fixed.DepartmentCode)
	assert.Equal(t, "Computer Science & Engineering", fixed.DepartmentName)
	assert.Empty(t, form.Entries("publications"))
}

func TestEditSubmitWithClearedImageDeletesOriginal(t *testing.T) {
	repo := newFakeRepository()
	storage := &fakeStorage{}
	original := "https://cdn.example.com/faculty_images%2F1000_old.png?alt=media"
	repo.records["fac-1"] = seededRecord(original)

	form, err := LoadForEdit(context.Background(), "fac-1", "cse", repo, storage, &recordingNotifier{})
	require.NoError(t, err)

	form.RemoveImage()
	_, err = form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{original}, storage.deletes)
	assert.Zero(t, storage.uploads)
	assert.Equal(t, "", repo.lastWritten.Fixed.Image)
}

func TestEditSubmitWithNewFileUploadsAndKeepsOriginal(t *testing.T) {
	repo := newFakeRepository()
	storage := &fakeStorage{}
	repo.records["fac-1"] = seededRecord("https://cdn.example.com/faculty_images%2F1000_old.png?alt=media")

	form, err := LoadForEdit(context.Background(), "fac-1", "cse", repo, storage, &recordingNotifier{})
	require.NoError(t, err)

	form.SelectImage(&PendingImage{Filename: "new.png", Content: strings.NewReader("png")})
	_, err = form.Submit(context.Background())
	require.NoError(t, err)

	// The replaced asset is not deleted. Replacement never cleans up the
	// old object; only removal without replacement does.
	assert.Equal(t, 1, storage.uploads)
	assert.Empty(t, storage.deletes)
	assert.Contains(t, repo.lastWritten.Fixed.Image, "new.png")
}

func TestEditSubmitRemoveThenReselectLeavesOriginalBehind(t *testing.T) {
	repo := newFakeRepository()
	storage := &fakeStorage{}
	repo.records["fac-1"] = seededRecord("https://cdn.example.com/faculty_images%2F1000_old.png?alt=media")

	form, err := LoadForEdit(context.Background(), "fac-1", "cse", repo, storage, &recordingNotifier{})
	require.NoError(t, err)

	form.RemoveImage()
	form.SelectImage(&PendingImage{Filename: "new.png", Content: strings.NewReader("png")})
	_, err = form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, storage.uploads)
	assert.Empty(t, storage.deletes)
}

func TestEditSubmitUnchangedImageTouchesNothing(t *testing.T) {
	repo := newFakeRepository()
	storage := &fakeStorage{}
	original := "https://cdn.example.com/faculty_images%2F1000_old.png?alt=media"
	repo.records["fac-1"] = seededRecord(original)

	form, err := LoadForEdit(context.Background(), "fac-1", "cse", repo, storage, &recordingNotifier{})
	require.NoError(t, err)

	form.SetField("designation", "Associate Professor")
	_, err = form.Submit(context.Background())
	require.NoError(t, err)

	assert.Zero(t, storage.uploads)
	assert.Empty(t, storage.deletes)
	assert.Equal(t, original, repo.lastWritten.Fixed.Image)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestSubmitRepositoryFailureKeepsFieldValues(t *testing.T) {
	repo := newFakeRepository()
	repo.failCreate = errors.New("connection refused")
	notifier := &recordingNotifier{}
	form := NewCreateForm("eee", repo, &fakeStorage{}, notifier)

	form.SetField("name", "C. Nair")
	form.StageInput("memberships", "IEEE")
	form.AddEntry("memberships")

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateReady, form.State())
	assert.Equal(t, "C. Nair", form.FixedFields().Name)
	assert.Equal(t, []string{"IEEE"}, form.Entries("memberships"))
	assert.Equal(t, []string{"Failed to add faculty."}, notifier.errors)

	// The user can retry the same submit.
	repo.failCreate = nil
	_, err = form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.createCalls)
}

func TestSubmitUploadFailureSkipsRecordWrite(t *testing.T) {
	repo := newFakeRepository()
	storage := &fakeStorage{failUpload: errors.New("bucket unavailable")}
	notifier := &recordingNotifier{}
	form := NewCreateForm("me", repo, storage, notifier)

	form.SetField("name", "D. Menon")
	form.SelectImage(&PendingImage{Filename: "photo.jpg", Content: strings.NewReader("jpg")})

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	assert.Zero(t, repo.createCalls)
	assert.Equal(t, StateReady, form.State())
	assert.True(t, form.HasPendingImage())
	assert.Equal(t, []string{"Failed to add faculty."}, notifier.errors)
}

func TestRemovedImageDeleteFailureDoesNotBlockSubmit(t *testing.T) {
	repo := newFakeRepository()
	storage := &fakeStorage{failDelete: errors.New("object locked")}
	repo.records["fac-1"] = seededRecord("https://cdn.example.com/faculty_images%2F1000_old.png?alt=media")

	form, err := LoadForEdit(context.Background(), "fac-1", "cse", repo, storage, &recordingNotifier{})
	require.NoError(t, err)

	form.RemoveImage()
	_, err = form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, "", repo.lastWritten.Fixed.Image)
}

func TestSelectImageReleasesSupersededSelection(t *testing.T) {
	form := NewCreateForm("cse", newFakeRepository(), &fakeStorage{}, &recordingNotifier{})

	released := 0
	form.SelectImage(&PendingImage{Filename: "first.png", Release: func() { released++ }})
	form.SelectImage(&PendingImage{Filename: "second.png"})
	assert.Equal(t, 1, released)

	form.SelectImage(&PendingImage{Filename: "third.png", Release: func() { released += 10 }})
	form.RemoveImage()
	assert.Equal(t, 11, released)
	assert.False(t, form.HasPendingImage())
}

func TestLoadForEditFailureIsTerminal(t *testing.T) {
	repo := newFakeRepository()
	repo.failGet = errors.New("deadline exceeded")
	notifier := &recordingNotifier{}

	form, err := LoadForEdit(context.Background(), "fac-1", "cse", repo, &fakeStorage{}, notifier)
	require.Error(t, err)
	assert.Equal(t, StateLoadFailed, form.State())
	assert.Equal(t, []string{"Failed to fetch faculty details."}, notifier.errors)

	_, err = form.Submit(context.Background())
	assert.Error(t, err)
}

func TestLoadForEditMissingListsReadAsEmpty(t *testing.T) {
	repo := newFakeRepository()
	record := seededRecord("")
	record.Lists = map[string][]string{"publications": {"Paper Z"}}
	repo.records["fac-1"] = record

	form, err := LoadForEdit(context.Background(), "fac-1", "cse", repo, &fakeStorage{}, &recordingNotifier{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Paper Z"}, form.Entries("publications"))
	assert.Empty(t, form.Entries("fdps"))
	assert.Empty(t, form.Entries("positionsHeld"))
}

func TestMutationsIgnoredOutsideReady(t *testing.T) {
	form := NewCreateForm("cse", newFakeRepository(), &fakeStorage{}, &recordingNotifier{})
	form.StageInput("expertise", "AI")
	form.AddEntry("expertise")

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateSucceeded, form.State())

	form.SetField("name", "ignored")
	form.StageInput("expertise", "ignored")
	form.AddEntry("expertise")
	form.RemoveImage()

	assert.Equal(t, "", form.FixedFields().Name)
	assert.Empty(t, form.Entries("expertise"))

	_, err = form.Submit(context.Background())
	assert.Error(t, err)
}
