package forms

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
	"github.com/campusdesk/campusdesk/internal/pkg/assetstorage"
	"github.com/campusdesk/campusdesk/internal/pkg/logger"
)

// State is the lifecycle position of a form instance.
type State int

const (
	// StateIdle is the zero value; a constructed form never stays here.
	StateIdle State = iota
	// StateLoading covers the edit-mode record fetch.
	StateLoading
	// StateReady accepts field mutations and a submit.
	StateReady
	// StateSubmitting has one submit in flight; mutations are ignored
	// and a second submit is rejected.
	StateSubmitting
	// StateSucceeded is reached after a successful submit and reset.
	StateSucceeded
	// StateLoadFailed is terminal for this instance: the edit-mode load
	// failed and no partial form is shown.
	StateLoadFailed
)

// Repository is the document-store boundary the workflow reads and
// writes through.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.FacultyRecord, error)
	Create(ctx context.Context, record *models.FacultyRecord) (string, error)
	Update(ctx context.Context, id string, record *models.FacultyRecord) error
}

// Notifier surfaces workflow outcomes to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// PendingImage is a locally selected photo that has not been uploaded
// yet. Release, when set, frees the preview resource backing it; the
// form calls it whenever the selection is superseded or discarded.
type PendingImage struct {
	Filename string
	Content  io.Reader
	Release  func()
}

// FacultyForm drives the create/edit workflow for one faculty record:
// staged list-field inputs, the pending-image lifecycle and the submit
// sequence (resolve image, write record, reset, redirect).
type FacultyForm struct {
	repo     Repository
	storage  assetstorage.Storage
	notifier Notifier

	state     State
	editID    string
	routeCode string

	fixed  models.FixedFields
	lists  map[string][]string
	staged map[string]string

	pending       *PendingImage
	preview       string
	originalImage string
}

// NewCreateForm builds a Ready form in create mode. The department code
// comes from the route context; the display name is derived from it.
func NewCreateForm(departmentCode string, repo Repository, storage assetstorage.Storage, notifier Notifier) *FacultyForm {
	f := &FacultyForm{
		repo:      repo,
		storage:   storage,
		notifier:  notifier,
		routeCode: strings.ToUpper(strings.TrimSpace(departmentCode)),
	}
	f.resetToDefaults()
	f.state = StateReady
	return f
}

// LoadForEdit builds a form in edit mode by fetching the record. A fetch
// failure leaves the form in StateLoadFailed; that instance shows no
// partial form and accepts nothing further.
func LoadForEdit(ctx context.Context, id, departmentCode string, repo Repository, storage assetstorage.Storage, notifier Notifier) (*FacultyForm, error) {
	f := &FacultyForm{
		repo:      repo,
		storage:   storage,
		notifier:  notifier,
		routeCode: strings.ToUpper(strings.TrimSpace(departmentCode)),
		editID:    id,
		state:     StateLoading,
	}

	record, err := repo.GetByID(ctx, id)
	if err != nil {
		f.state = StateLoadFailed
		f.notifier.Error("Failed to fetch faculty details.")
		return f, err
	}

	// Normalization happened at read time: missing fixed fields are
	// empty, missing repeatable keys are empty lists.
	f.fixed = record.Fixed
	f.lists = cloneLists(record.Lists)
	f.staged = make(map[string]string, len(models.RepeatableFields))

	// An existing photo is both the live preview and the baseline used
	// to detect explicit removal on submit.
	f.preview = record.Fixed.Image
	f.originalImage = record.Fixed.Image

	f.state = StateReady
	return f, nil
}

// State returns the current workflow state.
func (f *FacultyForm) State() State {
	return f.state
}

// IsEdit reports whether the form mutates an existing record.
func (f *FacultyForm) IsEdit() bool {
	return f.editID != ""
}

// FixedFields returns a copy of the current fixed-field values.
func (f *FacultyForm) FixedFields() models.FixedFields {
	return f.fixed
}

// Entries returns a copy of a repeatable field's current list.
func (f *FacultyForm) Entries(key string) []string {
	return append([]string(nil), f.lists[key]...)
}

// StagedInput returns the staged, not yet added input for a field.
func (f *FacultyForm) StagedInput(key string) string {
	return f.staged[key]
}

// PreviewURL returns the stored-image preview URL ("" when none).
func (f *FacultyForm) PreviewURL() string {
	return f.preview
}

// HasPendingImage reports whether a local file awaits upload.
func (f *FacultyForm) HasPendingImage() bool {
	return f.pending != nil
}

// SetField replaces a single-valued field. Unknown names and any state
// but Ready are no-ops.
func (f *FacultyForm) SetField(name, value string) {
	if f.state != StateReady {
		return
	}

	switch name {
	case "name":
		f.fixed.Name = value
	case "designation":
		f.fixed.Designation = value
	case "qualification":
		f.fixed.Qualification = value
	case "specialization":
		f.fixed.Specialization = value
	case "email":
		f.fixed.Email = value
	case "contact":
		f.fixed.Contact = value
	case "joinDate":
		f.fixed.JoinDate = value
	}
}

// StageInput stores the in-progress input for a repeatable field.
func (f *FacultyForm) StageInput(key, text string) {
	if f.state != StateReady || !models.IsRepeatableField(key) {
		return
	}
	f.staged[key] = text
}

// AddEntry appends the staged input to the field's list and clears the
// staged input. Values that are empty after trimming are discarded
// silently; the list is unchanged.
func (f *FacultyForm) AddEntry(key string) {
	if f.state != StateReady || !models.IsRepeatableField(key) {
		return
	}

	value := strings.TrimSpace(f.staged[key])
	if value == "" {
		return
	}

	f.lists[key] = append(f.lists[key], value)
	f.staged[key] = ""
}

// RemoveEntry removes the entry at idx from a field's list. Removal is
// by position at the time of the action; out-of-range indices are no-ops.
func (f *FacultyForm) RemoveEntry(key string, idx int) {
	if f.state != StateReady || !models.IsRepeatableField(key) {
		return
	}

	list := f.lists[key]
	if idx < 0 || idx >= len(list) {
		return
	}
	f.lists[key] = append(list[:idx], list[idx+1:]...)
}

// SelectImage replaces any pending selection with a new one, releasing
// the superseded preview resource. Storage is not touched until submit.
func (f *FacultyForm) SelectImage(pending *PendingImage) {
	if f.state != StateReady || pending == nil {
		return
	}
	f.releasePending()
	f.pending = pending
}

// RemoveImage clears both the pending selection and the preview. For an
// edit-mode record with a stored photo this marks the photo for deletion
// at submit time.
func (f *FacultyForm) RemoveImage() {
	if f.state != StateReady {
		return
	}
	f.releasePending()
	f.preview = ""
}

// Submit runs the submit sequence and returns the redirect target on
// success. On any failure the form keeps every field value and returns
// to Ready so the user can retry; nothing retries automatically.
func (f *FacultyForm) Submit(ctx context.Context) (string, error) {
	if f.state != StateReady {
		return "", apperrors.NewBadRequestError("form is not ready to submit")
	}
	f.state = StateSubmitting

	imageURL, err := f.resolveImage(ctx)
	if err != nil {
		f.fail(err)
		return "", err
	}

	record := &models.FacultyRecord{
		Fixed: f.fixed,
		Lists: cloneLists(f.lists),
	}
	record.Fixed.DepartmentCode = strings.ToLower(f.fixed.DepartmentCode)
	record.Fixed.Image = imageURL

	if f.IsEdit() {
		err = f.repo.Update(ctx, f.editID, record)
	} else {
		_, err = f.repo.Create(ctx, record)
	}
	if err != nil {
		f.fail(err)
		return "", err
	}

	if f.IsEdit() {
		f.notifier.Success("Faculty updated successfully!")
	} else {
		f.notifier.Success("Faculty added successfully!")
	}

	f.resetToDefaults()
	f.state = StateSucceeded
	return "/dashboard/faculty/" + f.routeCode, nil
}

// resolveImage computes the effective image URL for this submit.
//
// Removal-without-replacement is the only branch that deletes the old
// asset: when a new file is pending, the original is left behind even if
// the user removed it first. That mirrors the source behavior; whether
// the leaked asset is intentional there is an open question, so it is
// preserved rather than fixed.
func (f *FacultyForm) resolveImage(ctx context.Context) (string, error) {
	if f.IsEdit() && f.originalImage != "" && f.preview == "" && f.pending == nil {
		// Explicitly removed, nothing replacing it. Best-effort delete.
		if err := f.storage.Delete(ctx, f.originalImage); err != nil {
			logger.Warn().Err(err).Str("url", f.originalImage).Msg("Failed to delete removed faculty image")
		}
		return "", nil
	}

	if f.pending != nil {
		url, err := f.storage.Upload(ctx, f.pending.Filename, f.pending.Content)
		if err != nil {
			return "", fmt.Errorf("image upload failed: %w", err)
		}
		return url, nil
	}

	return f.preview, nil
}

// fail surfaces the error and returns the form to Ready with all field
// values intact.
func (f *FacultyForm) fail(err error) {
	if f.IsEdit() {
		f.notifier.Error("Failed to update faculty.")
	} else {
		f.notifier.Error("Failed to add faculty.")
	}
	logger.Error().Err(err).Bool("edit", f.IsEdit()).Msg("Faculty form submit failed")
	f.state = StateReady
}

// resetToDefaults restores the create-mode empty state: blank fixed
// fields with the route's department pre-filled, empty lists for every
// repeatable key, no staged inputs, no image.
func (f *FacultyForm) resetToDefaults() {
	f.releasePending()
	f.fixed = models.FixedFields{
		DepartmentCode: strings.ToLower(f.routeCode),
		DepartmentName: models.DepartmentNameFor(f.routeCode),
	}
	f.lists = models.EmptyLists()
	f.staged = make(map[string]string, len(models.RepeatableFields))
	f.preview = ""
	f.originalImage = ""
}

// releasePending frees the pending image's preview resource, if any.
func (f *FacultyForm) releasePending() {
	if f.pending != nil && f.pending.Release != nil {
		f.pending.Release()
	}
	f.pending = nil
}

func cloneLists(lists map[string][]string) map[string][]string {
	clone := make(map[string][]string, len(lists))
	for key, list := range lists {
		clone[key] = append([]string(nil), list...)
	}
	return clone
}
