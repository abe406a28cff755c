package dto

import (
	"time"

	"github.com/campusdesk/campusdesk/internal/app/models"
)

// FacultyRequest represents faculty profile data submitted by the
// dashboard form. Repeatable fields arrive as repeated form values, one
// finalized entry per value. The photo travels as the multipart "image"
// file part and is not part of this struct; RemoveImage marks an existing
// photo for removal when no replacement file is attached.
type FacultyRequest struct {
	Name           string `form:"name" binding:"required"`
	Designation    string `form:"designation"`
	Qualification  string `form:"qualification"`
	Specialization string `form:"specialization"`
	Email          string `form:"email"`
	Contact        string `form:"contact"`
	JoinDate       string `form:"joinDate"`
	DepartmentCode string `form:"departmentCode" binding:"required"`

	Experience        []string `form:"experience"`
	Publications      []string `form:"publications"`
	Conferences       []string `form:"conferences"`
	Memberships       []string `form:"memberships"`
	TeachingInterests []string `form:"teachingInterests"`
	ResearchInterest  []string `form:"researchInterest"`
	Expertise         []string `form:"expertise"`
	SubjectsHandled   []string `form:"subjectsHandled"`
	FDPs              []string `form:"fdps"`
	Achievements      []string `form:"achievements"`
	PositionsHeld     []string `form:"positionsHeld"`
	Website           []string `form:"website"`

	RemoveImage bool `form:"removeImage"`
}

// Lists collects the repeatable field values keyed by field name.
func (r *FacultyRequest) Lists() map[string][]string {
	return map[string][]string{
		"experience":        r.Experience,
		"publications":      r.Publications,
		"conferences":       r.Conferences,
		"memberships":       r.Memberships,
		"teachingInterests": r.TeachingInterests,
		"researchInterest":  r.ResearchInterest,
		"expertise":         r.Expertise,
		"subjectsHandled":   r.SubjectsHandled,
		"fdps":              r.FDPs,
		"achievements":      r.Achievements,
		"positionsHeld":     r.PositionsHeld,
		"website":           r.Website,
	}
}

// FacultyResponse represents a full faculty profile
type FacultyResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Designation    string    `json:"designation"`
	Qualification  string    `json:"qualification"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Contact        string    `json:"contact"`
	JoinDate       string    `json:"joinDate"`
	DepartmentCode string    `json:"departmentCode"`
	DepartmentName string    `json:"departmentName"`
	Image          string    `json:"image"`
	CreatedAt      time.Time `json:"createdAt"`

	Experience        []string `json:"experience"`
	Publications      []string `json:"publications"`
	Conferences       []string `json:"conferences"`
	Memberships       []string `json:"memberships"`
	TeachingInterests []string `json:"teachingInterests"`
	ResearchInterest  []string `json:"researchInterest"`
	Expertise         []string `json:"expertise"`
	SubjectsHandled   []string `json:"subjectsHandled"`
	FDPs              []string `json:"fdps"`
	Achievements      []string `json:"achievements"`
	PositionsHeld     []string `json:"positionsHeld"`
	Website           []string `json:"website"`
}

// FacultyListResponse represents a department's faculty listing
type FacultyListResponse struct {
	DepartmentCode string            `json:"departmentCode"`
	DepartmentName string            `json:"departmentName"`
	Faculties      []FacultyResponse `json:"faculties"`
}

// ToFacultyResponse maps a record to its response shape. Every repeatable
// field is present in the output, empty lists included.
func ToFacultyResponse(record *models.FacultyRecord) FacultyResponse {
	lists := func(key string) []string {
		if list := record.Lists[key]; list != nil {
			return list
		}
		return []string{}
	}

	return FacultyResponse{
		ID:             record.ID,
		Name:           record.Fixed.Name,
		Designation:    record.Fixed.Designation,
		Qualification:  record.Fixed.Qualification,
		Specialization: record.Fixed.Specialization,
		Email:          record.Fixed.Email,
		Contact:        record.Fixed.Contact,
		JoinDate:       record.Fixed.JoinDate,
		DepartmentCode: record.Fixed.DepartmentCode,
		DepartmentName: record.Fixed.DepartmentName,
		Image:          record.Fixed.Image,
		CreatedAt:      record.CreatedAt,

		Experience:        lists("experience"),
		Publications:      lists("publications"),
		Conferences:       lists("conferences"),
		Memberships:       lists("memberships"),
		TeachingInterests: lists("teachingInterests"),
		ResearchInterest:  lists("researchInterest"),
		Expertise:         lists("expertise"),
		SubjectsHandled:   lists("subjectsHandled"),
		FDPs:              lists("fdps"),
		Achievements:      lists("achievements"),
		PositionsHeld:     lists("positionsHeld"),
		Website:           lists("website"),
	}
}
