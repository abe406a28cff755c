package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FixedFields are the single-valued fields of a faculty record. An empty
// Image means no photo. DepartmentCode is persisted lower-cased and
// displayed upper-cased; DepartmentName is redundantly stored and
// re-derived from the code when absent.
type FixedFields struct {
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	JoinDate       string `json:"joinDate"`
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
	Image          string `json:"image"`
}

// FacultyRecord is a faculty profile document. The id is assigned by the
// repository on creation and opaque to everything else.
type FacultyRecord struct {
	ID        string              `json:"id"`
	Fixed     FixedFields         `json:"-"`
	Lists     map[string][]string `json:"-"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Document flattens the record into the stored document shape: fixed
// fields and every repeatable list at the top level, like the source
// collection keeps them.
func (r *FacultyRecord) Document() map[string]interface{} {
	doc := map[string]interface{}{
		"name":           r.Fixed.Name,
		"designation":    r.Fixed.Designation,
		"qualification":  r.Fixed.Qualification,
		"specialization": r.Fixed.Specialization,
		"email":          r.Fixed.Email,
		"contact":        r.Fixed.Contact,
		"joinDate":       r.Fixed.JoinDate,
		"departmentCode": strings.ToLower(r.Fixed.DepartmentCode),
		"departmentName": r.Fixed.DepartmentName,
		"image":          r.Fixed.Image,
	}
	for _, f := range RepeatableFields {
		list := r.Lists[f.Key]
		if list == nil {
			list = []string{}
		}
		doc[f.Key] = list
	}
	return doc
}

// MarshalDocument serializes the stored document.
func (r *FacultyRecord) MarshalDocument() ([]byte, error) {
	data, err := json.Marshal(r.Document())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal faculty document: %w", err)
	}
	return data, nil
}

// FacultyRecordFromDocument rebuilds a record from a stored document and
// normalizes it: missing fixed fields read as empty strings, missing
// repeatable keys read as empty lists (never an error), and the
// department name is re-derived from the code when absent.
func FacultyRecordFromDocument(id string, data []byte, createdAt time.Time) (*FacultyRecord, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal faculty document: %w", err)
	}

	record := &FacultyRecord{
		ID:        id,
		CreatedAt: createdAt,
		Fixed: FixedFields{
			Name:           docString(doc, "name"),
			Designation:    docString(doc, "designation"),
			Qualification:  docString(doc, "qualification"),
			Specialization: docString(doc, "specialization"),
			Email:          docString(doc, "email"),
			Contact:        docString(doc, "contact"),
			JoinDate:       docString(doc, "joinDate"),
			DepartmentCode: docString(doc, "departmentCode"),
			DepartmentName: docString(doc, "departmentName"),
			Image:          docString(doc, "image"),
		},
		Lists: make(map[string][]string, len(RepeatableFields)),
	}

	if record.Fixed.DepartmentName == "" {
		record.Fixed.DepartmentName = DepartmentNameFor(record.Fixed.DepartmentCode)
	}

	for _, f := range RepeatableFields {
		record.Lists[f.Key] = docStringList(doc, f.Key)
	}

	return record, nil
}

func docString(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docStringList(doc map[string]interface{}, key string) []string {
	raw, ok := doc[key].([]interface{})
	if !ok {
		return []string{}
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list
}
