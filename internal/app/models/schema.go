package models

// FieldDef declares one repeatable list field of a faculty record.
type FieldDef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// RepeatableFields is the fixed, ordered set of list-valued fields every
// faculty record carries. Form rendering, empty-state initialization and
// read-time normalization are all driven from this table.
var RepeatableFields = []FieldDef{
	{Key: "experience", Label: "Experience"},
	{Key: "publications", Label: "Publications"},
	{Key: "conferences", Label: "Conferences"},
	{Key: "memberships", Label: "Memberships"},
	{Key: "teachingInterests", Label: "Teaching Interests"},
	{Key: "researchInterest", Label: "Research Interest"},
	{Key: "expertise", Label: "Expertise (software/technology/machine)"},
	{Key: "subjectsHandled", Label: "Subjects handled"},
	{Key: "fdps", Label: "FDP's, Trainings/Certificate courses (Major Only)"},
	{Key: "achievements", Label: "Achievements"},
	{Key: "positionsHeld", Label: "Positions held"},
	{Key: "website", Label: "Website"},
}

// IsRepeatableField reports whether key names a declared list field.
func IsRepeatableField(key string) bool {
	for _, f := range RepeatableFields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// EmptyLists returns a fresh list map with every repeatable key present
// and empty.
func EmptyLists() map[string][]string {
	lists := make(map[string][]string, len(RepeatableFields))
	for _, f := range RepeatableFields {
		lists[f.Key] = []string{}
	}
	return lists
}
