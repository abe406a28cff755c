package models

import "strings"

// Department is one entry of the fixed department table.
type Department struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Departments is the ordered department listing shown on the dashboard.
var Departments = []Department{
	{Code: "CE", Name: "Civil Engineering"},
	{Code: "EEE", Name: "Electrical & Electronics Engineering"},
	{Code: "ME", Name: "Mechanical Engineering"},
	{Code: "CSE", Name: "Computer Science & Engineering"},
	{Code: "SH", Name: "Science & Humanities"},
	{Code: "CGP", Name: "Career Guidance & Placement"},
	{Code: "PE", Name: "Physical Education"},
}

// DepartmentMap resolves an upper-cased department code to its display name.
var DepartmentMap = map[string]string{
	"CE":  "Civil Engineering",
	"EEE": "Electrical & Electronics Engineering",
	"ME":  "Mechanical Engineering",
	"CSE": "Computer Science & Engineering",
	"SH":  "Science & Humanities",
	"CGP": "Career Guidance & Placement",
	"PE":  "Physical Education",
}

// DepartmentNameFor derives the display name for a department code of any
// casing. Unknown codes yield an empty name.
func DepartmentNameFor(code string) string {
	return DepartmentMap[strings.ToUpper(strings.TrimSpace(code))]
}
