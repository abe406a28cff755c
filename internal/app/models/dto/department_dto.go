package dto

// DepartmentResponse represents a department the dashboard can browse
type DepartmentResponse struct {
	Code string `json:"code" example:"CSE"`
	Name string `json:"name" example:"Computer Science & Engineering"`
}

// DepartmentListResponse represents the full department directory
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
