package unit

import "time"

// Unit is a team inside a department. SupervisorID points at the single user
// supervising the unit; a user supervises at most one unit. Unit names are
// unique within their department, not globally.
type Unit struct {
	ID           string
	Name         string
	DepartmentID string
	SupervisorID *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
