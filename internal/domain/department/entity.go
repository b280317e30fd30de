package department

import "time"

// Department groups units and employees. HeadID points at the single user
// heading the department; a user heads at most one department.
type Department struct {
	ID          string
	Name        string
	Description string
	HeadID      *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
