package unit

import (
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/validator"
)

// UnitResponse represents the response structure for a unit.
type UnitResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DepartmentID string  `json:"department_id"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// CreateUnitRequest represents the request structure for creating a unit.
type CreateUnitRequest struct {
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}

func (r *CreateUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// DepartmentID
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	} else if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUnitRequest represents the request structure for updating a unit.
// Supervisor assignment goes through AssignUnitSupervisor, not here.
type UpdateUnitRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListUnitsFilter narrows List results.
type ListUnitsFilter struct {
	DepartmentID *string
	IsActive     *bool
}
