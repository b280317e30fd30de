package officelocation

import (
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/validator"
)

// OfficeLocationResponse represents the response structure for an office location.
type OfficeLocationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
}

// CreateOfficeLocationRequest represents the request structure for creating an office location.
type CreateOfficeLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

func (r *CreateOfficeLocationRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateOfficeLocationRequest represents the request structure for updating an office location.
type UpdateOfficeLocationRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateOfficeLocationRequest) Validate() error {
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

// ListOfficeLocationsFilter narrows List results.
type ListOfficeLocationsFilter struct {
	IsActive *bool
}
