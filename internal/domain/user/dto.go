package user

import (
	"time"

	"github.com/horizonhr-ng/people-backend-go/internal/pkg/validator"
)

// UserResponse represents the response structure for a user.
type UserResponse struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	MiddleName       *string    `json:"middle_name,omitempty"`
	LastName         string     `json:"last_name"`
	FullName         string     `json:"full_name"`
	Gender           *string    `json:"gender,omitempty"`
	DateOfBirth      *string    `json:"date_of_birth,omitempty"`
	MaritalStatus    *string    `json:"marital_status,omitempty"`
	PhoneNumber      *string    `json:"phone_number,omitempty"`
	Country          string     `json:"country"`
	DepartmentID     *string    `json:"department_id,omitempty"`
	UnitID           *string    `json:"unit_id,omitempty"`
	OfficeLocationID *string    `json:"office_location_id,omitempty"`
	ReportsToID      *string    `json:"reports_to_id,omitempty"`
	EmployeeStatus   string     `json:"employee_status"`
	ApprovalLevel    string     `json:"approval_level"`
	DateJoined       string     `json:"date_joined"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	IsActive         bool       `json:"is_active"`
	IsStaff          bool       `json:"is_staff"`
	IsSuperuser      bool       `json:"is_superuser"`
}

// CreateUserRequest represents the request structure for creating a user.
// Dates use the YYYY-MM-DD format.
type CreateUserRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`

	Gender        *string `json:"gender,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	MaritalStatus *string `json:"marital_status,omitempty"`

	PhoneNumber    *string `json:"phone_number,omitempty"`
	AlternatePhone *string `json:"alternate_phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	Country        *string `json:"country,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`

	BankName              *string `json:"bank_name,omitempty"`
	AccountNumber         *string `json:"account_number,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`

	DepartmentID     *string `json:"department_id,omitempty"`
	UnitID           *string `json:"unit_id,omitempty"`
	OfficeLocationID *string `json:"office_location_id,omitempty"`
	ReportsToID      *string `json:"reports_to_id,omitempty"`

	EmployeeStatus *string `json:"employee_status,omitempty"`
	ApprovalLevel  *string `json:"approval_level,omitempty"`
	DateJoined     *string `json:"date_joined,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	// Names
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	errs = append(errs, validateOptionalFields(optionalUserFields{
		Gender:           r.Gender,
		DateOfBirth:      r.DateOfBirth,
		MaritalStatus:    r.MaritalStatus,
		PhoneNumber:      r.PhoneNumber,
		AlternatePhone:   r.AlternatePhone,
		DepartmentID:     r.DepartmentID,
		UnitID:           r.UnitID,
		OfficeLocationID: r.OfficeLocationID,
		ReportsToID:      r.ReportsToID,
		EmployeeStatus:   r.EmployeeStatus,
		ApprovalLevel:    r.ApprovalLevel,
		DateJoined:       r.DateJoined,
	})...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents the request structure for a partial user
// update. Nil fields stay unchanged; for the nullable link and profile
// fields an empty string clears the stored value.
type UpdateUserRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`

	Gender        *string `json:"gender,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	MaritalStatus *string `json:"marital_status,omitempty"`

	PhoneNumber    *string `json:"phone_number,omitempty"`
	AlternatePhone *string `json:"alternate_phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	Country        *string `json:"country,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`

	BankName              *string `json:"bank_name,omitempty"`
	AccountNumber         *string `json:"account_number,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`

	DepartmentID     *string `json:"department_id,omitempty"`
	UnitID           *string `json:"unit_id,omitempty"`
	OfficeLocationID *string `json:"office_location_id,omitempty"`
	ReportsToID      *string `json:"reports_to_id,omitempty"`

	EmployeeStatus *string `json:"employee_status,omitempty"`
	ApprovalLevel  *string `json:"approval_level,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}

	errs = append(errs, validateOptionalFields(optionalUserFields{
		Gender:           r.Gender,
		DateOfBirth:      r.DateOfBirth,
		MaritalStatus:    r.MaritalStatus,
		PhoneNumber:      r.PhoneNumber,
		AlternatePhone:   r.AlternatePhone,
		DepartmentID:     r.DepartmentID,
		UnitID:           r.UnitID,
		OfficeLocationID: r.OfficeLocationID,
		ReportsToID:      r.ReportsToID,
		EmployeeStatus:   r.EmployeeStatus,
		ApprovalLevel:    r.ApprovalLevel,
	})...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// optionalUserFields are the fields shared by the create and update requests
// whose values are only checked when present.
type optionalUserFields struct {
	Gender           *string
	DateOfBirth      *string
	MaritalStatus    *string
	PhoneNumber      *string
	AlternatePhone   *string
	DepartmentID     *string
	UnitID           *string
	OfficeLocationID *string
	ReportsToID      *string
	EmployeeStatus   *string
	ApprovalLevel    *string
	DateJoined       *string
}

func validateOptionalFields(f optionalUserFields) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if f.Gender != nil && *f.Gender != "" && !validator.IsInSlice(*f.Gender, Genders) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be M or F",
		})
	}
	if f.DateOfBirth != nil && *f.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*f.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}
	if f.MaritalStatus != nil && *f.MaritalStatus != "" && !validator.IsInSlice(*f.MaritalStatus, MaritalStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "marital_status",
			Message: "marital_status must be one of SINGLE, MARRIED, DIVORCED, WIDOWED",
		})
	}
	if f.PhoneNumber != nil && *f.PhoneNumber != "" && !validator.IsValidPhoneNumber(*f.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 9-15 digits with an optional leading +",
		})
	}
	if f.AlternatePhone != nil && *f.AlternatePhone != "" && !validator.IsValidPhoneNumber(*f.AlternatePhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "alternate_phone",
			Message: "alternate_phone must be 9-15 digits with an optional leading +",
		})
	}

	uuidFields := map[string]*string{
		"department_id":      f.DepartmentID,
		"unit_id":            f.UnitID,
		"office_location_id": f.OfficeLocationID,
		"reports_to_id":      f.ReportsToID,
	}
	for field, value := range uuidFields {
		if value != nil && *value != "" && !validator.IsValidUUID(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid UUID",
			})
		}
	}

	if f.EmployeeStatus != nil && *f.EmployeeStatus != "" && !validator.IsInSlice(*f.EmployeeStatus, EmployeeStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_status",
			Message: "employee_status must be one of ACTIVE, ON_LEAVE, SUSPENDED, TERMINATED, RESIGNED",
		})
	}
	if f.ApprovalLevel != nil && *f.ApprovalLevel != "" && !validator.IsInSlice(*f.ApprovalLevel, ApprovalLevels) {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_level",
			Message: "approval_level must be one of STAFF, SUPERVISOR, DEPT_HEAD, HR_ADMIN, IT_ADMIN, DEPUTY_DIR, DIRECTOR",
		})
	}
	if f.DateJoined != nil && *f.DateJoined != "" {
		if _, ok := validator.IsValidDate(*f.DateJoined); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_joined",
				Message: "date_joined must be in YYYY-MM-DD format",
			})
		}
	}

	return errs
}

// ListUsersFilter narrows List results.
type ListUsersFilter struct {
	DepartmentID     *string
	UnitID           *string
	OfficeLocationID *string
	EmployeeStatus   *string
	ApprovalLevel    *string
	IsActive         *bool
	Search           string
}
