package user

import (
	"strings"
	"time"
)

// EmployeeStatus is the current working state of a user.
type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "ACTIVE"
	StatusOnLeave    EmployeeStatus = "ON_LEAVE"
	StatusSuspended  EmployeeStatus = "SUSPENDED"
	StatusTerminated EmployeeStatus = "TERMINATED"
	StatusResigned   EmployeeStatus = "RESIGNED"
)

// ApprovalLevel classifies how much attendance/leave approval authority a
// user holds. Ordered STAFF < SUPERVISOR < DEPT_HEAD < HR_ADMIN/IT_ADMIN <
// DEPUTY_DIR < DIRECTOR; the two admin levels are parallel, not ordered
// relative to each other.
type ApprovalLevel string

const (
	LevelStaff          ApprovalLevel = "STAFF"
	LevelSupervisor     ApprovalLevel = "SUPERVISOR"
	LevelDeptHead       ApprovalLevel = "DEPT_HEAD"
	LevelHRAdmin        ApprovalLevel = "HR_ADMIN"
	LevelITAdmin        ApprovalLevel = "IT_ADMIN"
	LevelDeputyDirector ApprovalLevel = "DEPUTY_DIR"
	LevelDirector       ApprovalLevel = "DIRECTOR"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "SINGLE"
	MaritalMarried  MaritalStatus = "MARRIED"
	MaritalDivorced MaritalStatus = "DIVORCED"
	MaritalWidowed  MaritalStatus = "WIDOWED"
)

// Enum value lists for request validation.
var (
	EmployeeStatuses = []string{
		string(StatusActive), string(StatusOnLeave), string(StatusSuspended),
		string(StatusTerminated), string(StatusResigned),
	}
	ApprovalLevels = []string{
		string(LevelStaff), string(LevelSupervisor), string(LevelDeptHead),
		string(LevelHRAdmin), string(LevelITAdmin), string(LevelDeputyDirector),
		string(LevelDirector),
	}
	Genders         = []string{string(GenderMale), string(GenderFemale)}
	MaritalStatuses = []string{
		string(MaritalSingle), string(MaritalMarried),
		string(MaritalDivorced), string(MaritalWidowed),
	}
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	MiddleName   *string
	LastName     string

	Gender        *Gender
	DateOfBirth   *time.Time
	MaritalStatus *MaritalStatus

	PhoneNumber    *string
	AlternatePhone *string
	Address        *string
	City           *string
	State          *string
	Country        string
	Nationality    *string

	BankName              *string
	AccountNumber         *string
	EmergencyContactName  *string
	EmergencyContactPhone *string

	DepartmentID     *string
	UnitID           *string
	OfficeLocationID *string
	ReportsToID      *string

	EmployeeStatus EmployeeStatus
	ApprovalLevel  ApprovalLevel

	DateJoined  time.Time
	LastLogin   *time.Time
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName joins first, middle and last name, skipping absent parts.
func (u *User) FullName() string {
	parts := []string{u.FirstName}
	if u.MiddleName != nil && strings.TrimSpace(*u.MiddleName) != "" {
		parts = append(parts, *u.MiddleName)
	}
	parts = append(parts, u.LastName)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// ShortName returns the user's first name.
func (u *User) ShortName() string {
	return u.FirstName
}

// CanApprove checks if the user holds any approval authority. Only STAFF
// cannot approve; whose requests a holder actually approves is decided by
// the attendance workflow, not here.
func (u *User) CanApprove() bool {
	switch u.ApprovalLevel {
	case LevelSupervisor, LevelDeptHead, LevelHRAdmin, LevelITAdmin,
		LevelDeputyDirector, LevelDirector:
		return true
	}
	return false
}

// IsCurrentlySuspended checks if the user is suspended; used as a gate to
// block clock-in actions.
func (u *User) IsCurrentlySuspended() bool {
	return u.EmployeeStatus == StatusSuspended
}

// AgeAt returns the user's whole-year age at the given time, or nil when no
// date of birth is recorded. The year difference is reduced by one until the
// birthday (month, day) has passed.
func (u *User) AgeAt(t time.Time) *int {
	if u.DateOfBirth == nil {
		return nil
	}
	dob := *u.DateOfBirth
	years := t.Year() - dob.Year()
	if t.Month() < dob.Month() || (t.Month() == dob.Month() && t.Day() < dob.Day()) {
		years--
	}
	return &years
}

// Age returns the user's current whole-year age, or nil when no date of
// birth is recorded.
func (u *User) Age() *int {
	return u.AgeAt(time.Now())
}
