package fixtures

import (
	"github.com/horizonhr-ng/people-backend-go/internal/domain/department"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/officelocation"
)

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededOrgIDs holds IDs of all seeded default org records
type SeededOrgIDs struct {
	// Department IDs by name
	DepartmentIDs map[string]string // e.g., "Human Resources" -> "uuid"

	// Unit IDs by department name, then unit name
	UnitIDs map[string]map[string]string // e.g., "Human Resources" -> {"Talent Acquisition": "uuid"}

	// Office location IDs by name
	OfficeLocationIDs map[string]string // e.g., "Head Office" -> "uuid"
}

// NewSeededOrgIDs creates a new SeededOrgIDs with initialized maps
func NewSeededOrgIDs() *SeededOrgIDs {
	return &SeededOrgIDs{
		DepartmentIDs:     make(map[string]string),
		UnitIDs:           make(map[string]map[string]string),
		OfficeLocationIDs: make(map[string]string),
	}
}

// ==========================================
// DEFAULT DEPARTMENTS
// ==========================================

// GetDefaultDepartments returns the standard departments for a new organization
func GetDefaultDepartments() []department.Department {
	return []department.Department{
		{Name: "Information Technology", Description: "Software, infrastructure and end-user support"},
		{Name: "Human Resources", Description: "Recruitment, welfare and employee records"},
		{Name: "Finance and Accounts", Description: "Budgeting, payments and payroll"},
		{Name: "Administration", Description: "Facilities, logistics and procurement"},
		{Name: "Corporate Planning", Description: "Strategy, research and performance monitoring"},
	}
}

// ==========================================
// DEFAULT UNITS
// ==========================================

// UnitDefinition ties a default unit to its parent department by name;
// the name is resolved to a department ID at seeding time
type UnitDefinition struct {
	DepartmentName string
	Name           string
}

// GetDefaultUnits returns the standard units under the default departments
func GetDefaultUnits() []UnitDefinition {
	return []UnitDefinition{
		{DepartmentName: "Information Technology", Name: "Software Development"},
		{DepartmentName: "Information Technology", Name: "Network Infrastructure"},
		{DepartmentName: "Information Technology", Name: "Service Desk"},

		{DepartmentName: "Human Resources", Name: "Talent Acquisition"},
		{DepartmentName: "Human Resources", Name: "Employee Relations"},

		{DepartmentName: "Finance and Accounts", Name: "Payroll"},
		{DepartmentName: "Finance and Accounts", Name: "Expenditure Control"},

		{DepartmentName: "Administration", Name: "Facilities"},
		{DepartmentName: "Administration", Name: "Procurement"},

		{DepartmentName: "Corporate Planning", Name: "Monitoring and Evaluation"},
	}
}

// ==========================================
// DEFAULT OFFICE LOCATIONS
// ==========================================

// GetDefaultOfficeLocations returns the standard office locations for a new
// organization
func GetDefaultOfficeLocations() []officelocation.OfficeLocation {
	return []officelocation.OfficeLocation{
		{Name: "Head Office", Address: "Plot 28 Port Harcourt Crescent, Area 11, Garki, Abuja"},
		{Name: "Lagos Regional Office", Address: "14 Saka Tinubu Street, Victoria Island, Lagos"},
		{Name: "Port Harcourt Regional Office", Address: "7 Aba Road, Port Harcourt, Rivers"},
	}
}
