package directory

import "context"

// DirectoryService defines the interface for reporting-hierarchy resolution
type DirectoryService interface {
	// Supervisor resolves who handles the user's approvals day to day: the
	// supervisor of the user's unit. Returns nil without error when the
	// user has no unit or the unit has no supervisor.
	Supervisor(ctx context.Context, userID string) (*PersonSummary, error)

	// DepartmentHead resolves the head of the user's department. Returns
	// nil without error when the user has no department or the department
	// has no head.
	DepartmentHead(ctx context.Context, userID string) (*PersonSummary, error)

	// IsDepartmentHead reports whether the user heads any department
	IsDepartmentHead(ctx context.Context, userID string) (bool, error)

	// IsUnitSupervisor reports whether the user supervises any unit
	IsUnitSupervisor(ctx context.Context, userID string) (bool, error)

	// Subordinates returns the user's direct reports, one level deep
	Subordinates(ctx context.Context, userID string) ([]PersonSummary, error)

	// CanApprove reports whether the user holds any approval authority
	CanApprove(ctx context.Context, userID string) (bool, error)

	// IsCurrentlySuspended reports whether the user is suspended right now
	IsCurrentlySuspended(ctx context.Context, userID string) (bool, error)

	// Age returns the user's whole-year age, nil when no date of birth is
	// recorded
	Age(ctx context.Context, userID string) (*int, error)

	// OrgProfile returns the combined hierarchy view using parallel lookups
	OrgProfile(ctx context.Context, userID string) (*OrgProfileResponse, error)
}
