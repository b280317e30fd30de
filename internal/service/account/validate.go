package account

import (
	"context"

	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
)

// effectiveRef resolves what a nullable reference field will hold after an
// update request is applied: nil keeps the current value, an empty string
// clears it.
func effectiveRef(requested, current *string) *string {
	if requested == nil {
		return current
	}
	if *requested == "" {
		return nil
	}
	return requested
}

// validateHierarchy enforces the reporting rules before a user row is
// written. userID is empty for a user being created, which skips the checks
// that need an identity of their own.
//
// Rules, in order:
//  1. a user cannot report to themselves
//  2. a user assigned to a unit cannot report to a manager from another
//     department; managers without a department are allowed anywhere
//  3. the reporting chain upward from the manager must not loop back to
//     the user
func (s *accountServiceImpl) validateHierarchy(ctx context.Context, userID string, unitID, reportsToID *string) error {
	if reportsToID == nil {
		return nil
	}

	if userID != "" && *reportsToID == userID {
		return user.ErrSelfReport
	}

	manager, err := s.userRepo.GetByID(ctx, *reportsToID)
	if err != nil {
		return err
	}

	if unitID != nil {
		assignedUnit, err := s.unitRepo.GetByID(ctx, *unitID)
		if err != nil {
			return err
		}
		if manager.DepartmentID != nil && *manager.DepartmentID != assignedUnit.DepartmentID {
			return user.ErrCrossDepartmentSupervision
		}
	}

	if userID == "" {
		return nil
	}

	// Walk the chain upward from the manager. Reaching the user means this
	// assignment would close a loop. A loop higher up that does not include
	// the user is left for its own members' updates to surface.
	visited := map[string]bool{manager.ID: true}
	current := manager
	for current.ReportsToID != nil {
		nextID := *current.ReportsToID
		if nextID == userID {
			return user.ErrReportingCycle
		}
		if visited[nextID] {
			return nil
		}
		visited[nextID] = true

		current, err = s.userRepo.GetByID(ctx, nextID)
		if err != nil {
			return err
		}
	}

	return nil
}
