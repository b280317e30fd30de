package directory

import (
	"context"
	"errors"

	"github.com/horizonhr-ng/people-backend-go/internal/domain/department"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/directory"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/unit"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DirectoryServiceImpl struct {
	userRepo       user.UserRepository
	departmentRepo department.DepartmentRepository
	unitRepo       unit.UnitRepository
}

func NewDirectoryService(
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	unitRepo unit.UnitRepository,
) directory.DirectoryService {
	return &DirectoryServiceImpl{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		unitRepo:       unitRepo,
	}
}

func (s *DirectoryServiceImpl) Supervisor(ctx context.Context, userID string) (*directory.PersonSummary, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.supervisorOf(ctx, u)
}

func (s *DirectoryServiceImpl) DepartmentHead(ctx context.Context, userID string) (*directory.PersonSummary, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.departmentHeadOf(ctx, u)
}

func (s *DirectoryServiceImpl) IsDepartmentHead(ctx context.Context, userID string) (bool, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return false, err
	}
	return s.headsDepartment(ctx, userID)
}

func (s *DirectoryServiceImpl) IsUnitSupervisor(ctx context.Context, userID string) (bool, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return false, err
	}
	return s.supervisesUnit(ctx, userID)
}

func (s *DirectoryServiceImpl) Subordinates(ctx context.Context, userID string) ([]directory.PersonSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.subordinatesOf(ctx, userID)
}

func (s *DirectoryServiceImpl) CanApprove(ctx context.Context, userID string) (bool, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.CanApprove(), nil
}

func (s *DirectoryServiceImpl) IsCurrentlySuspended(ctx context.Context, userID string) (bool, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.IsCurrentlySuspended(), nil
}

func (s *DirectoryServiceImpl) Age(ctx context.Context, userID string) (*int, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Age(), nil
}

// OrgProfile returns the combined hierarchy view using parallel goroutines,
// one lookup chain per goroutine
func (s *DirectoryServiceImpl) OrgProfile(ctx context.Context, userID string) (*directory.OrgProfileResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		supervisor     *directory.PersonSummary
		departmentHead *directory.PersonSummary
		subordinates   []directory.PersonSummary
		headsDept      bool
		supervisesUnit bool
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Supervisor via the user's unit
	g.Go(func() error {
		var err error
		supervisor, err = s.supervisorOf(gCtx, u)
		return err
	})

	// 2. Head via the user's department
	g.Go(func() error {
		var err error
		departmentHead, err = s.departmentHeadOf(gCtx, u)
		return err
	})

	// 3. Direct reports
	g.Go(func() error {
		var err error
		subordinates, err = s.subordinatesOf(gCtx, userID)
		return err
	})

	// 4. Reverse lookup: does the user head a department
	g.Go(func() error {
		var err error
		headsDept, err = s.headsDepartment(gCtx, userID)
		return err
	})

	// 5. Reverse lookup: does the user supervise a unit
	g.Go(func() error {
		var err error
		supervisesUnit, err = s.supervisesUnit(gCtx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &directory.OrgProfileResponse{
		Person:           summarize(u),
		Supervisor:       supervisor,
		DepartmentHead:   departmentHead,
		Subordinates:     subordinates,
		IsDepartmentHead: headsDept,
		IsUnitSupervisor: supervisesUnit,
		CanApprove:       u.CanApprove(),
		IsSuspended:      u.IsCurrentlySuspended(),
		Age:              u.Age(),
	}, nil
}

// supervisorOf walks user -> unit -> supervisor. Any gap in the chain
// resolves to nil, not an error.
func (s *DirectoryServiceImpl) supervisorOf(ctx context.Context, u user.User) (*directory.PersonSummary, error) {
	if u.UnitID == nil {
		return nil, nil
	}

	assignedUnit, err := s.unitRepo.GetByID(ctx, *u.UnitID)
	if err != nil {
		return nil, err
	}
	if assignedUnit.SupervisorID == nil {
		return nil, nil
	}

	supervisor, err := s.userRepo.GetByID(ctx, *assignedUnit.SupervisorID)
	if err != nil {
		return nil, err
	}

	summary := summarize(supervisor)
	return &summary, nil
}

// departmentHeadOf walks user -> department -> head. Any gap in the chain
// resolves to nil, not an error.
func (s *DirectoryServiceImpl) departmentHeadOf(ctx context.Context, u user.User) (*directory.PersonSummary, error) {
	if u.DepartmentID == nil {
		return nil, nil
	}

	dept, err := s.departmentRepo.GetByID(ctx, *u.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept.HeadID == nil {
		return nil, nil
	}

	head, err := s.userRepo.GetByID(ctx, *dept.HeadID)
	if err != nil {
		return nil, err
	}

	summary := summarize(head)
	return &summary, nil
}

func (s *DirectoryServiceImpl) headsDepartment(ctx context.Context, userID string) (bool, error) {
	if _, err := s.departmentRepo.GetByHeadID(ctx, userID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *DirectoryServiceImpl) supervisesUnit(ctx context.Context, userID string) (bool, error) {
	if _, err := s.unitRepo.GetBySupervisorID(ctx, userID); err != nil {
		if errors.Is(err, unit.ErrUnitNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *DirectoryServiceImpl) subordinatesOf(ctx context.Context, userID string) ([]directory.PersonSummary, error) {
	reports, err := s.userRepo.ListByReportsTo(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]directory.PersonSummary, 0, len(reports))
	for _, report := range reports {
		summaries = append(summaries, summarize(report))
	}
	return summaries, nil
}

func summarize(u user.User) directory.PersonSummary {
	return directory.PersonSummary{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName(),
		ApprovalLevel: string(u.ApprovalLevel),
		DepartmentID:  u.DepartmentID,
		UnitID:        u.UnitID,
		IsActive:      u.IsActive,
	}
}
