package org

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/horizonhr-ng/people-backend-go/internal/domain/department"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/officelocation"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/unit"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
	"github.com/horizonhr-ng/people-backend-go/internal/fixtures"
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/database"
	"github.com/horizonhr-ng/people-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// OrgService administers the organization structure: departments, their
// units, and office locations.
type OrgService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context, filter department.ListDepartmentsFilter) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req department.UpdateDepartmentRequest) error
	// AssignDepartmentHead points a department at its head user; nil clears
	// the assignment. A user can head at most one department.
	AssignDepartmentHead(ctx context.Context, departmentID string, headID *string) error
	DeleteDepartment(ctx context.Context, id string) error

	// Unit operations
	CreateUnit(ctx context.Context, req unit.CreateUnitRequest) (unit.UnitResponse, error)
	GetUnit(ctx context.Context, id string) (unit.UnitResponse, error)
	ListUnits(ctx context.Context, filter unit.ListUnitsFilter) ([]unit.UnitResponse, error)
	UpdateUnit(ctx context.Context, id string, req unit.UpdateUnitRequest) error
	// AssignUnitSupervisor points a unit at its supervisor; nil clears the
	// assignment. A user can supervise at most one unit. Reassigning
	// repoints approval routing for every unit member at once.
	AssignUnitSupervisor(ctx context.Context, unitID string, supervisorID *string) error
	DeleteUnit(ctx context.Context, id string) error

	// Office location operations
	CreateOfficeLocation(ctx context.Context, req officelocation.CreateOfficeLocationRequest) (officelocation.OfficeLocationResponse, error)
	GetOfficeLocation(ctx context.Context, id string) (officelocation.OfficeLocationResponse, error)
	ListOfficeLocations(ctx context.Context, filter officelocation.ListOfficeLocationsFilter) ([]officelocation.OfficeLocationResponse, error)
	UpdateOfficeLocation(ctx context.Context, id string, req officelocation.UpdateOfficeLocationRequest) error
	DeleteOfficeLocation(ctx context.Context, id string) error

	// SeedDefaults populates the default org structure on a fresh database:
	// departments, their units and the office locations. All or nothing.
	SeedDefaults(ctx context.Context) (*fixtures.SeededOrgIDs, error)
}

type orgServiceImpl struct {
	db                 *database.DB
	departmentRepo     department.DepartmentRepository
	unitRepo           unit.UnitRepository
	officeLocationRepo officelocation.OfficeLocationRepository
	userRepo           user.UserRepository
}

func NewOrgService(
	db *database.DB,
	departmentRepo department.DepartmentRepository,
	unitRepo unit.UnitRepository,
	officeLocationRepo officelocation.OfficeLocationRepository,
	userRepo user.UserRepository,
) OrgService {
	return &orgServiceImpl{
		db:                 db,
		departmentRepo:     departmentRepo,
		unitRepo:           unitRepo,
		officeLocationRepo: officeLocationRepo,
		userRepo:           userRepo,
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *orgServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameTaken
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	slog.Info("Created department", "department_id", created.ID, "name", created.Name)

	return mapDepartmentToResponse(created), nil
}

func (s *orgServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapDepartmentToResponse(d), nil
}

func (s *orgServiceImpl) ListDepartments(ctx context.Context, filter department.ListDepartmentsFilter) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, mapDepartmentToResponse(d))
	}
	return responses, nil
}

func (s *orgServiceImpl) UpdateDepartment(ctx context.Context, id string, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, id, req); err != nil {
		if isUniqueViolation(err) {
			return department.ErrDepartmentNameTaken
		}
		return err
	}

	return nil
}

func (s *orgServiceImpl) AssignDepartmentHead(ctx context.Context, departmentID string, headID *string) error {
	d, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}

	if headID != nil {
		if _, err := s.userRepo.GetByID(ctx, *headID); err != nil {
			return err
		}
	}

	if err := s.departmentRepo.SetHead(ctx, departmentID, headID); err != nil {
		// The only unique constraint SetHead can trip is the one-to-one
		// head assignment.
		if isUniqueViolation(err) {
			return department.ErrUserAlreadyHeadsDepartment
		}
		return err
	}

	slog.Info("Assigned department head", "department_id", d.ID, "head_id", headID)

	return nil
}

func (s *orgServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Units go with the department; member users keep their rows with the
	// department reference cleared.
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Deleted department", "department_id", d.ID, "name", d.Name)

	return nil
}

// ==================== UNIT OPERATIONS ====================

func (s *orgServiceImpl) CreateUnit(ctx context.Context, req unit.CreateUnitRequest) (unit.UnitResponse, error) {
	if err := req.Validate(); err != nil {
		return unit.UnitResponse{}, err
	}

	// The parent department must exist
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return unit.UnitResponse{}, err
	}

	created, err := s.unitRepo.Create(ctx, unit.Unit{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return unit.UnitResponse{}, unit.ErrUnitNameTakenInDepartment
		}
		return unit.UnitResponse{}, fmt.Errorf("failed to create unit: %w", err)
	}

	slog.Info("Created unit", "unit_id", created.ID, "name", created.Name, "department_id", created.DepartmentID)

	return mapUnitToResponse(created), nil
}

func (s *orgServiceImpl) GetUnit(ctx context.Context, id string) (unit.UnitResponse, error) {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return unit.UnitResponse{}, err
	}
	return mapUnitToResponse(u), nil
}

func (s *orgServiceImpl) ListUnits(ctx context.Context, filter unit.ListUnitsFilter) ([]unit.UnitResponse, error) {
	units, err := s.unitRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]unit.UnitResponse, 0, len(units))
	for _, u := range units {
		responses = append(responses, mapUnitToResponse(u))
	}
	return responses, nil
}

func (s *orgServiceImpl) UpdateUnit(ctx context.Context, id string, req unit.UpdateUnitRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.unitRepo.Update(ctx, id, req); err != nil {
		if isUniqueViolation(err) {
			return unit.ErrUnitNameTakenInDepartment
		}
		return err
	}

	return nil
}

func (s *orgServiceImpl) AssignUnitSupervisor(ctx context.Context, unitID string, supervisorID *string) error {
	u, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return err
	}

	if supervisorID != nil {
		if _, err := s.userRepo.GetByID(ctx, *supervisorID); err != nil {
			return err
		}
	}

	if err := s.unitRepo.SetSupervisor(ctx, unitID, supervisorID); err != nil {
		if isUniqueViolation(err) {
			return unit.ErrUserAlreadySupervisesUnit
		}
		return err
	}

	slog.Info("Assigned unit supervisor", "unit_id", u.ID, "supervisor_id", supervisorID)

	return nil
}

func (s *orgServiceImpl) DeleteUnit(ctx context.Context, id string) error {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Deleted unit", "unit_id", u.ID, "name", u.Name)

	return nil
}

// ==================== OFFICE LOCATION OPERATIONS ====================

func (s *orgServiceImpl) CreateOfficeLocation(ctx context.Context, req officelocation.CreateOfficeLocationRequest) (officelocation.OfficeLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return officelocation.OfficeLocationResponse{}, err
	}

	created, err := s.officeLocationRepo.Create(ctx, officelocation.OfficeLocation{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return officelocation.OfficeLocationResponse{}, officelocation.ErrOfficeLocationNameTaken
		}
		return officelocation.OfficeLocationResponse{}, fmt.Errorf("failed to create office location: %w", err)
	}

	slog.Info("Created office location", "office_location_id", created.ID, "name", created.Name)

	return mapOfficeLocationToResponse(created), nil
}

func (s *orgServiceImpl) GetOfficeLocation(ctx context.Context, id string) (officelocation.OfficeLocationResponse, error) {
	l, err := s.officeLocationRepo.GetByID(ctx, id)
	if err != nil {
		return officelocation.OfficeLocationResponse{}, err
	}
	return mapOfficeLocationToResponse(l), nil
}

func (s *orgServiceImpl) ListOfficeLocations(ctx context.Context, filter officelocation.ListOfficeLocationsFilter) ([]officelocation.OfficeLocationResponse, error) {
	locations, err := s.officeLocationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]officelocation.OfficeLocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, mapOfficeLocationToResponse(l))
	}
	return responses, nil
}

func (s *orgServiceImpl) UpdateOfficeLocation(ctx context.Context, id string, req officelocation.UpdateOfficeLocationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.officeLocationRepo.Update(ctx, id, req); err != nil {
		if isUniqueViolation(err) {
			return officelocation.ErrOfficeLocationNameTaken
		}
		return err
	}

	return nil
}

func (s *orgServiceImpl) DeleteOfficeLocation(ctx context.Context, id string) error {
	if err := s.officeLocationRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Deleted office location", "office_location_id", id)

	return nil
}

// ==================== SEEDING ====================

func (s *orgServiceImpl) SeedDefaults(ctx context.Context) (*fixtures.SeededOrgIDs, error) {
	seededIDs := fixtures.NewSeededOrgIDs()

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		// 1. Seed default departments
		departments := fixtures.GetDefaultDepartments()
		for _, d := range departments {
			created, err := s.departmentRepo.Create(txCtx, d)
			if err != nil {
				return fmt.Errorf("failed to seed department %s: %w", d.Name, err)
			}
			seededIDs.DepartmentIDs[created.Name] = created.ID
		}
		slog.Info("Seeded default departments", "count", len(departments))

		// 2. Seed default units under their departments
		units := fixtures.GetDefaultUnits()
		for _, def := range units {
			departmentID, ok := seededIDs.DepartmentIDs[def.DepartmentName]
			if !ok {
				return fmt.Errorf("default unit %s references unknown department %s", def.Name, def.DepartmentName)
			}

			created, err := s.unitRepo.Create(txCtx, unit.Unit{
				Name:         def.Name,
				DepartmentID: departmentID,
			})
			if err != nil {
				return fmt.Errorf("failed to seed unit %s: %w", def.Name, err)
			}

			if seededIDs.UnitIDs[def.DepartmentName] == nil {
				seededIDs.UnitIDs[def.DepartmentName] = make(map[string]string)
			}
			seededIDs.UnitIDs[def.DepartmentName][created.Name] = created.ID
		}
		slog.Info("Seeded default units", "count", len(units))

		// 3. Seed default office locations
		locations := fixtures.GetDefaultOfficeLocations()
		for _, l := range locations {
			created, err := s.officeLocationRepo.Create(txCtx, l)
			if err != nil {
				return fmt.Errorf("failed to seed office location %s: %w", l.Name, err)
			}
			seededIDs.OfficeLocationIDs[created.Name] = created.ID
		}
		slog.Info("Seeded default office locations", "count", len(locations))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return seededIDs, nil
}

// ==================== MAPPING HELPERS ====================

func mapDepartmentToResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		HeadID:      d.HeadID,
		IsActive:    d.IsActive,
	}
}

func mapUnitToResponse(u unit.Unit) unit.UnitResponse {
	return unit.UnitResponse{
		ID:           u.ID,
		Name:         u.Name,
		DepartmentID: u.DepartmentID,
		SupervisorID: u.SupervisorID,
		IsActive:     u.IsActive,
	}
}

func mapOfficeLocationToResponse(l officelocation.OfficeLocation) officelocation.OfficeLocationResponse {
	return officelocation.OfficeLocationResponse{
		ID:       l.ID,
		Name:     l.Name,
		Address:  l.Address,
		IsActive: l.IsActive,
	}
}
