package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/horizonhr-ng/people-backend-go/internal/domain/department"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/officelocation"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/unit"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/credentials"
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/database"
	"github.com/horizonhr-ng/people-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const defaultCountry = "Nigeria"

// AccountService manages user accounts and their place in the reporting
// hierarchy. Every write that touches the hierarchy revalidates it inside
// the same transaction.
type AccountService interface {
	Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	// CreateSuperuser creates an account with full administrative standing:
	// staff and superuser flags set and DIRECTOR approval authority.
	CreateSuperuser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	GetByID(ctx context.Context, id string) (user.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (user.UserResponse, error)
	List(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, error)
	// Deactivate soft-deletes the account. The row stays and keeps serving
	// hierarchy lookups; only the active flag flips.
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
	// VerifyCredentials checks an email/password pair and records the login
	// time on success.
	VerifyCredentials(ctx context.Context, email, password string) (user.UserResponse, error)
}

type accountServiceImpl struct {
	db                 *database.DB
	userRepo           user.UserRepository
	departmentRepo     department.DepartmentRepository
	unitRepo           unit.UnitRepository
	officeLocationRepo officelocation.OfficeLocationRepository
}

func NewAccountService(
	db *database.DB,
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	unitRepo unit.UnitRepository,
	officeLocationRepo officelocation.OfficeLocationRepository,
) AccountService {
	return &accountServiceImpl{
		db:                 db,
		userRepo:           userRepo,
		departmentRepo:     departmentRepo,
		unitRepo:           unitRepo,
		officeLocationRepo: officeLocationRepo,
	}
}

func (s *accountServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return s.createAccount(ctx, req, false)
}

func (s *accountServiceImpl) CreateSuperuser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return s.createAccount(ctx, req, true)
}

func (s *accountServiceImpl) createAccount(ctx context.Context, req user.CreateUserRequest, superuser bool) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	email := credentials.NormalizeEmail(req.Email)

	// Check if the email is already registered
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return user.UserResponse{}, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, err
	}

	// Referenced org records must exist
	if err := s.checkOrgRefs(ctx, req.DepartmentID, req.UnitID, req.OfficeLocationID); err != nil {
		return user.UserResponse{}, err
	}

	passwordHash, err := credentials.HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := buildUser(req, email, passwordHash)
	if superuser {
		newUser.IsStaff = true
		newUser.IsSuperuser = true
		newUser.ApprovalLevel = user.LevelDirector
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		if err := s.validateHierarchy(txCtx, "", newUser.UnitID, newUser.ReportsToID); err != nil {
			return err
		}

		created, err = s.userRepo.Create(txCtx, newUser)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return user.UserResponse{}, user.ErrEmailTaken
		}
		return user.UserResponse{}, err
	}

	slog.Info("Created user account", "user_id", created.ID, "email", created.Email, "superuser", superuser)

	return mapUserToResponse(created), nil
}

func (s *accountServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := s.checkOrgRefs(ctx, req.DepartmentID, req.UnitID, req.OfficeLocationID); err != nil {
		return user.UserResponse{}, err
	}

	// The hierarchy rules apply to the state the row will be in after the
	// update, not to the fields the request happens to carry.
	effUnitID := effectiveRef(req.UnitID, current.UnitID)
	effReportsToID := effectiveRef(req.ReportsToID, current.ReportsToID)

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		if err := s.validateHierarchy(txCtx, id, effUnitID, effReportsToID); err != nil {
			return err
		}

		return s.userRepo.Update(txCtx, id, req)
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.Info("Updated user account", "user_id", id)

	return mapUserToResponse(updated), nil
}

func (s *accountServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return mapUserToResponse(u), nil
}

func (s *accountServiceImpl) GetByEmail(ctx context.Context, email string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, credentials.NormalizeEmail(email))
	if err != nil {
		return user.UserResponse{}, err
	}
	return mapUserToResponse(u), nil
}

func (s *accountServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapUserToResponse(u))
	}
	return responses, nil
}

func (s *accountServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.userRepo.SetActive(ctx, id, false); err != nil {
		return err
	}

	slog.Info("Deactivated user account", "user_id", id)

	return nil
}

func (s *accountServiceImpl) Reactivate(ctx context.Context, id string) error {
	if err := s.userRepo.SetActive(ctx, id, true); err != nil {
		return err
	}

	slog.Info("Reactivated user account", "user_id", id)

	return nil
}

func (s *accountServiceImpl) VerifyCredentials(ctx context.Context, email, password string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, credentials.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrInvalidCredentials
		}
		return user.UserResponse{}, err
	}

	if !credentials.VerifyPassword(password, u.PasswordHash) {
		return user.UserResponse{}, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return user.UserResponse{}, user.ErrUserInactive
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		slog.Warn("Failed to record login time", "user_id", u.ID, "error", err)
	} else {
		u.LastLogin = &now
	}

	return mapUserToResponse(u), nil
}

// checkOrgRefs verifies that each org reference carried by a request points
// at an existing record. Nil and empty values are skipped; empty means the
// reference is being cleared.
func (s *accountServiceImpl) checkOrgRefs(ctx context.Context, departmentID, unitID, officeLocationID *string) error {
	if departmentID != nil && *departmentID != "" {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			return err
		}
	}
	if unitID != nil && *unitID != "" {
		if _, err := s.unitRepo.GetByID(ctx, *unitID); err != nil {
			return err
		}
	}
	if officeLocationID != nil && *officeLocationID != "" {
		if _, err := s.officeLocationRepo.GetByID(ctx, *officeLocationID); err != nil {
			return err
		}
	}
	return nil
}

// buildUser assembles the entity for a validated create request, applying
// the account defaults: STAFF approval level, ACTIVE employee status,
// Nigeria as country and today as the joining date.
func buildUser(req user.CreateUserRequest, email, passwordHash string) user.User {
	newUser := user.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		MiddleName:   emptyToNil(req.MiddleName),
		LastName:     req.LastName,

		Gender:        (*user.Gender)(emptyToNil(req.Gender)),
		MaritalStatus: (*user.MaritalStatus)(emptyToNil(req.MaritalStatus)),

		PhoneNumber:    emptyToNil(req.PhoneNumber),
		AlternatePhone: emptyToNil(req.AlternatePhone),
		Address:        emptyToNil(req.Address),
		City:           emptyToNil(req.City),
		State:          emptyToNil(req.State),
		Country:        defaultCountry,
		Nationality:    emptyToNil(req.Nationality),

		BankName:              emptyToNil(req.BankName),
		AccountNumber:         emptyToNil(req.AccountNumber),
		EmergencyContactName:  emptyToNil(req.EmergencyContactName),
		EmergencyContactPhone: emptyToNil(req.EmergencyContactPhone),

		DepartmentID:     emptyToNil(req.DepartmentID),
		UnitID:           emptyToNil(req.UnitID),
		OfficeLocationID: emptyToNil(req.OfficeLocationID),
		ReportsToID:      emptyToNil(req.ReportsToID),

		EmployeeStatus: user.StatusActive,
		ApprovalLevel:  user.LevelStaff,
		DateJoined:     time.Now(),
		IsActive:       true,
	}

	if req.Country != nil && strings.TrimSpace(*req.Country) != "" {
		newUser.Country = strings.TrimSpace(*req.Country)
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		newUser.DateOfBirth = &dob
	}
	if req.EmployeeStatus != nil && *req.EmployeeStatus != "" {
		newUser.EmployeeStatus = user.EmployeeStatus(*req.EmployeeStatus)
	}
	if req.ApprovalLevel != nil && *req.ApprovalLevel != "" {
		newUser.ApprovalLevel = user.ApprovalLevel(*req.ApprovalLevel)
	}
	if req.DateJoined != nil && *req.DateJoined != "" {
		joined, _ := time.Parse("2006-01-02", *req.DateJoined)
		newUser.DateJoined = joined
	}

	return newUser
}

func emptyToNil(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapUserToResponse(u user.User) user.UserResponse {
	resp := user.UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		MiddleName:       u.MiddleName,
		LastName:         u.LastName,
		FullName:         u.FullName(),
		Gender:           (*string)(u.Gender),
		MaritalStatus:    (*string)(u.MaritalStatus),
		PhoneNumber:      u.PhoneNumber,
		Country:          u.Country,
		DepartmentID:     u.DepartmentID,
		UnitID:           u.UnitID,
		OfficeLocationID: u.OfficeLocationID,
		ReportsToID:      u.ReportsToID,
		EmployeeStatus:   string(u.EmployeeStatus),
		ApprovalLevel:    string(u.ApprovalLevel),
		DateJoined:       u.DateJoined.Format("2006-01-02"),
		LastLogin:        u.LastLogin,
		IsActive:         u.IsActive,
		IsStaff:          u.IsStaff,
		IsSuperuser:      u.IsSuperuser,
	}

	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}

	return resp
}
