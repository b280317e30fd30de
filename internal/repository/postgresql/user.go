package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/user"
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, password_hash, first_name, middle_name, last_name,
	gender, date_of_birth, marital_status,
	phone_number, alternate_phone, address, city, state, country, nationality,
	bank_name, account_number, emergency_contact_name, emergency_contact_phone,
	department_id, unit_id, office_location_id, reports_to_id,
	employee_status, approval_level, date_joined, last_login,
	is_active, is_staff, is_superuser, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var gender, maritalStatus *string
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&gender,
		&u.DateOfBirth,
		&maritalStatus,
		&u.PhoneNumber,
		&u.AlternatePhone,
		&u.Address,
		&u.City,
		&u.State,
		&u.Country,
		&u.Nationality,
		&u.BankName,
		&u.AccountNumber,
		&u.EmergencyContactName,
		&u.EmergencyContactPhone,
		&u.DepartmentID,
		&u.UnitID,
		&u.OfficeLocationID,
		&u.ReportsToID,
		&u.EmployeeStatus,
		&u.ApprovalLevel,
		&u.DateJoined,
		&u.LastLogin,
		&u.IsActive,
		&u.IsStaff,
		&u.IsSuperuser,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	u.Gender = (*user.Gender)(gender)
	u.MaritalStatus = (*user.MaritalStatus)(maritalStatus)
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, email, password_hash, first_name, middle_name, last_name,
			gender, date_of_birth, marital_status,
			phone_number, alternate_phone, address, city, state, country, nationality,
			bank_name, account_number, emergency_contact_name, emergency_contact_phone,
			department_id, unit_id, office_location_id, reports_to_id,
			employee_status, approval_level, date_joined,
			is_active, is_staff, is_superuser, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20,
			$21, $22, $23, $24,
			$25, $26, $27,
			$28, $29, $30, NOW(), NOW()
		)
		RETURNING ` + userColumns

	id := uuid.Must(uuid.NewV7()).String()
	result, err := scanUser(q.QueryRow(ctx, query,
		id,
		newUser.Email,
		newUser.PasswordHash,
		newUser.FirstName,
		newUser.MiddleName,
		newUser.LastName,
		(*string)(newUser.Gender),
		newUser.DateOfBirth,
		(*string)(newUser.MaritalStatus),
		newUser.PhoneNumber,
		newUser.AlternatePhone,
		newUser.Address,
		newUser.City,
		newUser.State,
		newUser.Country,
		newUser.Nationality,
		newUser.BankName,
		newUser.AccountNumber,
		newUser.EmergencyContactName,
		newUser.EmergencyContactPhone,
		newUser.DepartmentID,
		newUser.UnitID,
		newUser.OfficeLocationID,
		newUser.ReportsToID,
		string(newUser.EmployeeStatus),
		string(newUser.ApprovalLevel),
		newUser.DateJoined,
		newUser.IsActive,
		newUser.IsStaff,
		newUser.IsSuperuser,
	))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return result, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	result, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return result, nil
}

// GetByEmail implements user.UserRepository.
// Callers are expected to pass a normalized address.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	result, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return result, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.UnitID != nil {
		conditions = append(conditions, fmt.Sprintf("unit_id = $%d", argIdx))
		args = append(args, *filter.UnitID)
		argIdx++
	}
	if filter.OfficeLocationID != nil {
		conditions = append(conditions, fmt.Sprintf("office_location_id = $%d", argIdx))
		args = append(args, *filter.OfficeLocationID)
		argIdx++
	}
	if filter.EmployeeStatus != nil {
		conditions = append(conditions, fmt.Sprintf("employee_status = $%d", argIdx))
		args = append(args, *filter.EmployeeStatus)
		argIdx++
	}
	if filter.ApprovalLevel != nil {
		conditions = append(conditions, fmt.Sprintf("approval_level = $%d", argIdx))
		args = append(args, *filter.ApprovalLevel)
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY first_name ASC, last_name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// ListByReportsTo implements user.UserRepository.
func (r *userRepositoryImpl) ListByReportsTo(ctx context.Context, managerID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE reports_to_id = $1
		ORDER BY first_name ASC, last_name ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct reports: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE users SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.FirstName != nil {
		query += fmt.Sprintf(", first_name = $%d", argIdx)
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		query += fmt.Sprintf(", last_name = $%d", argIdx)
		args = append(args, *req.LastName)
		argIdx++
	}
	if req.Country != nil {
		query += fmt.Sprintf(", country = $%d", argIdx)
		args = append(args, *req.Country)
		argIdx++
	}
	if req.EmployeeStatus != nil {
		query += fmt.Sprintf(", employee_status = $%d", argIdx)
		args = append(args, *req.EmployeeStatus)
		argIdx++
	}
	if req.ApprovalLevel != nil {
		query += fmt.Sprintf(", approval_level = $%d", argIdx)
		args = append(args, *req.ApprovalLevel)
		argIdx++
	}

	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			query += ", date_of_birth = NULL"
		} else {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil {
				return fmt.Errorf("invalid date_of_birth: %w", err)
			}
			query += fmt.Sprintf(", date_of_birth = $%d", argIdx)
			args = append(args, dob)
			argIdx++
		}
	}

	// Nullable text and reference columns: an empty string clears the value.
	nullableFields := []struct {
		column string
		value  *string
	}{
		{"middle_name", req.MiddleName},
		{"gender", req.Gender},
		{"marital_status", req.MaritalStatus},
		{"phone_number", req.PhoneNumber},
		{"alternate_phone", req.AlternatePhone},
		{"address", req.Address},
		{"city", req.City},
		{"state", req.State},
		{"nationality", req.Nationality},
		{"bank_name", req.BankName},
		{"account_number", req.AccountNumber},
		{"emergency_contact_name", req.EmergencyContactName},
		{"emergency_contact_phone", req.EmergencyContactPhone},
		{"department_id", req.DepartmentID},
		{"unit_id", req.UnitID},
		{"office_location_id", req.OfficeLocationID},
		{"reports_to_id", req.ReportsToID},
	}
	for _, f := range nullableFields {
		if f.value == nil {
			continue
		}
		if *f.value == "" {
			query += fmt.Sprintf(", %s = NULL", f.column)
			continue
		}
		query += fmt.Sprintf(", %s = $%d", f.column, argIdx)
		args = append(args, *f.value)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to set user active flag: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET last_login = $1 WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
