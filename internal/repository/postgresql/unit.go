package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/unit"
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type unitRepositoryImpl struct {
	db *database.DB
}

func NewUnitRepository(db *database.DB) unit.UnitRepository {
	return &unitRepositoryImpl{db: db}
}

const unitColumns = `id, name, department_id, supervisor_id, is_active, created_at, updated_at`

func scanUnit(row pgx.Row) (unit.Unit, error) {
	var u unit.Unit
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.DepartmentID,
		&u.SupervisorID,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements unit.UnitRepository.
func (r *unitRepositoryImpl) Create(ctx context.Context, newUnit unit.Unit) (unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO units (id, name, department_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING ` + unitColumns

	id := uuid.Must(uuid.NewV7()).String()
	result, err := scanUnit(q.QueryRow(ctx, query, id, newUnit.Name, newUnit.DepartmentID))
	if err != nil {
		return unit.Unit{}, fmt.Errorf("failed to create unit: %w", err)
	}

	return result, nil
}

// GetByID implements unit.UnitRepository.
func (r *unitRepositoryImpl) GetByID(ctx context.Context, id string) (unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE id = $1
	`

	result, err := scanUnit(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.Unit{}, unit.ErrUnitNotFound
		}
		return unit.Unit{}, fmt.Errorf("failed to get unit: %w", err)
	}

	return result, nil
}

// GetBySupervisorID implements unit.UnitRepository.
func (r *unitRepositoryImpl) GetBySupervisorID(ctx context.Context, userID string) (unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE supervisor_id = $1
	`

	result, err := scanUnit(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.Unit{}, unit.ErrUnitNotFound
		}
		return unit.Unit{}, fmt.Errorf("failed to get unit by supervisor: %w", err)
	}

	return result, nil
}

// List implements unit.UnitRepository.
func (r *unitRepositoryImpl) List(ctx context.Context, filter unit.ListUnitsFilter) ([]unit.Unit, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}

	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var units []unit.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return units, nil
}

// Update implements unit.UnitRepository.
func (r *unitRepositoryImpl) Update(ctx context.Context, id string, req unit.UpdateUnitRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE units SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}
	if req.IsActive != nil {
		query += fmt.Sprintf(", is_active = $%d", argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return unit.ErrUnitNotFound
	}

	return nil
}

// SetSupervisor implements unit.UnitRepository.
func (r *unitRepositoryImpl) SetSupervisor(ctx context.Context, id string, supervisorID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE units
		SET supervisor_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, supervisorID, id)
	if err != nil {
		return fmt.Errorf("failed to set unit supervisor: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return unit.ErrUnitNotFound
	}

	return nil
}

// Delete implements unit.UnitRepository.
// Member users keep their rows with unit_id nulled out by the schema rule.
func (r *unitRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM units WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return unit.ErrUnitNotFound
	}

	return nil
}
