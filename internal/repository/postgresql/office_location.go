package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/horizonhr-ng/people-backend-go/internal/domain/officelocation"
	"github.com/horizonhr-ng/people-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type officeLocationRepositoryImpl struct {
	db *database.DB
}

func NewOfficeLocationRepository(db *database.DB) officelocation.OfficeLocationRepository {
	return &officeLocationRepositoryImpl{db: db}
}

const officeLocationColumns = `id, name, address, is_active, created_at, updated_at`

func scanOfficeLocation(row pgx.Row) (officelocation.OfficeLocation, error) {
	var l officelocation.OfficeLocation
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Address,
		&l.IsActive,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements officelocation.OfficeLocationRepository.
func (r *officeLocationRepositoryImpl) Create(ctx context.Context, newLocation officelocation.OfficeLocation) (officelocation.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO office_locations (id, name, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING ` + officeLocationColumns

	id := uuid.Must(uuid.NewV7()).String()
	result, err := scanOfficeLocation(q.QueryRow(ctx, query, id, newLocation.Name, newLocation.Address))
	if err != nil {
		return officelocation.OfficeLocation{}, fmt.Errorf("failed to create office location: %w", err)
	}

	return result, nil
}

// GetByID implements officelocation.OfficeLocationRepository.
func (r *officeLocationRepositoryImpl) GetByID(ctx context.Context, id string) (officelocation.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + officeLocationColumns + `
		FROM office_locations
		WHERE id = $1
	`

	result, err := scanOfficeLocation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return officelocation.OfficeLocation{}, officelocation.ErrOfficeLocationNotFound
		}
		return officelocation.OfficeLocation{}, fmt.Errorf("failed to get office location: %w", err)
	}

	return result, nil
}

// GetByName implements officelocation.OfficeLocationRepository.
func (r *officeLocationRepositoryImpl) GetByName(ctx context.Context, name string) (officelocation.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + officeLocationColumns + `
		FROM office_locations
		WHERE name = $1
	`

	result, err := scanOfficeLocation(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return officelocation.OfficeLocation{}, officelocation.ErrOfficeLocationNotFound
		}
		return officelocation.OfficeLocation{}, fmt.Errorf("failed to get office location by name: %w", err)
	}

	return result, nil
}

// List implements officelocation.OfficeLocationRepository.
func (r *officeLocationRepositoryImpl) List(ctx context.Context, filter officelocation.ListOfficeLocationsFilter) ([]officelocation.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}

	query := `
		SELECT ` + officeLocationColumns + `
		FROM office_locations
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list office locations: %w", err)
	}
	defer rows.Close()

	var locations []officelocation.OfficeLocation
	for rows.Next() {
		l, err := scanOfficeLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office location: %w", err)
		}
		locations = append(locations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return locations, nil
}

// Update implements officelocation.OfficeLocationRepository.
func (r *officeLocationRepositoryImpl) Update(ctx context.Context, id string, req officelocation.UpdateOfficeLocationRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE office_locations SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		query += fmt.Sprintf(", address = $%d", argIdx)
		args = append(args, *req.Address)
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
		return fmt.Errorf("failed to update office location: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return officelocation.ErrOfficeLocationNotFound
	}

	return nil
}

// Delete implements officelocation.OfficeLocationRepository.
func (r *officeLocationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM office_locations WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete office location: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return officelocation.ErrOfficeLocationNotFound
	}

	return nil
}
