package unit

import "context"

type UnitRepository interface {
	Create(ctx context.Context, newUnit Unit) (Unit, error)
	GetByID(ctx context.Context, id string) (Unit, error)
	// GetBySupervisorID finds the unit a user supervises, if any.
	GetBySupervisorID(ctx context.Context, userID string) (Unit, error)
	List(ctx context.Context, filter ListUnitsFilter) ([]Unit, error)
	Update(ctx context.Context, id string, req UpdateUnitRequest) error
	SetSupervisor(ctx context.Context, id string, supervisorID *string) error
	Delete(ctx context.Context, id string) error
}
