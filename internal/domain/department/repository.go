package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, newDepartment Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	GetByName(ctx context.Context, name string) (Department, error)
	// GetByHeadID finds the department a user heads, if any.
	GetByHeadID(ctx context.Context, userID string) (Department, error)
	List(ctx context.Context, filter ListDepartmentsFilter) ([]Department, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) error
	SetHead(ctx context.Context, id string, headID *string) error
	Delete(ctx context.Context, id string) error
}
