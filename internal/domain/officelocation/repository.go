package officelocation

import "context"

type OfficeLocationRepository interface {
	Create(ctx context.Context, newLocation OfficeLocation) (OfficeLocation, error)
	GetByID(ctx context.Context, id string) (OfficeLocation, error)
	GetByName(ctx context.Context, name string) (OfficeLocation, error)
	List(ctx context.Context, filter ListOfficeLocationsFilter) ([]OfficeLocation, error)
	Update(ctx context.Context, id string, req UpdateOfficeLocationRequest) error
	Delete(ctx context.Context, id string) error
}
