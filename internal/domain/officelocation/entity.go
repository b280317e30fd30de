package officelocation

import "time"

// OfficeLocation is a physical work site, e.g. Lagos HQ or Abuja Branch.
// Pure reference data with no invariants beyond name uniqueness.
type OfficeLocation struct {
	ID        string
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
