package officelocation

import "errors"

var (
	ErrOfficeLocationNotFound  = errors.New("office location not found")
	ErrOfficeLocationNameTaken = errors.New("office location name already exists")
)
