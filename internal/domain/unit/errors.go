package unit

import "errors"

var (
	ErrUnitNotFound              = errors.New("unit not found")
	ErrUnitNameTakenInDepartment = errors.New("unit name already exists in this department")
	ErrUserAlreadySupervisesUnit = errors.New("user already supervises another unit")
)
