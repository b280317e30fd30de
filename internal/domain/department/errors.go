package department

import "errors"

var (
	ErrDepartmentNotFound         = errors.New("department not found")
	ErrDepartmentNameTaken        = errors.New("department name already exists")
	ErrUserAlreadyHeadsDepartment = errors.New("user already heads another department")
)
