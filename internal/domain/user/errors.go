package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	// Hierarchy validation failures, surfaced before any write is committed.
	ErrSelfReport                 = errors.New("a user cannot report to themselves")
	ErrCrossDepartmentSupervision = errors.New("supervisor must belong to the same department as the user's unit")
	ErrReportingCycle             = errors.New("reporting chain would form a cycle")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is deactivated")
)
