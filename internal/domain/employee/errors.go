package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrEmployeeCodeExists       = errors.New("employee code already exists")
	ErrEmailExists              = errors.New("email already registered")
	ErrSelfServiceFieldReadOnly = errors.New("field is not editable through self-service")
	ErrForbidden                = errors.New("not allowed to access this employee record")
)
