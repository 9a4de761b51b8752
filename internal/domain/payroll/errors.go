package payroll

import "errors"

var (
	ErrPayrollNotFound  = errors.New("payroll record not found")
	ErrPayrollExists    = errors.New("payroll already exists for this employee and period")
	ErrEmployeeNotFound = errors.New("employee not found")
)
