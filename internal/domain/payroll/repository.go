package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id int64) (Payroll, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, month string, year int) (Payroll, error)
	List(ctx context.Context, filter ListPayrollFilter) ([]Payroll, error)
}
