package payroll

import "context"

type PayrollService interface {
	// CreatePayroll computes the net from the submitted amounts and
	// records the run as paid. One run per employee per month/year.
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter ListPayrollFilter) ([]PayrollResponse, error)
}
