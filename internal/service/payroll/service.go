package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/staffhub/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/domain/payroll"
)

type payrollService struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &payrollService{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

func toResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		EmployeeCode: p.EmployeeCode,
		Month:        p.Month,
		Year:         p.Year,
		BasicSalary:  p.BasicSalary,
		Allowances:   p.Allowances,
		Deductions:   p.Deductions,
		NetSalary:    p.NetSalary,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

// CreatePayroll implements payroll.PayrollService. The net is computed
// server-side and the run is recorded as paid.
func (s *payrollService) CreatePayroll(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollResponse{}, err
	}

	if _, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Month, req.Year); err == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollExists
	} else if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, err
	}

	created, err := s.payrollRepo.Create(ctx, payroll.Payroll{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   payroll.NetSalary(req.BasicSalary, req.Allowances, req.Deductions),
		Status:      payroll.StatusPaid,
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(created), nil
}

// ListPayrolls implements payroll.PayrollService. Non-admins only see
// their own payslips.
func (s *payrollService) ListPayrolls(ctx context.Context, filter payroll.ListPayrollFilter) ([]payroll.PayrollResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if !principal.IsAdmin {
		filter.EmployeeID = &principal.EmployeeID
	}

	payrolls, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, toResponse(p))
	}

	return responses, nil
}
