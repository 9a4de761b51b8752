package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/staffhub/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/domain/leave"
	"github.com/staffhub/hrm-backend-go/internal/domain/payroll"
	"github.com/staffhub/hrm-backend-go/internal/domain/report"
)

type reportService struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	payrollRepo    payroll.PayrollRepository
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	payrollRepo payroll.PayrollRepository,
) report.ReportService {
	return &reportService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
		now:            time.Now,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrEmpty(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}

// ExportCSV implements report.ReportService.
func (s *reportService) ExportCSV(ctx context.Context, entity string) ([]byte, string, error) {
	var (
		table report.Table
		err   error
	)

	switch entity {
	case report.EntityEmployees:
		table, err = s.employeesTable(ctx)
	case report.EntityAttendance:
		table, err = s.attendanceTable(ctx)
	case report.EntityLeaves:
		table, err = s.leavesTable(ctx)
	case report.EntityPayroll:
		table, err = s.payrollTable(ctx)
	default:
		return nil, "", report.ErrUnknownEntity
	}
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s.csv", entity, s.now().Format("2006-01-02"))
	return report.MarshalCSV(table), filename, nil
}

func (s *reportService) employeesTable(ctx context.Context) (report.Table, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.Table{}, err
	}

	table := report.Table{
		Columns: []string{
			"id", "employee_code", "first_name", "last_name", "email",
			"department", "role", "position", "status", "salary",
		},
	}
	for _, emp := range employees {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(emp.ID, 10),
			emp.EmployeeCode,
			emp.FirstName,
			emp.LastName,
			emp.Email,
			strOrEmpty(emp.DepartmentName),
			string(emp.Role),
			strOrEmpty(emp.Position),
			string(emp.Status),
			emp.Salary.String(),
		})
	}

	return table, nil
}

func (s *reportService) attendanceTable(ctx context.Context) (report.Table, error) {
	attendances, err := s.attendanceRepo.List(ctx, attendance.ListAttendanceFilter{})
	if err != nil {
		return report.Table{}, err
	}

	table := report.Table{
		Columns: []string{
			"id", "employee_code", "employee_name", "date",
			"check_in_time", "check_out_time", "status",
		},
	}
	for _, att := range attendances {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(att.ID, 10),
			strOrEmpty(att.EmployeeCode),
			strOrEmpty(att.EmployeeName),
			att.Date.Format("2006-01-02"),
			timeOrEmpty(att.CheckInTime, time.RFC3339),
			timeOrEmpty(att.CheckOutTime, time.RFC3339),
			string(att.Status),
		})
	}

	return table, nil
}

func (s *reportService) leavesTable(ctx context.Context) (report.Table, error) {
	leaves, err := s.leaveRepo.List(ctx, leave.ListLeaveFilter{})
	if err != nil {
		return report.Table{}, err
	}

	table := report.Table{
		Columns: []string{
			"id", "employee_code", "employee_name", "leave_type",
			"start_date", "end_date", "days", "status",
		},
	}
	for _, lv := range leaves {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(lv.ID, 10),
			strOrEmpty(lv.EmployeeCode),
			strOrEmpty(lv.EmployeeName),
			lv.LeaveType,
			lv.StartDate.Format("2006-01-02"),
			lv.EndDate.Format("2006-01-02"),
			strconv.Itoa(lv.Days),
			string(lv.Status),
		})
	}

	return table, nil
}

func (s *reportService) payrollTable(ctx context.Context) (report.Table, error) {
	payrolls, err := s.payrollRepo.List(ctx, payroll.ListPayrollFilter{})
	if err != nil {
		return report.Table{}, err
	}

	table := report.Table{
		Columns: []string{
			"id", "employee_code", "employee_name", "month", "year",
			"basic_salary", "allowances", "deductions", "net_salary", "status",
		},
	}
	for _, p := range payrolls {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(p.ID, 10),
			strOrEmpty(p.EmployeeCode),
			strOrEmpty(p.EmployeeName),
			p.Month,
			strconv.Itoa(p.Year),
			p.BasicSalary.String(),
			p.Allowances.String(),
			p.Deductions.String(),
			p.NetSalary.String(),
			string(p.Status),
		})
	}

	return table, nil
}
