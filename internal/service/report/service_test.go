package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/domain/leave"
	"github.com/staffhub/hrm-backend-go/internal/domain/payroll"
	"github.com/staffhub/hrm-backend-go/internal/domain/report"
)

type stubEmployeeRepo struct{ employees []employee.Employee }

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}
func (s *stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (s *stubEmployeeRepo) Delete(ctx context.Context, id int64) error { return nil }

type stubAttendanceRepo struct{ records []attendance.Attendance }

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}
func (s *stubAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}
func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}
func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	return s.records, nil
}
func (s *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}
func (s *stubAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

type stubLeaveRepo struct{ leaves []leave.Leave }

func (s *stubLeaveRepo) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	return lv, nil
}
func (s *stubLeaveRepo) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	return leave.Leave{}, leave.ErrLeaveNotFound
}
func (s *stubLeaveRepo) List(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.Leave, error) {
	return s.leaves, nil
}
func (s *stubLeaveRepo) UpdateStatus(ctx context.Context, id int64, status leave.Status, approvedBy int64) (leave.Leave, error) {
	return leave.Leave{}, leave.ErrLeaveNotFound
}

type stubPayrollRepo struct{ payrolls []payroll.Payroll }

func (s *stubPayrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	return p, nil
}
func (s *stubPayrollRepo) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}
func (s *stubPayrollRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, month string, year int) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}
func (s *stubPayrollRepo) List(ctx context.Context, filter payroll.ListPayrollFilter) ([]payroll.Payroll, error) {
	return s.payrolls, nil
}

func newTestService(employees []employee.Employee, leaves []leave.Leave) *reportService {
	return &reportService{
		employeeRepo:   &stubEmployeeRepo{employees: employees},
		attendanceRepo: &stubAttendanceRepo{},
		leaveRepo:      &stubLeaveRepo{leaves: leaves},
		payrollRepo:    &stubPayrollRepo{},
		now:            func() time.Time { return time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC) },
	}
}

func TestExportEmployeesCSV(t *testing.T) {
	dept := "Engineering"
	svc := newTestService([]employee.Employee{
		{
			ID:             1,
			EmployeeCode:   "EMP-0A1B2C3D",
			FirstName:      "Ada",
			LastName:       "Wong",
			Email:          "ada@example.com",
			DepartmentName: &dept,
			Role:           employee.RoleHR,
			Status:         employee.StatusActive,
			Salary:         decimal.RequireFromString("5000"),
		},
	}, nil)

	data, filename, err := svc.ExportCSV(context.Background(), report.EntityEmployees)

	require.NoError(t, err)
	assert.Equal(t, "employees_2024-03-04.csv", filename)
	want := "id,employee_code,first_name,last_name,email,department,role,position,status,salary\n" +
		"1,EMP-0A1B2C3D,Ada,Wong,ada@example.com,Engineering,hr,,active,5000"
	assert.Equal(t, want, string(data))
}

func TestExportLeavesCSV(t *testing.T) {
	code := "EMP-0A1B2C3D"
	name := "Ada Wong"
	svc := newTestService(nil, []leave.Leave{
		{
			ID:           4,
			EmployeeID:   1,
			EmployeeCode: &code,
			EmployeeName: &name,
			LeaveType:    "sick",
			StartDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			Days:         3,
			Status:       leave.StatusApproved,
		},
	})

	data, filename, err := svc.ExportCSV(context.Background(), report.EntityLeaves)

	require.NoError(t, err)
	assert.Equal(t, "leaves_2024-03-04.csv", filename)
	want := "id,employee_code,employee_name,leave_type,start_date,end_date,days,status\n" +
		"4,EMP-0A1B2C3D,Ada Wong,sick,2024-03-01,2024-03-03,3,approved"
	assert.Equal(t, want, string(data))
}

func TestExportUnknownEntity(t *testing.T) {
	svc := newTestService(nil, nil)

	_, _, err := svc.ExportCSV(context.Background(), "invoices")
	assert.ErrorIs(t, err, report.ErrUnknownEntity)
}
