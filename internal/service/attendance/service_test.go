package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
)

func testCtx(t *testing.T, employeeID int64, isAdmin bool) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": strconv.FormatInt(employeeID, 10),
		"email":       "test@example.com",
		"is_admin":    isAdmin,
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type stubAttendanceRepo struct {
	records map[int64]attendance.Attendance
	nextID  int64
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[int64]attendance.Attendance), nextID: 1}
}

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = s.nextID
	s.nextID++
	s.records[att.ID] = att
	return att, nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	att, ok := s.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	for _, att := range s.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range s.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if _, ok := s.records[att.ID]; !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	s.records[att.ID] = att
	return att, nil
}

func (s *stubAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for id, existing := range s.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			if att.CheckInTime != nil {
				existing.CheckInTime = att.CheckInTime
			}
			if att.CheckOutTime != nil {
				existing.CheckOutTime = att.CheckOutTime
			}
			existing.Status = att.Status
			s.records[id] = existing
			return existing, nil
		}
	}
	return s.Create(ctx, att)
}

type stubEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func newTestService(repo *stubAttendanceRepo, at time.Time) attendance.AttendanceService {
	svc := &attendanceService{
		attendanceRepo: repo,
		employeeRepo:   &stubEmployeeRepo{employees: map[int64]employee.Employee{7: {ID: 7}}},
		now:            func() time.Time { return at },
	}
	return svc
}

func TestCheckInOnTime(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC))

	resp, err := svc.CheckIn(testCtx(t, 7, false))

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.False(t, resp.IsLate)
	assert.Equal(t, "2024-03-04", resp.Date)
}

func TestCheckInLate(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC))

	resp, err := svc.CheckIn(testCtx(t, 7, false))

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.True(t, resp.IsLate)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))
	ctx := testCtx(t, 7, false)

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOut(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := testCtx(t, 7, false)

	svc := newTestService(repo, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	svc = newTestService(repo, time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC))
	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutTime)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc := newTestService(newStubAttendanceRepo(), time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(testCtx(t, 7, false))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutOnMarkedAbsentDay(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC))

	// Admin marks the day absent without any times; the employee's
	// check-out must still fail, not stamp a lone check_out.
	_, err := svc.MarkAttendance(testCtx(t, 1, true), attendance.MarkAttendanceRequest{
		EmployeeID: 7,
		Date:       "2024-03-04",
		Status:     "absent",
	})
	require.NoError(t, err)

	_, err = svc.CheckOut(testCtx(t, 7, false))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestMarkAttendanceOverwritesExisting(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := testCtx(t, 7, false)

	svc := newTestService(repo, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))
	checkedIn, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, checkedIn.Status)

	// Admin flips the day to absent; the record is updated in place.
	marked, err := svc.MarkAttendance(testCtx(t, 1, true), attendance.MarkAttendanceRequest{
		EmployeeID: 7,
		Date:       "2024-03-04",
		Status:     "absent",
	})
	require.NoError(t, err)
	assert.Equal(t, checkedIn.ID, marked.ID)
	assert.Equal(t, attendance.StatusAbsent, marked.Status)
}

func TestMarkAttendanceRejectsCheckOutBeforeCheckIn(t *testing.T) {
	svc := newTestService(newStubAttendanceRepo(), time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))

	checkIn := "2024-03-04T17:00:00Z"
	checkOut := "2024-03-04T08:00:00Z"
	_, err := svc.MarkAttendance(testCtx(t, 1, true), attendance.MarkAttendanceRequest{
		EmployeeID:   7,
		Date:         "2024-03-04",
		Status:       "present",
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "check_out_time")
}

func TestMarkAttendanceUnknownEmployee(t *testing.T) {
	svc := newTestService(newStubAttendanceRepo(), time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))

	_, err := svc.MarkAttendance(testCtx(t, 1, true), attendance.MarkAttendanceRequest{
		EmployeeID: 99,
		Date:       "2024-03-04",
		Status:     "present",
	})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
}

func TestListAttendanceScopesNonAdminToSelf(t *testing.T) {
	repo := newStubAttendanceRepo()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	for i, employeeID := range []int64{7, 8, 7} {
		_, err := repo.Create(context.Background(), attendance.Attendance{
			EmployeeID: employeeID,
			Date:       day.AddDate(0, 0, i),
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	svc := newTestService(repo, day)

	out, err := svc.ListAttendance(testCtx(t, 7, false), attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	for _, att := range out {
		assert.Equal(t, int64(7), att.EmployeeID)
	}

	out, err = svc.ListAttendance(testCtx(t, 1, true), attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 3)
}
