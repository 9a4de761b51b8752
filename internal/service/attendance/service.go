package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffhub/hrm-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		EmployeeCode: att.EmployeeCode,
		Date:         att.Date.Format("2006-01-02"),
		Status:       att.Status,
	}

	if att.CheckInTime != nil {
		checkIn := att.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &checkIn
		resp.IsLate = attendance.IsLateCheckIn(*att.CheckInTime)
	}
	if att.CheckOutTime != nil {
		checkOut := att.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &checkOut
	}

	return resp
}

// today truncates now to the calendar date.
func (s *attendanceService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceService) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, auth.ErrInvalidToken
	}

	now := s.now()
	today := s.today()

	if _, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, principal.EmployeeID, today); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:  principal.EmployeeID,
		Date:        today,
		CheckInTime: &now,
		Status:      attendance.CheckInStatus(now),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceService) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, auth.ErrInvalidToken
	}

	now := s.now()

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, principal.EmployeeID, s.today())
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}

	// A record without a check-in (e.g. admin-marked absent) is not
	// checkable-out.
	if att.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if att.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	att.CheckOutTime = &now

	updated, err := s.attendanceRepo.Update(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(updated), nil
}

// MarkAttendance implements attendance.AttendanceService. The supplied
// status is written as-is; an existing record for the employee and
// date is overwritten.
func (s *attendanceService) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	}

	if req.CheckInTime != nil && *req.CheckInTime != "" {
		checkIn, err := time.Parse(time.RFC3339, *req.CheckInTime)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("check_in_time must be RFC3339: %w", err)
		}
		att.CheckInTime = &checkIn
	}
	if req.CheckOutTime != nil && *req.CheckOutTime != "" {
		checkOut, err := time.Parse(time.RFC3339, *req.CheckOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("check_out_time must be RFC3339: %w", err)
		}
		att.CheckOutTime = &checkOut
	}

	if att.CheckInTime != nil && att.CheckOutTime != nil && !att.CheckOutTime.After(*att.CheckInTime) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "check_out_time",
			Message: "check_out_time must be after check_in_time",
		}}
	}

	upserted, err := s.attendanceRepo.Upsert(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(upserted), nil
}

// ListAttendance implements attendance.AttendanceService. Non-admins
// only ever see their own records regardless of the requested filter.
func (s *attendanceService) ListAttendance(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if !principal.IsAdmin {
		filter.EmployeeID = &principal.EmployeeID
	}

	attendances, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}
