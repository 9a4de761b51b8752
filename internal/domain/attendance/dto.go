package attendance

import (
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest is the admin upsert: the supplied status is
// written as-is, it is never re-derived from the times.
type MarkAttendanceRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListAttendanceFilter narrows the attendance listing. EmployeeID is
// forced to the caller's own id for non-admins.
type ListAttendanceFilter struct {
	EmployeeID *int64
	DateFrom   *string
	DateTo     *string
}

type AttendanceResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Status       Status  `json:"status"`
	IsLate       bool    `json:"is_late"`
}
