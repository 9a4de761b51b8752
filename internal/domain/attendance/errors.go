package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNotCheckedIn       = errors.New("no check-in recorded for today")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrEmployeeNotFound   = errors.New("employee not found")
)
