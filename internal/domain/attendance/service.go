package attendance

import "context"

type AttendanceService interface {
	// CheckIn records today's check-in for the calling employee.
	CheckIn(ctx context.Context) (AttendanceResponse, error)
	// CheckOut stamps the check-out time on today's record.
	CheckOut(ctx context.Context) (AttendanceResponse, error)
	// MarkAttendance is the admin upsert for any employee and date.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)
}
