package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (Attendance, error)
	List(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)
	Update(ctx context.Context, att Attendance) (Attendance, error)
	Upsert(ctx context.Context, att Attendance) (Attendance, error)
}
