package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveTypes are the accepted leave_type values.
var LeaveTypes = []string{"sick", "casual", "annual", "unpaid"}

type Leave struct {
	ID         int64
	EmployeeID int64
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string
	Status     Status
	ApprovedBy *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
