package leave

import "context"

type LeaveService interface {
	// CreateLeave files a pending request for the calling employee.
	// The day count is computed server-side from the date range.
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListLeaves(ctx context.Context, filter ListLeaveFilter) ([]LeaveResponse, error)
	// ApproveLeave and RejectLeave only act on pending requests;
	// a second decision on the same request is refused.
	ApproveLeave(ctx context.Context, id int64) (LeaveResponse, error)
	RejectLeave(ctx context.Context, id int64) (LeaveResponse, error)
}
