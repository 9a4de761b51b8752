package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, lv Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	List(ctx context.Context, filter ListLeaveFilter) ([]Leave, error)
	UpdateStatus(ctx context.Context, id int64, status Status, approvedBy int64) (Leave, error)
}
