package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	CountPresentOn(ctx context.Context, date time.Time) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
}
