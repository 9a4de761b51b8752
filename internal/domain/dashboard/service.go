package dashboard

import "context"

type DashboardService interface {
	GetStats(ctx context.Context) (Stats, error)
}
