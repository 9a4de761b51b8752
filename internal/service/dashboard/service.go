package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/staffhub/hrm-backend-go/internal/domain/dashboard"
)

type dashboardService struct {
	dashboardRepo dashboard.DashboardRepository
	now           func() time.Time
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// GetStats implements dashboard.DashboardService. The four counters
// load concurrently; any failure aborts the whole read so the
// dashboard never renders a partial aggregate.
func (s *dashboardService) GetStats(ctx context.Context) (dashboard.Stats, error) {
	var stats dashboard.Stats

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.dashboardRepo.CountEmployees(gCtx)
		stats.TotalEmployees = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountDepartments(gCtx)
		stats.TotalDepartments = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountPresentOn(gCtx, today)
		stats.PresentToday = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountPendingLeaves(gCtx)
		stats.PendingLeaves = n
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.Stats{}, err
	}

	return stats, nil
}
