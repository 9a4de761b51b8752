package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/hrm-backend-go/internal/domain/dashboard"
)

type stubDashboardRepo struct {
	employees   int64
	departments int64
	present     int64
	pending     int64
	presentDate time.Time
	presentErr  error
}

func (s *stubDashboardRepo) CountEmployees(ctx context.Context) (int64, error) {
	return s.employees, nil
}

func (s *stubDashboardRepo) CountDepartments(ctx context.Context) (int64, error) {
	return s.departments, nil
}

func (s *stubDashboardRepo) CountPresentOn(ctx context.Context, date time.Time) (int64, error) {
	s.presentDate = date
	return s.present, s.presentErr
}

func (s *stubDashboardRepo) CountPendingLeaves(ctx context.Context) (int64, error) {
	return s.pending, nil
}

func TestGetStats(t *testing.T) {
	repo := &stubDashboardRepo{employees: 42, departments: 5, present: 30, pending: 3}
	svc := &dashboardService{
		dashboardRepo: repo,
		now:           func() time.Time { return time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC) },
	}

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dashboard.Stats{
		TotalEmployees:   42,
		TotalDepartments: 5,
		PresentToday:     30,
		PendingLeaves:    3,
	}, stats)

	// The present counter is asked about the calendar date, not the instant.
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), repo.presentDate)
}

func TestGetStatsFailsAtomically(t *testing.T) {
	repo := &stubDashboardRepo{
		employees:  42,
		presentErr: errors.New("connection reset"),
	}
	svc := &dashboardService{
		dashboardRepo: repo,
		now:           time.Now,
	}

	_, err := svc.GetStats(context.Background())
	assert.Error(t, err)
}
