package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/hrm-backend-go/internal/domain/dashboard"
	"github.com/staffhub/hrm-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'active'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// CountDepartments implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountDepartments(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM departments`)
	if err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return n, nil
}

// CountPresentOn implements dashboard.DashboardRepository. Late
// arrivals still count as present for the day.
func (r *dashboardRepository) CountPresentOn(ctx context.Context, date time.Time) (int64, error) {
	n, err := r.count(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date = $1 AND status IN ('present', 'late')`,
		date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count present employees: %w", err)
	}
	return n, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeaves(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM leaves WHERE status = 'pending'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return n, nil
}
