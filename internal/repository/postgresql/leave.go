package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/hrm-backend-go/internal/domain/leave"
	"github.com/staffhub/hrm-backend-go/internal/pkg/database"
)

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.days,
	l.reason, l.status, l.approved_by, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	e.employee_code`

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var lv leave.Leave
	err := row.Scan(
		&lv.ID, &lv.EmployeeID, &lv.LeaveType, &lv.StartDate, &lv.EndDate, &lv.Days,
		&lv.Reason, &lv.Status, &lv.ApprovedBy, &lv.CreatedAt, &lv.UpdatedAt,
		&lv.EmployeeName, &lv.EmployeeCode,
	)
	return lv, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, leave_type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lv.EmployeeID,
		lv.LeaveType,
		lv.StartDate,
		lv.EndDate,
		lv.Days,
		lv.Reason,
		lv.Status,
	).Scan(&lv.ID, &lv.CreatedAt, &lv.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lv, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	lv, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}

	return lv, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE ` + baseWhere + `
		ORDER BY l.id DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		lv, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, lv)
	}

	return leaves, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository. The deciding admin is
// stamped on approval and rejection alike.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id int64, status leave.Status, approvedBy int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, approved_by = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID int64
	if err := q.QueryRow(ctx, query, status, approvedBy, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}
