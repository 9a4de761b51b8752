package leave

import (
	"context"
	"time"

	"github.com/staffhub/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub/hrm-backend-go/internal/domain/leave"
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
)

type leaveService struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &leaveService{leaveRepo: leaveRepo}
}

func toResponse(lv leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           lv.ID,
		EmployeeID:   lv.EmployeeID,
		EmployeeName: lv.EmployeeName,
		EmployeeCode: lv.EmployeeCode,
		LeaveType:    lv.LeaveType,
		StartDate:    lv.StartDate.Format("2006-01-02"),
		EndDate:      lv.EndDate.Format("2006-01-02"),
		Days:         lv.Days,
		Reason:       lv.Reason,
		Status:       lv.Status,
		ApprovedBy:   lv.ApprovedBy,
		CreatedAt:    lv.CreatedAt.Format(time.RFC3339),
	}
}

// CreateLeave implements leave.LeaveService. The request is always
// filed for the caller and always starts out pending; the day count is
// computed here, never taken from the client.
func (s *leaveService) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, auth.ErrInvalidToken
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	if end.Before(start) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: principal.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       leave.Days(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

// ListLeaves implements leave.LeaveService. Non-admins only see their
// own requests.
func (s *leaveService) ListLeaves(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if !principal.IsAdmin {
		filter.EmployeeID = &principal.EmployeeID
	}

	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		responses = append(responses, toResponse(lv))
	}

	return responses, nil
}

// ApproveLeave implements leave.LeaveService.
func (s *leaveService) ApproveLeave(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.StatusApproved)
}

// RejectLeave implements leave.LeaveService.
func (s *leaveService) RejectLeave(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.StatusRejected)
}

// decide moves a pending request to its final status and stamps the
// acting admin. A request that has already been decided is never
// flipped.
func (s *leaveService) decide(ctx context.Context, id int64, status leave.Status) (leave.LeaveResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, auth.ErrInvalidToken
	}

	lv, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if lv.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, id, status, principal.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(updated), nil
}
