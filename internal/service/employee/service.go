package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/pkg/database"
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
	"github.com/staffhub/hrm-backend-go/internal/repository/postgresql"
)

type employeeService struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	tokenRepo    auth.RefreshTokenRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	tokenRepo auth.RefreshTokenRepository,
) employee.EmployeeService {
	return &employeeService{
		db:           db,
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
	}
}

// generateEmployeeCode derives a short unique code when the caller
// does not supply one.
func generateEmployeeCode() string {
	id := uuid.New()
	return "EMP-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// CreateEmployee implements employee.EmployeeService.
func (s *employeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hashed)

	emp := employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		Address:      req.Address,
		IsAdmin:      req.IsAdmin,
		Role:         employee.RoleEmployee,
		Status:       employee.StatusActive,
		PasswordHash: &passwordHash,
	}

	if req.EmployeeCode != nil && *req.EmployeeCode != "" {
		emp.EmployeeCode = *req.EmployeeCode
	} else {
		emp.EmployeeCode = generateEmployeeCode()
	}
	if req.Role != "" {
		emp.Role = employee.Role(req.Role)
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.DateOfJoining != nil && *req.DateOfJoining != "" {
		doj, _ := validator.IsValidDate(*req.DateOfJoining)
		emp.DateOfJoining = &doj
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, _ := validator.IsValidDate(*req.DateOfBirth)
		emp.DateOfBirth = &dob
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return created.ToResponse(), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeService) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, auth.ErrInvalidToken
	}

	if !principal.IsAdmin && principal.EmployeeID != id {
		return employee.EmployeeResponse{}, employee.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return visibleResponse(emp, principal), nil
}

// ListEmployees implements employee.EmployeeService. Admins see the
// whole directory newest-first; everyone else sees only their own
// record.
func (s *employeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if !principal.IsAdmin {
		emp, err := s.employeeRepo.GetByID(ctx, principal.EmployeeID)
		if err != nil {
			return nil, err
		}
		return []employee.EmployeeResponse{visibleResponse(emp, principal)}, nil
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, visibleResponse(emp, principal))
	}

	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService. Non-admins may
// only update their own record, and only the self-service fields.
func (s *employeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, auth.ErrInvalidToken
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !principal.IsAdmin {
		if principal.EmployeeID != req.ID {
			return employee.EmployeeResponse{}, employee.ErrForbidden
		}
		if !req.IsSelfServiceOnly() {
			return employee.EmployeeResponse{}, employee.ErrSelfServiceFieldReadOnly
		}
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return visibleResponse(updated, principal), nil
}

// DeleteEmployee implements employee.EmployeeService. The employee's
// outstanding refresh tokens are revoked in the same transaction so a
// deleted account cannot mint new access tokens.
func (s *employeeService) DeleteEmployee(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.tokenRepo.RevokeAllForEmployee(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
}

// visibleResponse strips the salary unless the viewer is an admin or
// the employee themselves.
func visibleResponse(emp employee.Employee, principal auth.Principal) employee.EmployeeResponse {
	resp := emp.ToResponse()
	if !principal.IsAdmin && principal.EmployeeID != emp.ID {
		resp.Salary = nil
	}
	return resp
}
