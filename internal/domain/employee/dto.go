package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode  *string          `json:"employee_code,omitempty"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Email         string           `json:"email"`
	Password      string           `json:"password"`
	Phone         *string          `json:"phone,omitempty"`
	DepartmentID  *int64           `json:"department_id,omitempty"`
	Role          string           `json:"role"`
	Position      *string          `json:"position,omitempty"`
	DateOfJoining *string          `json:"date_of_joining,omitempty"` // YYYY-MM-DD
	DateOfBirth   *string          `json:"date_of_birth,omitempty"`   // YYYY-MM-DD
	Address       *string          `json:"address,omitempty"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	IsAdmin       bool             `json:"is_admin"`
	Status        *string          `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if r.Role != "" {
		validRoles := []string{string(RoleEmployee), string(RoleManager), string(RoleHR)}
		if !validator.IsInSlice(r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: employee, manager, hr",
			})
		}
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusInactive)}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive",
			})
		}
	}

	if r.DateOfJoining != nil && *r.DateOfJoining != "" {
		if _, valid := validator.IsValidDate(*r.DateOfJoining); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, valid := validator.IsValidDate(*r.DateOfBirth); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a partial update. Nil means "leave as is".
// Non-admin callers may only set the self-service subset: first_name,
// last_name, phone, address.
type UpdateEmployeeRequest struct {
	ID            int64            `json:"-"`
	FirstName     *string          `json:"first_name,omitempty"`
	LastName      *string          `json:"last_name,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	DepartmentID  *int64           `json:"department_id,omitempty"`
	Role          *string          `json:"role,omitempty"`
	Position      *string          `json:"position,omitempty"`
	DateOfJoining *string          `json:"date_of_joining,omitempty"` // YYYY-MM-DD
	DateOfBirth   *string          `json:"date_of_birth,omitempty"`   // YYYY-MM-DD
	Address       *string          `json:"address,omitempty"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	IsAdmin       *bool            `json:"is_admin,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Role != nil {
		validRoles := []string{string(RoleEmployee), string(RoleManager), string(RoleHR)}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: employee, manager, hr",
			})
		}
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusInactive)}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive",
			})
		}
	}

	if r.DateOfJoining != nil && *r.DateOfJoining != "" {
		if _, valid := validator.IsValidDate(*r.DateOfJoining); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, valid := validator.IsValidDate(*r.DateOfBirth); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsSelfServiceOnly reports whether the update touches nothing beyond the
// self-service subset.
func (r *UpdateEmployeeRequest) IsSelfServiceOnly() bool {
	return r.Email == nil &&
		r.DepartmentID == nil &&
		r.Role == nil &&
		r.Position == nil &&
		r.DateOfJoining == nil &&
		r.DateOfBirth == nil &&
		r.Salary == nil &&
		r.IsAdmin == nil &&
		r.Status == nil
}

// ToResponse converts the record to its API shape with every field
// populated. Callers hide the salary for viewers who are neither the
// employee nor an admin.
func (e *Employee) ToResponse() EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Role:           string(e.Role),
		Position:       e.Position,
		Address:        e.Address,
		IsAdmin:        e.IsAdmin,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}

	salary := e.Salary
	resp.Salary = &salary

	if e.DateOfJoining != nil {
		doj := e.DateOfJoining.Format("2006-01-02")
		resp.DateOfJoining = &doj
	}
	if e.DateOfBirth != nil {
		dob := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}

	return resp
}

type EmployeeResponse struct {
	ID             int64            `json:"id"`
	EmployeeCode   string           `json:"employee_code"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Phone          *string          `json:"phone,omitempty"`
	DepartmentID   *int64           `json:"department_id,omitempty"`
	DepartmentName *string          `json:"department_name,omitempty"`
	Role           string           `json:"role"`
	Position       *string          `json:"position,omitempty"`
	DateOfJoining  *string          `json:"date_of_joining,omitempty"`
	DateOfBirth    *string          `json:"date_of_birth,omitempty"`
	Address        *string          `json:"address,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	IsAdmin        bool             `json:"is_admin"`
	Status         string           `json:"status"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}
