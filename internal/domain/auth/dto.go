package auth

import (
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Refresh) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh",
			Message: "refresh token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginResponse mirrors the token pair issued on successful login
// together with the authenticated employee's profile.
type LoginResponse struct {
	Access  string                    `json:"access"`
	Refresh string                    `json:"refresh"`
	User    employee.EmployeeResponse `json:"user"`

	// RefreshExpiresAt feeds the cookie lifetime; it is not part of
	// the JSON body.
	RefreshExpiresAt int64 `json:"-"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}
