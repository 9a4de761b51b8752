package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
)

// Principal is the authenticated caller extracted from the access token.
// is_admin drives authorization; role on the employee record is job
// classification only and never checked here.
type Principal struct {
	EmployeeID int64
	Email      string
	IsAdmin    bool
}

// FromContext extracts the Principal from the verified JWT claims.
func FromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	rawID, ok := claims["employee_id"].(string)
	if !ok || rawID == "" {
		return Principal{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	employeeID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return Principal{}, fmt.Errorf("employee_id claim is not a valid id: %w", err)
	}

	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return Principal{
		EmployeeID: employeeID,
		Email:      email,
		IsAdmin:    isAdmin,
	}, nil
}
