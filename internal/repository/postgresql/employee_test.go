package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "attendances_employee_date_key"}

	assert.True(t, uniqueViolation(pgErr, "attendances_employee_date_key"))
	assert.True(t, uniqueViolation(fmt.Errorf("insert failed: %w", pgErr), "attendances_employee_date_key"))

	assert.False(t, uniqueViolation(pgErr, "employees_email_key"))
	assert.False(t, uniqueViolation(&pgconn.PgError{Code: "23503", ConstraintName: "attendances_employee_date_key"}, "attendances_employee_date_key"))
	assert.False(t, uniqueViolation(errors.New("plain error"), "attendances_employee_date_key"))
}
