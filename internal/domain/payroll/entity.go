package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

type Payroll struct {
	ID          int64
	EmployeeID  int64
	Month       string
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      Status
	CreatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
