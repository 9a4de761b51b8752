package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee is the directory record. IsAdmin is orthogonal to Role:
// Role classifies the job, IsAdmin grants cross-employee visibility
// and write access.
type Employee struct {
	ID            int64
	EmployeeCode  string
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	DepartmentID  *int64
	Role          Role
	Position      *string
	DateOfJoining *time.Time
	DateOfBirth   *time.Time
	Address       *string
	Salary        decimal.Decimal
	IsAdmin       bool
	Status        Status
	PasswordHash  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	DepartmentName *string
}
