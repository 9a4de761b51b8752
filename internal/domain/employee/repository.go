package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create creates a new employee and returns it with server-assigned fields
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByEmail retrieves an employee by login email
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employees, newest first
	List(ctx context.Context) ([]Employee, error)

	// Update applies a partial update and returns the updated record
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes an employee record
	Delete(ctx context.Context, id int64) error
}
