package employee

import "context"

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email (login lookup).
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListByDepartment retrieves every employee in a department.
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)

	// List retrieves all employees.
	List(ctx context.Context) ([]Employee, error)
}
