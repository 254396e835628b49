package employee

import "context"

type EmployeeService interface {
	ListEmployees(ctx context.Context, filter ListEmployeesFilter) (*ListEmployeesResponse, error)
	GetEmployee(ctx context.Context, id int) (Employee, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
}
