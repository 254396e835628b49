package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mealroll/console-backend-go/internal/domain/employee"
)

func (c *Client) ListEmployees(ctx context.Context, token string) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees/", token, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, token string, id int) (employee.Employee, error) {
	var emp employee.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/employee/%d/", id), token, nil, &emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (c *Client) CreateEmployee(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var created employee.Employee
	if err := c.do(ctx, http.MethodPost, "/api/employee/add/", token, req, &created); err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, token string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var updated employee.Employee
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/employee/%d/edit/", req.ID), token, req, &updated); err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/employee/%d/delete/", id), token, nil, nil)
}
