package employee

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	employeeDomain "github.com/mealroll/console-backend-go/internal/domain/employee"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

const rosterFixture = `[
	{"id": 1, "employee_id": "EMP-001", "name": "Charlie", "phone": "0811", "gender": "M", "position": "Cook", "salary": 3200000,
		"attendance_history": [{"id": 1, "attendance_date": "2026-08-10", "attendance_status": "Present", "food_menu": []}]},
	{"id": 2, "employee_id": "EMP-002", "name": "alice", "phone": "0822", "gender": "F", "position": "Server", "salary": "2500000",
		"attendance_history": []},
	{"id": 3, "employee_id": "EMP-003", "name": "Bob", "phone": "0833", "gender": "M", "position": "Server", "salary": 2800000,
		"attendance_history": [{"id": 2, "attendance_date": "2026-07-01", "attendance_status": "Present", "food_menu": []}]}
]`

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"upstream_token": "backend-token",
		"type":           "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T, handler http.HandlerFunc) employeeDomain.EmployeeService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewEmployeeService(upstream.NewClient(srv.URL, 5*time.Second))
}

func rosterService(t *testing.T) employeeDomain.EmployeeService {
	return newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterFixture))
	})
}

func TestListEmployeesSortByName(t *testing.T) {
	svc := rosterService(t)

	resp, err := svc.ListEmployees(authedContext(t), employeeDomain.ListEmployeesFilter{
		SortBy: "name",
	})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 3)
	// Name sorting is case-insensitive.
	assert.Equal(t, "alice", resp.Employees[0].Name)
	assert.Equal(t, "Bob", resp.Employees[1].Name)
	assert.Equal(t, "Charlie", resp.Employees[2].Name)
}

func TestListEmployeesSortBySalaryDesc(t *testing.T) {
	svc := rosterService(t)

	resp, err := svc.ListEmployees(authedContext(t), employeeDomain.ListEmployeesFilter{
		SortBy:    "salary",
		SortOrder: "desc",
	})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 3)
	assert.Equal(t, "Charlie", resp.Employees[0].Name)
	assert.Equal(t, "Bob", resp.Employees[1].Name)
	assert.Equal(t, "alice", resp.Employees[2].Name)
}

func TestListEmployeesUnsortedKeepsBackendOrder(t *testing.T) {
	svc := rosterService(t)

	resp, err := svc.ListEmployees(authedContext(t), employeeDomain.ListEmployeesFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 3)
	assert.Equal(t, "Charlie", resp.Employees[0].Name)
	assert.Equal(t, "alice", resp.Employees[1].Name)
	assert.Equal(t, "Bob", resp.Employees[2].Name)
}

func TestListEmployeesFilterAndSearch(t *testing.T) {
	svc := rosterService(t)

	resp, err := svc.ListEmployees(authedContext(t), employeeDomain.ListEmployeesFilter{
		Gender:   "M",
		Position: "Server",
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "Bob", resp.Employees[0].Name)

	byPhone, err := svc.ListEmployees(authedContext(t), employeeDomain.ListEmployeesFilter{
		Search: "0822",
	})
	require.NoError(t, err)
	require.Len(t, byPhone.Employees, 1)
	assert.Equal(t, "alice", byPhone.Employees[0].Name)
}

func TestListEmployeesAttendanceWindow(t *testing.T) {
	svc := rosterService(t)

	// Employees with any attendance inside the window.
	resp, err := svc.ListEmployees(authedContext(t), employeeDomain.ListEmployeesFilter{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "Charlie", resp.Employees[0].Name)
}

func TestListEmployeesPagination(t *testing.T) {
	svc := rosterService(t)

	resp, err := svc.ListEmployees(authedContext(t), employeeDomain.ListEmployeesFilter{
		Page:  2,
		Limit: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Employees, 1)
}

func TestGetEmployeeNotFound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.GetEmployee(authedContext(t), 99)
	assert.ErrorIs(t, err, employeeDomain.ErrEmployeeNotFound)
}

func TestCreateEmployeeValidates(t *testing.T) {
	svc := rosterService(t)

	_, err := svc.CreateEmployee(authedContext(t), employeeDomain.CreateEmployeeRequest{
		Name: "No IDs",
	})
	assert.Error(t, err)
}
