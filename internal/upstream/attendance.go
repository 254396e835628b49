package upstream

import (
	"context"
	"net/http"

	"github.com/mealroll/console-backend-go/internal/domain/attendance"
	"github.com/mealroll/console-backend-go/internal/domain/employee"
)

// ListAttendance returns the full attendance snapshot: every employee with
// its embedded history. Aggregation and listing both start from this call.
func (c *Client) ListAttendance(ctx context.Context, token string) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := c.do(ctx, http.MethodGet, "/api/attendance/", token, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

type recordAttendanceResponse struct {
	Message struct {
		Detail string `json:"detail"`
	} `json:"message"`
	Data employee.AttendanceRecord `json:"data"`
}

// RecordAttendance submits a check-in by finger id and menu choice; the
// backend answers with the stored record, which callers append to their
// local snapshot.
func (c *Client) RecordAttendance(ctx context.Context, token string, req attendance.RecordAttendanceRequest) (employee.AttendanceRecord, string, error) {
	var resp recordAttendanceResponse
	if err := c.do(ctx, http.MethodPost, "/api/attendance/add/", token, req, &resp); err != nil {
		return employee.AttendanceRecord{}, "", err
	}
	return resp.Data, resp.Message.Detail, nil
}
