package attendance

import (
	"context"

	"github.com/mealroll/console-backend-go/internal/domain/employee"
)

type RecordAttendanceResponse struct {
	Detail string                    `json:"detail,omitempty"`
	Record employee.AttendanceRecord `json:"record"`
}

type AttendanceService interface {
	ListAttendance(ctx context.Context, filter ListAttendanceFilter) (*ListAttendanceResponse, error)
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (*RecordAttendanceResponse, error)
}
