package report

import (
	"context"
	"io"
)

type ReportService interface {
	// GenerateAttendanceReport builds the filtered row set + summary block
	// and renders it to the requested format
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (Artifact, error)
	// GenerateEmployeeSnapshot embeds a captured view image as a one-page document
	GenerateEmployeeSnapshot(ctx context.Context, employeeID int, image io.Reader) (Artifact, error)
	// GenerateEmployeeQR renders the employee's finger-id QR card
	GenerateEmployeeQR(ctx context.Context, employeeID int) (Artifact, error)
}
