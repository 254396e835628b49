package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mealroll/console-backend-go/internal/domain/report"
	"github.com/mealroll/console-backend-go/internal/handler/http/response"
)

// maxSnapshotUpload bounds captured view images at 10MB.
const maxSnapshotUpload = 10 << 20

type ReportHandler interface {
	GenerateAttendanceReport(w http.ResponseWriter, r *http.Request)
	GenerateEmployeeSnapshot(w http.ResponseWriter, r *http.Request)
	GenerateEmployeeQR(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GenerateAttendanceReport implements ReportHandler
func (h *reportHandlerImpl) GenerateAttendanceReport(w http.ResponseWriter, r *http.Request) {
	var req report.AttendanceReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	artifact, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report generated", artifact)
}

// GenerateEmployeeSnapshot implements ReportHandler. The captured history
// view arrives as a multipart upload under the "image" field.
func (h *reportHandlerImpl) GenerateEmployeeSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Employee ID must be a number", nil)
		return
	}

	if err := r.ParseMultipartForm(maxSnapshotUpload); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Field 'image' is required", nil)
		return
	}
	defer file.Close()

	artifact, err := h.reportService.GenerateEmployeeSnapshot(r.Context(), id, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Snapshot generated", artifact)
}

// GenerateEmployeeQR implements ReportHandler
func (h *reportHandlerImpl) GenerateEmployeeQR(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Employee ID must be a number", nil)
		return
	}

	artifact, err := h.reportService.GenerateEmployeeQR(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "QR card generated", artifact)
}
