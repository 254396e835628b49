package http

import (
	"encoding/json"
	"net/http"

	"github.com/mealroll/console-backend-go/internal/domain/attendance"
	"github.com/mealroll/console-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	RecordAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.ListAttendanceFilter{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		MenuName:  q.Get("menu_name"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Page:      queryInt(q.Get("page")),
		Limit:     queryInt(q.Get("limit")),
		SortOrder: q.Get("sort_order"),
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: int64(result.TotalCount),
		TotalPages: result.TotalPages,
	})
}

// RecordAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := result.Detail
	if message == "" {
		message = "Attendance recorded"
	}
	response.Created(w, message, result.Record)
}
