package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reportDomain "github.com/mealroll/console-backend-go/internal/domain/report"
	"github.com/mealroll/console-backend-go/internal/pkg/storage"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

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

func newTestService(t *testing.T, handler http.HandlerFunc) (reportDomain.ReportService, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	fileStorage, err := storage.NewLocalStorage(dir, "http://localhost:8080/downloads")
	require.NoError(t, err)

	return NewReportService(upstream.NewClient(srv.URL, 5*time.Second), fileStorage), dir
}

func backendFixture(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/attendance/":
			w.Write([]byte(`[
				{"id": 1, "employee_id": "EMP-001", "name": "Alice", "finger_id": "FP-1",
					"attendance_history": [
						{"id": 11, "attendance_date": "2026-08-10", "attendance_status": "Present", "food_menu": [{"id": 1, "name": "Rice Bowl", "price": 1000}]},
						{"id": 12, "attendance_date": "2026-09-05", "attendance_status": "Present", "food_menu": [{"id": 1, "name": "Rice Bowl", "price": 1000}]}
					]}
			]`))
		case "/api/food-menus/":
			w.Write([]byte(`[{"id": 1, "name": "Rice Bowl", "price": 1000}]`))
		case "/api/employee/1/":
			w.Write([]byte(`{"id": 1, "employee_id": "EMP-001", "name": "Alice", "finger_id": "FP-1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestGenerateAttendanceReportPDF(t *testing.T) {
	svc, dir := newTestService(t, backendFixture(t))

	artifact, err := svc.GenerateAttendanceReport(authedContext(t), reportDomain.AttendanceReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
	})
	require.NoError(t, err)

	// Format defaults to pdf and the name is deterministic per window.
	assert.Equal(t, "attendance_report_2026-08-01_2026-08-31.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.Equal(t, "http://localhost:8080/downloads/attendance_report_2026-08-01_2026-08-31.pdf", artifact.URL)

	data, err := os.ReadFile(filepath.Join(dir, artifact.Path))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateAttendanceReportXLSX(t *testing.T) {
	svc, dir := newTestService(t, backendFixture(t))

	artifact, err := svc.GenerateAttendanceReport(authedContext(t), reportDomain.AttendanceReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		Format:    "xlsx",
	})
	require.NoError(t, err)

	assert.Equal(t, "attendance_report_2026-08-01_2026-08-31.xlsx", artifact.Filename)

	data, err := os.ReadFile(filepath.Join(dir, artifact.Path))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateAttendanceReportRejectsReversedWindow(t *testing.T) {
	svc, _ := newTestService(t, backendFixture(t))

	_, err := svc.GenerateAttendanceReport(authedContext(t), reportDomain.AttendanceReportRequest{
		StartDate: "2026-08-31",
		EndDate:   "2026-08-01",
	})
	assert.Error(t, err)
}

func TestGenerateEmployeeQR(t *testing.T) {
	svc, dir := newTestService(t, backendFixture(t))

	artifact, err := svc.GenerateEmployeeQR(authedContext(t), 1)
	require.NoError(t, err)

	assert.Equal(t, "employee_1_qr.png", artifact.Filename)
	assert.Equal(t, "image/png", artifact.ContentType)

	data, err := os.ReadFile(filepath.Join(dir, artifact.Path))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateEmployeeQRUnknownEmployee(t *testing.T) {
	svc, _ := newTestService(t, backendFixture(t))

	_, err := svc.GenerateEmployeeQR(authedContext(t), 42)
	assert.Error(t, err)
}
