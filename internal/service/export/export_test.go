package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealroll/console-backend-go/internal/domain/attendance"
	"github.com/mealroll/console-backend-go/internal/domain/insights"
	"github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/mealroll/console-backend-go/internal/domain/report"
)

func sampleReport() report.AttendanceReport {
	return report.AttendanceReport{
		Title:       "Attendance & Meal Report",
		StartDate:   "2026-08-01",
		EndDate:     "2026-08-31",
		GeneratedAt: "2026-08-28T10:00:00Z",
		Rows: []attendance.Row{
			{EmployeeID: "EMP-001", EmployeeName: "Alice", Date: "2026-08-10", Status: "Present", MenuName: "Rice Bowl", Price: menu.AmountFromString("1000"), Time: "08:01"},
			{EmployeeID: "EMP-002", EmployeeName: "Bob", Date: "2026-08-11", Status: "Absent"},
		},
		Ledger: insights.ConsumptionLedger{
			StartDate: "2026-08-01",
			EndDate:   "2026-08-31",
			Rows: []insights.LedgerRow{
				{MenuName: "Rice Bowl", Count: 1, UnitPrice: "1000.00", TotalAmount: "1000.00"},
			},
			GrandTotal: "1000.00",
		},
	}
}

func TestAttendancePDF(t *testing.T) {
	data, err := AttendancePDF(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestAttendancePDFManyRowsPaginates(t *testing.T) {
	rep := sampleReport()
	for i := 0; i < 200; i++ {
		rep.Rows = append(rep.Rows, attendance.Row{
			EmployeeID: "EMP-003", EmployeeName: "Carol", Date: "2026-08-12",
			Status: "Present", MenuName: "Soup", Price: menu.AmountFromString("750.50"),
		})
	}

	data, err := AttendancePDF(rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestAttendancePDFEmptyWindow(t *testing.T) {
	rep := sampleReport()
	rep.Rows = nil

	data, err := AttendancePDF(rep)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestAttendanceXLSX(t *testing.T) {
	data, err := AttendanceXLSX(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// XLSX is a zip container.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestFingerQR(t *testing.T) {
	data, err := FingerQR("FP-12345")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestFingerQREmptyID(t *testing.T) {
	_, err := FingerQR("")
	assert.Error(t, err)
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 128})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeSnapshot(t *testing.T) {
	data, w, h, err := NormalizeSnapshot(bytes.NewReader(testPNG(t, 100, 60)))
	require.NoError(t, err)
	assert.Equal(t, 100, w)
	assert.Equal(t, 60, h)
	assert.True(t, bytes.HasPrefix(data, []byte("\xff\xd8")))
}

func TestNormalizeSnapshotDownscalesWideImages(t *testing.T) {
	_, w, h, err := NormalizeSnapshot(bytes.NewReader(testPNG(t, 2400, 1200)))
	require.NoError(t, err)
	assert.Equal(t, maxSnapshotWidth, w)
	assert.Equal(t, 600, h)
}

func TestNormalizeSnapshotRejectsGarbage(t *testing.T) {
	_, _, _, err := NormalizeSnapshot(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestSnapshotPDF(t *testing.T) {
	jpegData, w, h, err := NormalizeSnapshot(bytes.NewReader(testPNG(t, 100, 60)))
	require.NoError(t, err)

	data, err := SnapshotPDF("Attendance History: Alice (EMP-001)", jpegData, w, h)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
