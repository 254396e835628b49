package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/mealroll/console-backend-go/internal/domain/report"
)

// Column layout for the attendance table, in mm. The widths fill the
// usable width of an A4 portrait page with default margins.
var attendanceColumns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 24, "L"},
	{"Employee ID", 26, "L"},
	{"Name", 44, "L"},
	{"Status", 18, "L"},
	{"Menu", 38, "L"},
	{"Price", 23, "R"},
	{"Time", 17, "L"},
}

const tableRowHeight = 7

// AttendancePDF renders the report as a PDF document: a title block, the
// row table with the header repeated after every page break, and the
// consumption summary with its grand total.
func AttendancePDF(rep report.AttendanceReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(rep.Title, false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, rep.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s", rep.StartDate, rep.EndDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", rep.GeneratedAt), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	drawTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rep.Rows {
		if rowNeedsNewPage(pdf) {
			pdf.AddPage()
			drawTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}
		cells := []string{
			row.Date,
			row.EmployeeID,
			row.EmployeeName,
			row.Status,
			row.MenuName,
			row.Price.StringFixed(2),
			row.Time,
		}
		for i, col := range attendanceColumns {
			pdf.CellFormat(col.width, tableRowHeight, cells[i], "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rep.Rows) == 0 {
		pdf.CellFormat(190, tableRowHeight, "No records in the selected period", "1", 1, "C", false, 0, "")
	}

	writeLedgerSection(pdf, rep)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range attendanceColumns {
		pdf.CellFormat(col.width, tableRowHeight, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func rowNeedsNewPage(pdf *fpdf.Fpdf) bool {
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	return pdf.GetY()+tableRowHeight > pageHeight-bottom
}

func writeLedgerSection(pdf *fpdf.Fpdf, rep report.AttendanceReport) {
	// The summary block stays on one page when it fits, so estimate its
	// height before starting it.
	needed := float64((len(rep.Ledger.Rows) + 4) * tableRowHeight)
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+needed > pageHeight-bottom {
		pdf.AddPage()
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Consumption Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, tableRowHeight, "Menu", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, tableRowHeight, "Count", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, tableRowHeight, "Unit Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, tableRowHeight, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rep.Ledger.Rows {
		pdf.CellFormat(70, tableRowHeight, row.MenuName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, tableRowHeight, fmt.Sprintf("%d", row.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, tableRowHeight, row.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, tableRowHeight, row.TotalAmount, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(145, tableRowHeight, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, tableRowHeight, rep.Ledger.GrandTotal, "1", 1, "R", false, 0, "")
}

// SnapshotPDF embeds a normalized capture as a single page, scaled to fit
// inside the margins while keeping its aspect ratio.
func SnapshotPDF(title string, jpegData []byte, imgWidth, imgHeight int) ([]byte, error) {
	if imgWidth <= 0 || imgHeight <= 0 {
		return nil, fmt.Errorf("invalid snapshot dimensions %dx%d", imgWidth, imgHeight)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("snapshot", opts, bytes.NewReader(jpegData))

	pageWidth, pageHeight := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	maxW := pageWidth - left - right
	maxH := pageHeight - pdf.GetY() - bottom

	w := maxW
	h := w * float64(imgHeight) / float64(imgWidth)
	if h > maxH {
		h = maxH
		w = h * float64(imgWidth) / float64(imgHeight)
	}

	pdf.ImageOptions("snapshot", left, pdf.GetY(), w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render snapshot pdf: %w", err)
	}
	return buf.Bytes(), nil
}
