package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mealroll/console-backend-go/internal/domain/report"
)

// AttendanceXLSX renders the report as a workbook: one sheet for the row
// table, one for the consumption summary. Both sheets get a frozen,
// filterable header row.
func AttendanceXLSX(rep report.AttendanceReport) ([]byte, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	writeHeaders := func(sheet string, headers []string) {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	sheetRecords := "Attendance"
	f.SetSheetName("Sheet1", sheetRecords)
	writeHeaders(sheetRecords, []string{
		"Date",
		"Employee ID",
		"Name",
		"Status",
		"Menu",
		"Price",
		"Time",
	})

	for idx, row := range rep.Rows {
		values := []interface{}{
			row.Date,
			row.EmployeeID,
			row.EmployeeName,
			row.Status,
			row.MenuName,
			row.Price.StringFixed(2),
			row.Time,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, idx+2)
			f.SetCellValue(sheetRecords, cell, v)
		}
	}

	sheetSummary := "Summary"
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	writeHeaders(sheetSummary, []string{
		"Menu",
		"Count",
		"Unit Price",
		"Total",
	})

	rowNum := 2
	for _, row := range rep.Ledger.Rows {
		values := []interface{}{
			row.MenuName,
			row.Count,
			row.UnitPrice,
			row.TotalAmount,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			f.SetCellValue(sheetSummary, cell, v)
		}
		rowNum++
	}
	f.SetCellValue(sheetSummary, fmt.Sprintf("C%d", rowNum+1), "GRAND TOTAL")
	f.SetCellValue(sheetSummary, fmt.Sprintf("D%d", rowNum+1), rep.Ledger.GrandTotal)

	f.AutoFilter(sheetRecords, "A1:G1", []excelize.AutoFilterOptions{})
	f.SetPanes(sheetRecords, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})
	f.SetPanes(sheetSummary, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render report workbook: %w", err)
	}
	return buf.Bytes(), nil
}
