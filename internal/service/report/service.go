package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	attendanceDomain "github.com/mealroll/console-backend-go/internal/domain/attendance"
	"github.com/mealroll/console-backend-go/internal/domain/employee"
	"github.com/mealroll/console-backend-go/internal/domain/menu"
	reportDomain "github.com/mealroll/console-backend-go/internal/domain/report"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
	"github.com/mealroll/console-backend-go/internal/pkg/listing"
	"github.com/mealroll/console-backend-go/internal/pkg/storage"
	attendanceService "github.com/mealroll/console-backend-go/internal/service/attendance"
	"github.com/mealroll/console-backend-go/internal/service/export"
	insightsService "github.com/mealroll/console-backend-go/internal/service/insights"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

const reportTitle = "Attendance & Meal Report"

type ReportServiceImpl struct {
	backend *upstream.Client
	storage storage.FileStorage
	now     func() time.Time
}

func NewReportService(backend *upstream.Client, fileStorage storage.FileStorage) reportDomain.ReportService {
	return &ReportServiceImpl{
		backend: backend,
		storage: fileStorage,
		now:     time.Now,
	}
}

// GenerateAttendanceReport builds the windowed row set plus the consumption
// summary from one snapshot, renders it in the requested format and stores
// the artifact under a deterministic name so a repeated request overwrites
// the previous file instead of piling up copies.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req reportDomain.AttendanceReportRequest) (reportDomain.Artifact, error) {
	if err := req.Validate(); err != nil {
		return reportDomain.Artifact{}, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return reportDomain.Artifact{}, err
	}

	var (
		employees []employee.Employee
		menus     []menu.FoodMenu
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.backend.ListAttendance(gCtx, token)
		return err
	})

	g.Go(func() error {
		var err error
		menus, err = s.backend.ListMenus(gCtx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		return reportDomain.Artifact{}, err
	}

	rows := attendanceService.FlattenRows(employees)
	rows = listing.Filter(rows,
		listing.DateRange(req.StartDate, req.EndDate, func(r attendanceDomain.Row) []string {
			return []string{r.Date}
		}),
	)
	listing.SortStable(rows, func(a, b attendanceDomain.Row) bool {
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.EmployeeID < b.EmployeeID
	})

	rep := reportDomain.AttendanceReport{
		Title:       reportTitle,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: reportDomain.Timestamp(s.now()),
		Rows:        rows,
		Ledger:      insightsService.ConsumptionLedgerOf(employees, menus, req.StartDate, req.EndDate),
	}

	var (
		data        []byte
		contentType string
	)
	switch req.Format {
	case "pdf":
		data, err = export.AttendancePDF(rep)
		contentType = "application/pdf"
	case "xlsx":
		data, err = export.AttendanceXLSX(rep)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return reportDomain.Artifact{}, reportDomain.ErrUnknownFormat
	}
	if err != nil {
		return reportDomain.Artifact{}, fmt.Errorf("%w: %v", reportDomain.ErrExportFailed, err)
	}

	filename := fmt.Sprintf("attendance_report_%s_%s.%s", req.StartDate, req.EndDate, req.Format)
	return s.store(ctx, filename, data, contentType)
}

// GenerateEmployeeSnapshot flattens and embeds a captured history view as a
// one-page document for the given employee.
func (s *ReportServiceImpl) GenerateEmployeeSnapshot(ctx context.Context, employeeID int, image io.Reader) (reportDomain.Artifact, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return reportDomain.Artifact{}, err
	}

	emp, err := s.backend.GetEmployee(ctx, token, employeeID)
	if err != nil {
		if upstream.IsNotFound(err) {
			return reportDomain.Artifact{}, employee.ErrEmployeeNotFound
		}
		return reportDomain.Artifact{}, err
	}

	jpegData, w, h, err := export.NormalizeSnapshot(image)
	if err != nil {
		return reportDomain.Artifact{}, fmt.Errorf("%w: %v", reportDomain.ErrInvalidImage, err)
	}

	title := fmt.Sprintf("Attendance History: %s (%s)", emp.Name, emp.EmployeeID)
	data, err := export.SnapshotPDF(title, jpegData, w, h)
	if err != nil {
		return reportDomain.Artifact{}, fmt.Errorf("%w: %v", reportDomain.ErrExportFailed, err)
	}

	filename := fmt.Sprintf("employee_%d_history.pdf", employeeID)
	return s.store(ctx, filename, data, "application/pdf")
}

// GenerateEmployeeQR renders the employee's finger-id QR card.
func (s *ReportServiceImpl) GenerateEmployeeQR(ctx context.Context, employeeID int) (reportDomain.Artifact, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return reportDomain.Artifact{}, err
	}

	emp, err := s.backend.GetEmployee(ctx, token, employeeID)
	if err != nil {
		if upstream.IsNotFound(err) {
			return reportDomain.Artifact{}, employee.ErrEmployeeNotFound
		}
		return reportDomain.Artifact{}, err
	}

	png, err := export.FingerQR(emp.FingerID)
	if err != nil {
		return reportDomain.Artifact{}, fmt.Errorf("%w: %v", reportDomain.ErrExportFailed, err)
	}

	filename := fmt.Sprintf("employee_%d_qr.png", employeeID)
	return s.store(ctx, filename, png, "image/png")
}

func (s *ReportServiceImpl) store(ctx context.Context, filename string, data []byte, contentType string) (reportDomain.Artifact, error) {
	path, err := s.storage.Upload(ctx, bytes.NewReader(data), filename, contentType)
	if err != nil {
		return reportDomain.Artifact{}, fmt.Errorf("failed to store artifact: %w", err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return reportDomain.Artifact{}, err
	}

	return reportDomain.Artifact{
		Serial:      uuid.New().String(),
		Filename:    filename,
		Path:        path,
		URL:         url,
		ContentType: contentType,
	}, nil
}
