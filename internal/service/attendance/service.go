package attendance

import (
	"context"
	"errors"
	"strings"

	attendanceDomain "github.com/mealroll/console-backend-go/internal/domain/attendance"
	"github.com/mealroll/console-backend-go/internal/domain/employee"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
	"github.com/mealroll/console-backend-go/internal/pkg/listing"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

type AttendanceServiceImpl struct {
	backend *upstream.Client
}

func NewAttendanceService(backend *upstream.Client) attendanceDomain.AttendanceService {
	return &AttendanceServiceImpl{backend: backend}
}

// FlattenRows expands the per-employee snapshot into one row per attendance
// record, the shape the listing view and the report exporter both consume.
func FlattenRows(employees []employee.Employee) []attendanceDomain.Row {
	rows := make([]attendanceDomain.Row, 0, len(employees))
	for _, emp := range employees {
		for _, rec := range emp.AttendanceHistory {
			row := attendanceDomain.Row{
				EmployeeID:   emp.EmployeeID,
				EmployeeName: emp.Name,
				Date:         rec.AttendanceDate,
				Status:       string(rec.AttendanceStatus),
				Time:         rec.Time,
			}
			if m, ok := rec.Menu(); ok {
				row.MenuName = m.Name
				row.Price = m.Price
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendanceDomain.ListAttendanceFilter) (*attendanceDomain.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.backend.ListAttendance(ctx, token)
	if err != nil {
		return nil, err
	}

	rows := FlattenRows(employees)

	filtered := listing.Filter(rows,
		listing.Search(filter.Search, func(r attendanceDomain.Row) []string {
			return []string{r.EmployeeName, r.EmployeeID}
		}),
		listing.Equals(filter.Status, func(r attendanceDomain.Row) string {
			return r.Status
		}),
		listing.Equals(filter.MenuName, func(r attendanceDomain.Row) string {
			return r.MenuName
		}),
		listing.DateRange(filter.StartDate, filter.EndDate, func(r attendanceDomain.Row) []string {
			return []string{r.Date}
		}),
	)

	asc := strings.EqualFold(filter.SortOrder, "asc")
	listing.SortStable(filtered, func(a, b attendanceDomain.Row) bool {
		if asc {
			return a.Date < b.Date
		}
		return a.Date > b.Date
	})

	page := listing.Paginate(filtered, filter.Page, filter.Limit)

	return &attendanceDomain.ListAttendanceResponse{
		TotalCount: page.Total,
		Page:       page.Page,
		Limit:      page.PageSize,
		TotalPages: page.TotalPages,
		Records:    page.Items,
	}, nil
}

func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendanceDomain.RecordAttendanceRequest) (*attendanceDomain.RecordAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, err
	}

	record, detail, err := s.backend.RecordAttendance(ctx, token, req)
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, attendanceDomain.ErrFingerNotRecognized
		}
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && strings.Contains(strings.ToLower(apiErr.Message), "already") {
			return nil, attendanceDomain.ErrAlreadyRecorded
		}
		return nil, err
	}

	return &attendanceDomain.RecordAttendanceResponse{
		Detail: detail,
		Record: record,
	}, nil
}
