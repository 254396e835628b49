package employee

import (
	"context"
	"strings"

	employeeDomain "github.com/mealroll/console-backend-go/internal/domain/employee"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
	"github.com/mealroll/console-backend-go/internal/pkg/listing"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

type EmployeeServiceImpl struct {
	backend *upstream.Client
}

func NewEmployeeService(backend *upstream.Client) employeeDomain.EmployeeService {
	return &EmployeeServiceImpl{backend: backend}
}

// ListEmployees fetches the full roster and refines it locally: the backend
// has no list parameters, so search, filters, sorting and pagination all run
// over the snapshot.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employeeDomain.ListEmployeesFilter) (*employeeDomain.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.backend.ListEmployees(ctx, token)
	if err != nil {
		return nil, err
	}

	filtered := listing.Filter(employees,
		listing.Search(filter.Search, func(e employeeDomain.Employee) []string {
			return []string{e.Name, e.EmployeeID, e.Phone}
		}),
		listing.Equals(filter.Gender, func(e employeeDomain.Employee) string {
			return string(e.Gender)
		}),
		listing.Equals(filter.Position, func(e employeeDomain.Employee) string {
			return e.Position
		}),
		listing.DateRange(filter.StartDate, filter.EndDate, func(e employeeDomain.Employee) []string {
			dates := make([]string, 0, len(e.AttendanceHistory))
			for _, rec := range e.AttendanceHistory {
				dates = append(dates, rec.AttendanceDate)
			}
			return dates
		}),
	)

	listing.SortStable(filtered, employeeLess(filter.SortBy, filter.SortOrder))

	page := listing.Paginate(filtered, filter.Page, filter.Limit)

	return &employeeDomain.ListEmployeesResponse{
		TotalCount: page.Total,
		Page:       page.Page,
		Limit:      page.PageSize,
		TotalPages: page.TotalPages,
		Employees:  page.Items,
	}, nil
}

// employeeLess builds the comparator for the requested sort key, or nil when
// no sort is requested so the backend order survives.
func employeeLess(sortBy, sortOrder string) func(a, b employeeDomain.Employee) bool {
	desc := strings.EqualFold(sortOrder, "desc")

	switch sortBy {
	case "salary":
		return func(a, b employeeDomain.Employee) bool {
			if desc {
				return a.Salary.GreaterThan(b.Salary.Decimal)
			}
			return a.Salary.LessThan(b.Salary.Decimal)
		}
	case "name":
		return func(a, b employeeDomain.Employee) bool {
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if desc {
				return an > bn
			}
			return an < bn
		}
	default:
		return nil
	}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int) (employeeDomain.Employee, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return employeeDomain.Employee{}, err
	}

	emp, err := s.backend.GetEmployee(ctx, token, id)
	if err != nil {
		if upstream.IsNotFound(err) {
			return employeeDomain.Employee{}, employeeDomain.ErrEmployeeNotFound
		}
		return employeeDomain.Employee{}, err
	}
	return emp, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employeeDomain.CreateEmployeeRequest) (employeeDomain.Employee, error) {
	if err := req.Validate(); err != nil {
		return employeeDomain.Employee{}, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return employeeDomain.Employee{}, err
	}

	return s.backend.CreateEmployee(ctx, token, req)
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employeeDomain.UpdateEmployeeRequest) (employeeDomain.Employee, error) {
	if err := req.Validate(); err != nil {
		return employeeDomain.Employee{}, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return employeeDomain.Employee{}, err
	}

	updated, err := s.backend.UpdateEmployee(ctx, token, req)
	if err != nil {
		if upstream.IsNotFound(err) {
			return employeeDomain.Employee{}, employeeDomain.ErrEmployeeNotFound
		}
		return employeeDomain.Employee{}, err
	}
	return updated, nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int) error {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return err
	}

	if err := s.backend.DeleteEmployee(ctx, token, id); err != nil {
		if upstream.IsNotFound(err) {
			return employeeDomain.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}
