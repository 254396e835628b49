package employee

import (
	"strings"

	"github.com/mealroll/console-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FingerID   string `json:"finger_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Gender     string `json:"gender"`
	Position   string `json:"position"`
	Salary     string `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.FingerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "finger_id",
			Message: "finger_id is required",
		})
	}

	if r.Gender != "" && !validator.IsInSlice(r.Gender, []string{"M", "F", "O"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of: M, F, O",
		})
	}

	if r.Salary != "" && !validator.IsValidPrice(r.Salary) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         int     `json:"-"`
	EmployeeID *string `json:"employee_id,omitempty"`
	FingerID   *string `json:"finger_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Position   *string `json:"position,omitempty"`
	Salary     *string `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"M", "F", "O"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of: M, F, O",
		})
	}

	if r.Salary != nil && !validator.IsValidPrice(*r.Salary) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListEmployeesFilter drives the in-memory list pipeline. Every filter left
// at its zero value is inactive; active filters compose with AND.
type ListEmployeesFilter struct {
	// Search & Filter
	Search    string `json:"search"`     // case-insensitive, matches name / employee_id / phone
	Gender    string `json:"gender"`     // M, F, O; empty matches everything
	Position  string `json:"position"`   // exact match; empty matches everything
	StartDate string `json:"start_date"` // YYYY-MM-DD; employee has any attendance on/after
	EndDate   string `json:"end_date"`   // YYYY-MM-DD; employee has any attendance on/before

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // salary, name
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *ListEmployeesFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Gender != "" && !validator.IsInSlice(f.Gender, []string{"M", "F", "O"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of: M, F, O",
		})
	}

	if f.StartDate != "" {
		if _, valid := validator.IsValidDate(f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if _, valid := validator.IsValidDate(f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"salary", "name"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: salary, name",
		})
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesResponse struct {
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
	Employees  []Employee `json:"employees"`
}
