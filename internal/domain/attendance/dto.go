package attendance

import (
	"strings"

	"github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/mealroll/console-backend-go/internal/pkg/validator"
)

// Row is one flattened attendance entry for the listing view: the upstream
// serves employees with embedded histories, the console shows records.
type Row struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Date         string      `json:"date"` // YYYY-MM-DD
	Status       string      `json:"status"`
	MenuName     string      `json:"menu_name,omitempty"`
	Price        menu.Amount `json:"price"`
	Time         string      `json:"time,omitempty"`
}

type RecordAttendanceRequest struct {
	FingerID string `json:"finger_id"`
	FoodMenu int    `json:"food_menu"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FingerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "finger_id",
			Message: "finger_id is required",
		})
	}

	if r.FoodMenu <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "food_menu",
			Message: "food_menu is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceFilter struct {
	// Search & Filter
	Search    string `json:"search"`     // case-insensitive, matches employee name / employee_id
	Status    string `json:"status"`     // Present, Absent; empty matches everything
	MenuName  string `json:"menu_name"`  // exact match; empty matches everything
	StartDate string `json:"start_date"` // YYYY-MM-DD inclusive
	EndDate   string `json:"end_date"`   // YYYY-MM-DD inclusive

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortOrder string `json:"sort_order"` // asc, desc by date; default desc (newest first)
}

func (f *ListAttendanceFilter) Validate() error {
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

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{"Present", "Absent"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent",
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

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount int   `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	Records    []Row `json:"records"`
}
