package insights

import (
	"time"

	"github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/mealroll/console-backend-go/internal/pkg/validator"
)

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint.
// All widgets are computed from a single snapshot with one shared reference
// date, so a request cannot straddle a day boundary internally.
type DashboardResponse struct {
	DailySummary  DailySummary      `json:"daily_summary"`
	MonthlySeries MonthlySeries     `json:"monthly_series"`
	Distribution  []MenuShare       `json:"menu_distribution"`
	RecentFeed    []FeedItem        `json:"recent_feed"`
	MonthLedger   ConsumptionLedger `json:"month_ledger"`
}

// ========== DAILY SUMMARY ==========

// DailySummary counts today's meal consumers, grouped by menu name.
type DailySummary struct {
	Date   string      `json:"date"` // YYYY-MM-DD
	Count  int         `json:"count"`
	Groups []MenuGroup `json:"groups"`
}

type MenuGroup struct {
	MenuName string      `json:"menu_name"`
	Count    int         `json:"count"`
	Price    menu.Amount `json:"price"` // unit price of the menu
}

// ========== MONTHLY SERIES ==========

// MonthlySeries has one point per calendar day of the month, zero-filled,
// regardless of data sparsity.
type MonthlySeries struct {
	Month  string         `json:"month"` // YYYY-MM
	Points []MonthlyPoint `json:"points"`
}

type MonthlyPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// ========== MENU DISTRIBUTION ==========

// MenuShare maps a menu name to the number of distinct employees who ever
// consumed it. An employee attending the same menu on several days counts once.
type MenuShare struct {
	MenuName  string `json:"menu_name"`
	Employees int    `json:"employees"`
}

// ========== RECENT FEED ==========

type FeedItem struct {
	EmployeeName string      `json:"employee_name"`
	Date         string      `json:"date"`
	MenuName     string      `json:"menu_name"`
	Price        menu.Amount `json:"price"`
}

// ========== CONSUMPTION LEDGER ==========

// ConsumptionLedger enumerates every known menu, including menus with zero
// matches in the window.
type ConsumptionLedger struct {
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Rows       []LedgerRow `json:"rows"`
	GrandTotal string      `json:"grand_total"` // 2 decimal places
}

type LedgerRow struct {
	MenuName    string `json:"menu_name"`
	Count       int    `json:"count"`
	UnitPrice   string `json:"unit_price"`   // 2 decimal places
	TotalAmount string `json:"total_amount"` // count * unit_price, 2 decimal places
}

type LedgerRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *LedgerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}

	if r.EndDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if r.StartDate != "" && r.EndDate != "" {
		start, startOK := validator.IsValidDate(r.StartDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}

		end, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}

		if startOK && endOK && start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// parseMonth lives with the DTOs so handlers and services agree on the
// "current month" default for YYYY-MM inputs.
func ParseMonth(month string, now time.Time) (int, int) {
	if month == "" {
		return now.Year(), int(now.Month())
	}

	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return now.Year(), int(now.Month())
	}
	return parsed.Year(), int(parsed.Month())
}
