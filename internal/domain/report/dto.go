package report

import (
	"time"

	"github.com/mealroll/console-backend-go/internal/domain/attendance"
	"github.com/mealroll/console-backend-go/internal/domain/insights"
	"github.com/mealroll/console-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Format    string `json:"format"` // pdf (default), xlsx
}

func (r *AttendanceReportRequest) Validate() error {
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

	if r.Format == "" {
		r.Format = "pdf"
	}
	if !validator.IsInSlice(r.Format, []string{"pdf", "xlsx"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: pdf, xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceReport is the finalized, already-filtered row set plus the
// summary block the exporter lays out.
type AttendanceReport struct {
	Title       string                     `json:"title"`
	StartDate   string                     `json:"start_date"`
	EndDate     string                     `json:"end_date"`
	GeneratedAt string                     `json:"generated_at"`
	Rows        []attendance.Row           `json:"rows"`
	Ledger      insights.ConsumptionLedger `json:"ledger"`
}

// Artifact describes a produced download. Serial identifies one generation
// run; filenames are deterministic and overwritten on regeneration.
type Artifact struct {
	Serial      string `json:"serial"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
