package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/mealroll/console-backend-go/internal/domain/employee"
	insightsDomain "github.com/mealroll/console-backend-go/internal/domain/insights"
	"github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/shopspring/decimal"
)

// The aggregation engine. Pure functions of their inputs with no I/O and
// no wall-clock reads. Missing optional fields are never errors; an absent
// history or food_menu list is an empty one.

// DailySummaryOf counts, per employee, the one record (if any) dated today
// with status Present and a recorded meal, grouped by menu name.
func DailySummaryOf(employees []employee.Employee, today string) insightsDomain.DailySummary {
	type group struct {
		count int
		price menu.Amount
	}
	groups := make(map[string]*group)
	total := 0

	for _, emp := range employees {
		for _, rec := range emp.AttendanceHistory {
			if rec.AttendanceDate != today || !rec.ConsumedMeal() {
				continue
			}
			m, _ := rec.Menu()
			g, ok := groups[m.Name]
			if !ok {
				g = &group{price: m.Price}
				groups[m.Name] = g
			}
			g.count++
			total++
			// One qualifying record per employee.
			break
		}
	}

	out := make([]insightsDomain.MenuGroup, 0, len(groups))
	for name, g := range groups {
		out = append(out, insightsDomain.MenuGroup{
			MenuName: name,
			Count:    g.count,
			Price:    g.price,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MenuName < out[j].MenuName })

	return insightsDomain.DailySummary{
		Date:   today,
		Count:  total,
		Groups: out,
	}
}

// MonthlySeriesOf buckets Present records by date and emits exactly one
// point per calendar day of the month, ascending, zero-filled.
func MonthlySeriesOf(employees []employee.Employee, year, month int) insightsDomain.MonthlySeries {
	counts := make(map[string]int)
	for _, emp := range employees {
		for _, rec := range emp.AttendanceHistory {
			if rec.AttendanceStatus != employee.StatusPresent {
				continue
			}
			d, err := time.Parse("2006-01-02", rec.AttendanceDate)
			if err != nil {
				continue
			}
			if d.Year() == year && int(d.Month()) == month {
				counts[rec.AttendanceDate]++
			}
		}
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	points := make([]insightsDomain.MonthlyPoint, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		points = append(points, insightsDomain.MonthlyPoint{
			Date:  date,
			Count: counts[date],
		})
	}

	return insightsDomain.MonthlySeries{
		Month:  fmt.Sprintf("%04d-%02d", year, month),
		Points: points,
	}
}

// MenuDistributionOf counts distinct employees per menu name. Repeat visits
// by the same employee to the same menu count once.
func MenuDistributionOf(employees []employee.Employee) []insightsDomain.MenuShare {
	attendees := make(map[string]map[int]struct{})

	for _, emp := range employees {
		for _, rec := range emp.AttendanceHistory {
			if !rec.ConsumedMeal() {
				continue
			}
			m, _ := rec.Menu()
			if attendees[m.Name] == nil {
				attendees[m.Name] = make(map[int]struct{})
			}
			attendees[m.Name][emp.ID] = struct{}{}
		}
	}

	out := make([]insightsDomain.MenuShare, 0, len(attendees))
	for name, set := range attendees {
		out = append(out, insightsDomain.MenuShare{
			MenuName:  name,
			Employees: len(set),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MenuName < out[j].MenuName })
	return out
}

// RecentFeedOf flattens consumption records into a feed sorted by date
// descending. Ties keep their flattening order (stable sort).
func RecentFeedOf(employees []employee.Employee, limit int) []insightsDomain.FeedItem {
	var feed []insightsDomain.FeedItem
	for _, emp := range employees {
		for _, rec := range emp.AttendanceHistory {
			if !rec.ConsumedMeal() {
				continue
			}
			m, _ := rec.Menu()
			feed = append(feed, insightsDomain.FeedItem{
				EmployeeName: emp.Name,
				Date:         rec.AttendanceDate,
				MenuName:     m.Name,
				Price:        m.Price,
			})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Date > feed[j].Date })

	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	if feed == nil {
		feed = []insightsDomain.FeedItem{}
	}
	return feed
}

// ConsumptionLedgerOf totals meals per menu inside the inclusive
// [start, end] window. Every known menu gets a row, zero-filled when
// nothing matched; menus sharing a name merge into one row (grouping is by
// name, documented behavior). Dates compare lexicographically, which is
// date order for YYYY-MM-DD strings.
func ConsumptionLedgerOf(employees []employee.Employee, menus []menu.FoodMenu, start, end string) insightsDomain.ConsumptionLedger {
	counts := make(map[string]int)
	for _, emp := range employees {
		for _, rec := range emp.AttendanceHistory {
			if !rec.ConsumedMeal() {
				continue
			}
			if rec.AttendanceDate < start || rec.AttendanceDate > end {
				continue
			}
			m, _ := rec.Menu()
			counts[m.Name]++
		}
	}

	rows := make([]insightsDomain.LedgerRow, 0, len(menus))
	seen := make(map[string]struct{}, len(menus))
	grand := decimal.Zero

	for _, m := range menus {
		if _, dup := seen[m.Name]; dup {
			continue
		}
		seen[m.Name] = struct{}{}

		count := counts[m.Name]
		// Each row total is one product rounded once; the grand total sums
		// the row values so the rendered column always adds up.
		total := m.Price.Mul(decimal.NewFromInt(int64(count))).Round(2)
		grand = grand.Add(total)

		rows = append(rows, insightsDomain.LedgerRow{
			MenuName:    m.Name,
			Count:       count,
			UnitPrice:   m.Price.StringFixed(2),
			TotalAmount: total.StringFixed(2),
		})
	}

	return insightsDomain.ConsumptionLedger{
		StartDate:  start,
		EndDate:    end,
		Rows:       rows,
		GrandTotal: grand.StringFixed(2),
	}
}
