package insights

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealroll/console-backend-go/internal/domain/employee"
	"github.com/mealroll/console-backend-go/internal/domain/menu"
)

func amount(s string) menu.Amount {
	d, _ := decimal.NewFromString(s)
	return menu.NewAmount(d)
}

func testMenu(id int, name, price string) menu.FoodMenu {
	return menu.FoodMenu{ID: id, Name: name, Price: amount(price)}
}

func record(date string, status employee.AttendanceStatus, menus ...menu.FoodMenu) employee.AttendanceRecord {
	return employee.AttendanceRecord{
		AttendanceDate:   date,
		AttendanceStatus: status,
		FoodMenu:         menus,
	}
}

func TestDailySummaryOf(t *testing.T) {
	rice := testMenu(1, "Rice Bowl", "1000")
	soup := testMenu(2, "Soup", "750.50")

	employees := []employee.Employee{
		{ID: 1, Name: "Alice", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-28", employee.StatusPresent, rice),
		}},
		{ID: 2, Name: "Bob", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-28", employee.StatusPresent, rice),
		}},
		{ID: 3, Name: "Carol", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-28", employee.StatusPresent, soup),
		}},
		// Absent today, must not count.
		{ID: 4, Name: "Dave", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-28", employee.StatusAbsent, rice),
		}},
		// Present on another day only.
		{ID: 5, Name: "Eve", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-27", employee.StatusPresent, rice),
		}},
		// Present today without a recorded meal: excluded, not an error.
		{ID: 6, Name: "Frank", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-28", employee.StatusPresent),
		}},
	}

	summary := DailySummaryOf(employees, "2026-08-28")

	assert.Equal(t, "2026-08-28", summary.Date)
	assert.Equal(t, 3, summary.Count)
	require.Len(t, summary.Groups, 2)

	// Groups are sorted by menu name.
	assert.Equal(t, "Rice Bowl", summary.Groups[0].MenuName)
	assert.Equal(t, 2, summary.Groups[0].Count)
	assert.Equal(t, "1000.00", summary.Groups[0].Price.StringFixed(2))
	assert.Equal(t, "Soup", summary.Groups[1].MenuName)
	assert.Equal(t, 1, summary.Groups[1].Count)
}

func TestDailySummaryOfCountsEmployeeOnce(t *testing.T) {
	rice := testMenu(1, "Rice Bowl", "1000")

	// Two qualifying records for the same employee on the same day.
	employees := []employee.Employee{
		{ID: 1, Name: "Alice", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-28", employee.StatusPresent, rice),
			record("2026-08-28", employee.StatusPresent, rice),
		}},
	}

	summary := DailySummaryOf(employees, "2026-08-28")
	assert.Equal(t, 1, summary.Count)
}

func TestDailySummaryOfEmpty(t *testing.T) {
	summary := DailySummaryOf(nil, "2026-08-28")
	assert.Equal(t, 0, summary.Count)
	assert.Empty(t, summary.Groups)
}

func TestMonthlySeriesOfZeroFills(t *testing.T) {
	rice := testMenu(1, "Rice Bowl", "1000")

	employees := []employee.Employee{
		{ID: 1, AttendanceHistory: []employee.AttendanceRecord{
			record("2023-02-01", employee.StatusPresent, rice),
			record("2023-02-28", employee.StatusPresent, rice),
			// Wrong month, ignored.
			record("2023-03-01", employee.StatusPresent, rice),
			// Absent, ignored.
			record("2023-02-14", employee.StatusAbsent, rice),
		}},
		{ID: 2, AttendanceHistory: []employee.AttendanceRecord{
			record("2023-02-28", employee.StatusPresent, rice),
		}},
	}

	series := MonthlySeriesOf(employees, 2023, 2)

	assert.Equal(t, "2023-02", series.Month)
	// February 2023 is not a leap month.
	require.Len(t, series.Points, 28)
	assert.Equal(t, "2023-02-01", series.Points[0].Date)
	assert.Equal(t, 1, series.Points[0].Count)
	assert.Equal(t, "2023-02-14", series.Points[13].Date)
	assert.Equal(t, 0, series.Points[13].Count)
	assert.Equal(t, "2023-02-28", series.Points[27].Date)
	assert.Equal(t, 2, series.Points[27].Count)
}

func TestMonthlySeriesOfLeapYear(t *testing.T) {
	series := MonthlySeriesOf(nil, 2024, 2)
	assert.Len(t, series.Points, 29)
	for _, p := range series.Points {
		assert.Equal(t, 0, p.Count)
	}
}

func TestMenuDistributionOfUniqueEmployees(t *testing.T) {
	rice := testMenu(1, "Rice Bowl", "1000")
	soup := testMenu(2, "Soup", "750")

	employees := []employee.Employee{
		// Same employee, same menu, three days: counts once.
		{ID: 1, AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-01", employee.StatusPresent, rice),
			record("2026-08-02", employee.StatusPresent, rice),
			record("2026-08-03", employee.StatusPresent, rice),
		}},
		{ID: 2, AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-01", employee.StatusPresent, rice),
			record("2026-08-02", employee.StatusPresent, soup),
		}},
	}

	shares := MenuDistributionOf(employees)

	require.Len(t, shares, 2)
	assert.Equal(t, "Rice Bowl", shares[0].MenuName)
	assert.Equal(t, 2, shares[0].Employees)
	assert.Equal(t, "Soup", shares[1].MenuName)
	assert.Equal(t, 1, shares[1].Employees)
}

func TestRecentFeedOf(t *testing.T) {
	rice := testMenu(1, "Rice Bowl", "1000")

	employees := []employee.Employee{
		{ID: 1, Name: "Alice", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-20", employee.StatusPresent, rice),
			record("2026-08-25", employee.StatusPresent, rice),
		}},
		{ID: 2, Name: "Bob", AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-27", employee.StatusPresent, rice),
			record("2026-08-21", employee.StatusPresent, rice),
			record("2026-08-23", employee.StatusPresent, rice),
			record("2026-08-22", employee.StatusPresent, rice),
		}},
	}

	feed := RecentFeedOf(employees, 5)

	require.Len(t, feed, 5)
	assert.Equal(t, "2026-08-27", feed[0].Date)
	assert.Equal(t, "Bob", feed[0].EmployeeName)
	assert.Equal(t, "2026-08-25", feed[1].Date)
	assert.Equal(t, "2026-08-23", feed[2].Date)
	assert.Equal(t, "2026-08-22", feed[3].Date)
	assert.Equal(t, "2026-08-21", feed[4].Date)
}

func TestRecentFeedOfEmptyIsNotNil(t *testing.T) {
	feed := RecentFeedOf(nil, 5)
	require.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestConsumptionLedgerOf(t *testing.T) {
	menuA := testMenu(1, "Menu A", "500")
	menuB := testMenu(2, "Menu B", "700")

	employees := []employee.Employee{
		{ID: 1, AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-10", employee.StatusPresent, menuA),
			record("2026-08-11", employee.StatusPresent, menuA),
			record("2026-08-12", employee.StatusPresent, menuB),
			// Outside the window.
			record("2026-07-30", employee.StatusPresent, menuA),
			record("2026-09-01", employee.StatusPresent, menuB),
			// Absent inside the window.
			record("2026-08-10", employee.StatusAbsent, menuB),
		}},
	}

	ledger := ConsumptionLedgerOf(employees, []menu.FoodMenu{menuA, menuB}, "2026-08-01", "2026-08-31")

	require.Len(t, ledger.Rows, 2)
	assert.Equal(t, "Menu A", ledger.Rows[0].MenuName)
	assert.Equal(t, 2, ledger.Rows[0].Count)
	assert.Equal(t, "500.00", ledger.Rows[0].UnitPrice)
	assert.Equal(t, "1000.00", ledger.Rows[0].TotalAmount)
	assert.Equal(t, "Menu B", ledger.Rows[1].MenuName)
	assert.Equal(t, 1, ledger.Rows[1].Count)
	assert.Equal(t, "700.00", ledger.Rows[1].TotalAmount)
	assert.Equal(t, "1700.00", ledger.GrandTotal)
}

func TestConsumptionLedgerOfZeroMatches(t *testing.T) {
	menuA := testMenu(1, "Menu A", "500")
	menuB := testMenu(2, "Menu B", "700")

	// Every known menu still gets a row when nothing matched the window.
	ledger := ConsumptionLedgerOf(nil, []menu.FoodMenu{menuA, menuB}, "2026-08-01", "2026-08-31")

	require.Len(t, ledger.Rows, 2)
	for _, row := range ledger.Rows {
		assert.Equal(t, 0, row.Count)
		assert.Equal(t, "0.00", row.TotalAmount)
	}
	assert.Equal(t, "0.00", ledger.GrandTotal)
}

func TestConsumptionLedgerOfGrandTotalMatchesRows(t *testing.T) {
	menus := []menu.FoodMenu{
		testMenu(1, "A", "333.333"),
		testMenu(2, "B", "0.005"),
		testMenu(3, "C", "99.99"),
	}
	var employees []employee.Employee
	for i := 0; i < 7; i++ {
		employees = append(employees, employee.Employee{
			ID: i + 1,
			AttendanceHistory: []employee.AttendanceRecord{
				record("2026-08-05", employee.StatusPresent, menus[i%3]),
			},
		})
	}

	ledger := ConsumptionLedgerOf(employees, menus, "2026-08-01", "2026-08-31")

	// The rendered row totals always add up to the rendered grand total.
	sum := decimal.Zero
	for _, row := range ledger.Rows {
		d, err := decimal.NewFromString(row.TotalAmount)
		require.NoError(t, err)
		sum = sum.Add(d)
	}
	assert.Equal(t, ledger.GrandTotal, sum.StringFixed(2))
}

func TestConsumptionLedgerOfMergesDuplicateNames(t *testing.T) {
	first := testMenu(1, "Menu A", "500")
	dup := testMenu(9, "Menu A", "999")

	employees := []employee.Employee{
		{ID: 1, AttendanceHistory: []employee.AttendanceRecord{
			record("2026-08-10", employee.StatusPresent, first),
			record("2026-08-11", employee.StatusPresent, dup),
		}},
	}

	ledger := ConsumptionLedgerOf(employees, []menu.FoodMenu{first, dup}, "2026-08-01", "2026-08-31")

	// One row per name; the first listing's price wins.
	require.Len(t, ledger.Rows, 1)
	assert.Equal(t, 2, ledger.Rows[0].Count)
	assert.Equal(t, "500.00", ledger.Rows[0].UnitPrice)
	assert.Equal(t, "1000.00", ledger.Rows[0].TotalAmount)
}
