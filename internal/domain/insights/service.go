package insights

import "context"

type InsightsService interface {
	// GetDashboard returns every widget computed from one snapshot
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
	// GetDailySummary returns today's meal counts; date defaults to today
	GetDailySummary(ctx context.Context, date string) (DailySummary, error)
	// GetMonthlySeries returns the zero-filled per-day series for a month
	GetMonthlySeries(ctx context.Context, month string) (MonthlySeries, error)
	// GetMenuDistribution returns unique attendee counts per menu
	GetMenuDistribution(ctx context.Context) ([]MenuShare, error)
	// GetRecentFeed returns the newest consumption entries
	GetRecentFeed(ctx context.Context, limit int) ([]FeedItem, error)
	// GetConsumptionLedger returns per-menu totals for an inclusive window
	GetConsumptionLedger(ctx context.Context, req LedgerRequest) (ConsumptionLedger, error)
}
