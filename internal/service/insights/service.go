package insights

import (
	"context"
	"time"

	"github.com/mealroll/console-backend-go/internal/domain/employee"
	insightsDomain "github.com/mealroll/console-backend-go/internal/domain/insights"
	"github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
	"github.com/mealroll/console-backend-go/internal/upstream"
	"golang.org/x/sync/errgroup"
)

const defaultFeedLimit = 5

type InsightsServiceImpl struct {
	backend *upstream.Client
	now     func() time.Time
}

func NewInsightsService(backend *upstream.Client) insightsDomain.InsightsService {
	return &InsightsServiceImpl{
		backend: backend,
		now:     time.Now,
	}
}

// GetDashboard fetches the attendance snapshot and the menu list
// concurrently, then computes every widget from that one snapshot with one
// shared reference date.
func (s *InsightsServiceImpl) GetDashboard(ctx context.Context) (*insightsDomain.DashboardResponse, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, err
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
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")
	year, month := now.Year(), int(now.Month())
	monthStart, monthEnd := monthBounds(year, month)

	return &insightsDomain.DashboardResponse{
		DailySummary:  DailySummaryOf(employees, today),
		MonthlySeries: MonthlySeriesOf(employees, year, month),
		Distribution:  MenuDistributionOf(employees),
		RecentFeed:    RecentFeedOf(employees, defaultFeedLimit),
		MonthLedger:   ConsumptionLedgerOf(employees, menus, monthStart, monthEnd),
	}, nil
}

// GetDailySummary handles GET /insights/daily-summary; date defaults to today.
func (s *InsightsServiceImpl) GetDailySummary(ctx context.Context, date string) (insightsDomain.DailySummary, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return insightsDomain.DailySummary{}, err
	}

	employees, err := s.backend.ListAttendance(ctx, token)
	if err != nil {
		return insightsDomain.DailySummary{}, err
	}

	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		date = s.now().Format("2006-01-02")
	}

	return DailySummaryOf(employees, date), nil
}

func (s *InsightsServiceImpl) GetMonthlySeries(ctx context.Context, month string) (insightsDomain.MonthlySeries, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return insightsDomain.MonthlySeries{}, err
	}

	employees, err := s.backend.ListAttendance(ctx, token)
	if err != nil {
		return insightsDomain.MonthlySeries{}, err
	}

	year, m := insightsDomain.ParseMonth(month, s.now())
	return MonthlySeriesOf(employees, year, m), nil
}

func (s *InsightsServiceImpl) GetMenuDistribution(ctx context.Context) ([]insightsDomain.MenuShare, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.backend.ListAttendance(ctx, token)
	if err != nil {
		return nil, err
	}

	return MenuDistributionOf(employees), nil
}

func (s *InsightsServiceImpl) GetRecentFeed(ctx context.Context, limit int) ([]insightsDomain.FeedItem, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.backend.ListAttendance(ctx, token)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return RecentFeedOf(employees, limit), nil
}

// GetConsumptionLedger fetches both collections concurrently; the caller
// guarantees start <= end via LedgerRequest.Validate.
func (s *InsightsServiceImpl) GetConsumptionLedger(ctx context.Context, req insightsDomain.LedgerRequest) (insightsDomain.ConsumptionLedger, error) {
	if err := req.Validate(); err != nil {
		return insightsDomain.ConsumptionLedger{}, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return insightsDomain.ConsumptionLedger{}, err
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
		return insightsDomain.ConsumptionLedger{}, err
	}

	return ConsumptionLedgerOf(employees, menus, req.StartDate, req.EndDate), nil
}

func monthBounds(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}
