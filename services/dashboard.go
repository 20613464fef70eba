package services

import (
	"time"

	"github.com/samber/lo"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/utils"
)

// Filters are the user inputs of one dashboard render. Zero dates mean
// "use the data bounds".
type Filters struct {
	Start      time.Time
	End        time.Time
	CustomerID string
}

// Options tune the aggregations.
type Options struct {
	TopStates    int
	TopCustomers int
	SegmentTier  string
}

// DashboardService turns a dataset snapshot plus filters into a view model.
// It holds no per-request state; Build is safe for concurrent use.
type DashboardService struct {
	logger *utils.Logger
	opts   Options
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(logger *utils.Logger, opts Options) *DashboardService {
	if opts.TopStates <= 0 {
		opts.TopStates = 5
	}
	if opts.TopCustomers <= 0 {
		opts.TopCustomers = 5
	}
	if opts.SegmentTier == "" {
		opts.SegmentTier = DefaultTier
	}
	return &DashboardService{logger: logger, opts: opts}
}

// Build runs filter → aggregate for one interaction. The only error is an
// inverted date range.
func (s *DashboardService) Build(ds *models.Dataset, f Filters) (*models.DashboardView, error) {
	if !f.Start.IsZero() && !f.End.IsZero() && models.Day(f.Start).After(models.Day(f.End)) {
		return nil, ErrInvertedRange
	}

	view := &models.DashboardView{}
	r := models.DateRange{Start: f.Start, End: f.End}
	if first, last, ok := Bounds(ds); ok {
		view.MinDate, view.MaxDate = first, last
		r = Clamp(r, first, last)
	}
	view.Range = r

	filtered, err := FilterDataset(ds, r)
	if err != nil {
		return nil, err
	}

	view.OrdersTrend = lo.Map(filtered.MonthlyOrders, func(m models.MonthlyOrders, _ int) models.TrendPoint {
		return models.TrendPoint{Month: m.Month, Value: float64(m.TotalOrders)}
	})
	view.RevenueTrend = lo.Map(filtered.MonthlyRevenue, func(m models.MonthlyRevenue, _ int) models.TrendPoint {
		return models.TrendPoint{Month: m.Month, Value: m.TotalRevenue}
	})

	view.Regions = CollapseTopN(RegionalRollup(filtered.Geo), s.opts.TopStates)
	view.RFM = ComputeRFM(filtered.Payments)
	view.Ranking = RankRFM(view.RFM, s.opts.TopCustomers)
	view.Segments = Segment(filtered.Payments, s.opts.SegmentTier, 5)

	view.Totals = models.Totals{
		TrendOrders:     lo.SumBy(filtered.MonthlyOrders, func(m models.MonthlyOrders) int { return m.TotalOrders }),
		TrendRevenue:    lo.SumBy(filtered.MonthlyRevenue, func(m models.MonthlyRevenue) float64 { return m.TotalRevenue }),
		PaymentRows:     len(filtered.Payments),
		UniqueCustomers: len(view.RFM),
	}

	view.CustomerOptions = lo.Map(view.RFM, func(r models.RFMRow, _ int) string { return r.CustomerUniqueID })
	view.SelectedCustomer = s.selectCustomer(view.CustomerOptions, f.CustomerID)
	if loc, ok := LocateCustomer(filtered.Geo, view.SelectedCustomer); ok {
		view.Location = loc
	}

	s.logger.Debug("[dashboard] %s → %s: %d payment rows, %d customers, %d segments",
		r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"),
		len(filtered.Payments), len(view.RFM), len(view.Segments))
	return view, nil
}

// selectCustomer keeps the requested customer when it is still offered and
// otherwise falls back to the first option, like a select box would.
func (s *DashboardService) selectCustomer(options []string, requested string) string {
	if requested != "" && lo.Contains(options, requested) {
		return requested
	}
	if requested != "" {
		s.logger.Debug("[dashboard] customer %s not in window, using first option", requested)
	}
	if len(options) == 0 {
		return ""
	}
	return options[0]
}
