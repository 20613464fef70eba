package web

import (
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/samber/lo"

	"ecommerce-dashboard/charts"
	"ecommerce-dashboard/models"
	"ecommerce-dashboard/services"
)

var templateFuncs = template.FuncMap{
	"date":  func(t time.Time) string { return t.Format(dateLayout) },
	"money": func(f float64) string { return fmt.Sprintf("%.2f", f) },
}

type stateShare struct {
	State   string
	Orders  int
	Percent float64
}

type pageData struct {
	View   *models.DashboardView
	Query  string
	Shares []stateShare

	HasTrend    bool
	HasRegions  bool
	HasRFM      bool
	HasSegments bool

	AvgRecency   float64
	AvgFrequency float64
	AvgMonetary  float64
}

func newPageData(v *models.DashboardView) pageData {
	q := url.Values{}
	if !v.Range.Start.IsZero() {
		q.Set("start", v.Range.Start.Format(dateLayout))
		q.Set("end", v.Range.End.Format(dateLayout))
	}
	if v.SelectedCustomer != "" {
		q.Set("customer", v.SelectedCustomer)
	}

	shares := services.Share(v.Regions)
	d := pageData{
		View:  v,
		Query: q.Encode(),
		Shares: lo.Map(v.Regions, func(r models.RegionRow, i int) stateShare {
			return stateShare{State: r.State, Orders: r.TotalOrders, Percent: shares[i]}
		}),
		HasTrend:    len(v.OrdersTrend) > 0 || len(v.RevenueTrend) > 0,
		HasRegions:  len(v.Regions) > 0,
		HasRFM:      len(v.RFM) > 0,
		HasSegments: len(v.Segments) > 0,
	}

	if n := float64(len(v.RFM)); n > 0 {
		d.AvgRecency = lo.SumBy(v.RFM, func(r models.RFMRow) float64 { return float64(r.Recency) }) / n
		d.AvgFrequency = lo.SumBy(v.RFM, func(r models.RFMRow) float64 { return float64(r.Frequency) }) / n
		d.AvgMonetary = lo.SumBy(v.RFM, func(r models.RFMRow) float64 { return r.Monetary }) / n
	}
	return d
}

// Chart returns the URL of a chart image for the current filters.
func (d pageData) Chart(name string) string {
	if !charts.Known(name) {
		return ""
	}
	if d.Query == "" {
		return "/charts/" + name + ".png"
	}
	return "/charts/" + name + ".png?" + d.Query
}

// Export returns the URL of an export for the current filters.
func (d pageData) Export(file string) string {
	if d.Query == "" {
		return "/export/" + file
	}
	return "/export/" + file + "?" + d.Query
}
