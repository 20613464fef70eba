package services

import (
	"errors"
	"time"

	"github.com/samber/lo"

	"ecommerce-dashboard/models"
)

// ErrInvertedRange is returned when a range starts after it ends.
var ErrInvertedRange = errors.New("start date is after end date")

// FilterDataset returns a new Dataset holding only the rows whose date
// falls inside r (whole days, both ends inclusive). ds is not modified.
func FilterDataset(ds *models.Dataset, r models.DateRange) (*models.Dataset, error) {
	if models.Day(r.Start).After(models.Day(r.End)) {
		return nil, ErrInvertedRange
	}

	return &models.Dataset{
		MonthlyOrders: lo.Filter(ds.MonthlyOrders, func(m models.MonthlyOrders, _ int) bool {
			return r.Contains(m.Month)
		}),
		MonthlyRevenue: lo.Filter(ds.MonthlyRevenue, func(m models.MonthlyRevenue, _ int) bool {
			return r.Contains(m.Month)
		}),
		Payments: lo.Filter(ds.Payments, func(p models.OrderPayment, _ int) bool {
			return r.Contains(p.DeliveredAt)
		}),
		Geo: lo.Filter(ds.Geo, func(g models.GeoOrder, _ int) bool {
			return r.Contains(g.DeliveredAt)
		}),
	}, nil
}

// Bounds returns the first and last month of the monthly order trend. The
// date picker is limited to this window. ok is false for an empty trend.
func Bounds(ds *models.Dataset) (first, last time.Time, ok bool) {
	if len(ds.MonthlyOrders) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, last = ds.MonthlyOrders[0].Month, ds.MonthlyOrders[0].Month
	for _, m := range ds.MonthlyOrders[1:] {
		if m.Month.Before(first) {
			first = m.Month
		}
		if m.Month.After(last) {
			last = m.Month
		}
	}
	return first, last, true
}

// Clamp fills zero ends of r with the bounds and pulls both ends inside them.
func Clamp(r models.DateRange, first, last time.Time) models.DateRange {
	if r.Start.IsZero() {
		r.Start = first
	}
	if r.End.IsZero() {
		r.End = last
	}
	r.Start = clampDay(r.Start, first, last)
	r.End = clampDay(r.End, first, last)
	return r
}

func clampDay(t, first, last time.Time) time.Time {
	t = models.Day(t)
	if t.Before(first) {
		return first
	}
	if t.After(last) {
		return last
	}
	return t
}
