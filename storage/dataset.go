package storage

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/utils"
)

// ProgressFunc is called once per extract after it has been parsed
// successfully. Calls never overlap.
type ProgressFunc func(extract string)

// loadDataset reads and parses the four extracts concurrently. The first
// failure cancels the remaining reads.
func loadDataset(ctx context.Context, r tableReader, logger *utils.Logger, progress ProgressFunc) (*models.Dataset, error) {
	parser := NewParser(logger)
	ds := &models.Dataset{}

	var mu sync.Mutex
	report := func(extract string) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		progress(extract)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := r.readTable(ctx, MonthlyOrdersExtract)
		if err != nil {
			return err
		}
		if ds.MonthlyOrders, err = parser.MonthlyOrders(t); err != nil {
			return err
		}
		report(MonthlyOrdersExtract)
		return nil
	})
	g.Go(func() error {
		t, err := r.readTable(ctx, MonthlyRevenueExtract)
		if err != nil {
			return err
		}
		if ds.MonthlyRevenue, err = parser.MonthlyRevenue(t); err != nil {
			return err
		}
		report(MonthlyRevenueExtract)
		return nil
	})
	g.Go(func() error {
		t, err := r.readTable(ctx, PaymentsExtract)
		if err != nil {
			return err
		}
		if ds.Payments, err = parser.Payments(t); err != nil {
			return err
		}
		report(PaymentsExtract)
		return nil
	})
	g.Go(func() error {
		t, err := r.readTable(ctx, GeoExtract)
		if err != nil {
			return err
		}
		if ds.Geo, err = parser.GeoOrders(t); err != nil {
			return err
		}
		report(GeoExtract)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	logger.Info("[loader] Loaded %d months, %d payment rows, %d geolocation rows",
		len(ds.MonthlyOrders), len(ds.Payments), len(ds.Geo))
	return ds, nil
}
