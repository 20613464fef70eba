package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"

	"ecommerce-dashboard/config"
	"ecommerce-dashboard/export"
	"ecommerce-dashboard/services"
	"ecommerce-dashboard/storage"
	"ecommerce-dashboard/utils"
	"ecommerce-dashboard/web"
)

const dateLayout = "2006-01-02"

func main() {
	mode := flag.String("mode", "serve", "serve | report | snapshot")
	start := flag.String("start", "", "first day of the range (YYYY-MM-DD), defaults to the data start")
	end := flag.String("end", "", "last day of the range (YYYY-MM-DD), defaults to the data end")
	customer := flag.String("customer", "", "customer_unique_id to select")
	flag.Parse()

	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(cfg.LogDebug)

	logger.Info("=== E-Commerce Dashboard starting (%s) ===", *mode)
	logger.Info("Config — source: %s | top states: %d | top customers: %d | tier: %s",
		cfg.DataSource, cfg.TopStates, cfg.TopCustomers, cfg.SegmentTier)

	filters, err := parseFilters(*start, *end, *customer)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := openSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open %s source: %v", cfg.DataSource, err)
		os.Exit(1)
	}
	defer source.Close()

	var bar *progressbar.ProgressBar
	if *mode == "report" {
		bar = progressbar.Default(7, "report")
		if p, ok := source.(storage.ProgressReporter); ok {
			p.OnProgress(func(string) { _ = bar.Add(1) })
		}
	}

	cache := storage.NewCache(source)
	if _, err := cache.Get(ctx); err != nil {
		logger.Error("Failed to load dataset: %v", err)
		os.Exit(1)
	}

	dashboard := services.NewDashboardService(logger, services.Options{
		TopStates:    cfg.TopStates,
		TopCustomers: cfg.TopCustomers,
		SegmentTier:  cfg.SegmentTier,
	})

	switch *mode {
	case "serve":
		err = serve(ctx, cfg, cache, dashboard, logger)
	case "report":
		err = report(ctx, cfg, cache, dashboard, filters, bar, logger)
	case "snapshot":
		err = snapshot(ctx, cfg, cache, dashboard, filters, logger)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		logger.Error("%s failed: %v", *mode, err)
		os.Exit(1)
	}
}

func parseFilters(start, end, customer string) (services.Filters, error) {
	f := services.Filters{CustomerID: customer}
	var err error
	if start != "" {
		if f.Start, err = time.Parse(dateLayout, start); err != nil {
			return f, fmt.Errorf("invalid -start %q: %w", start, err)
		}
	}
	if end != "" {
		if f.End, err = time.Parse(dateLayout, end); err != nil {
			return f, fmt.Errorf("invalid -end %q: %w", end, err)
		}
	}
	return f, nil
}

func openSource(ctx context.Context, cfg *config.Config, logger *utils.Logger) (storage.Source, error) {
	retry := &utils.RetryConfig{MaxAttempts: cfg.MaxRetries, BaseDelay: 2 * time.Second, Logger: logger}

	switch cfg.DataSource {
	case "csv":
		return storage.NewCSVSource(cfg.DataDir, logger)
	case "postgres":
		return storage.NewSQLSource(ctx, "postgres", cfg.DSN(), retry, logger)
	case "mysql":
		return storage.NewSQLSource(ctx, "mysql", cfg.MySQLDSN, retry, logger)
	case "sqlite":
		return storage.NewSQLSource(ctx, "sqlite", cfg.SQLitePath, retry, logger)
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q (want csv, postgres, mysql or sqlite)", cfg.DataSource)
	}
}

func serve(ctx context.Context, cfg *config.Config, cache *storage.Cache, dashboard *services.DashboardService, logger *utils.Logger) error {
	srv, err := web.NewServer(cache, dashboard, logger)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("Dashboard listening on http://%s", displayAddr(cfg.ListenAddr))
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func report(ctx context.Context, cfg *config.Config, cache *storage.Cache, dashboard *services.DashboardService,
	filters services.Filters, bar *progressbar.ProgressBar, logger *utils.Logger) error {
	ds, err := cache.Get(ctx)
	if err != nil {
		return err
	}
	view, err := dashboard.Build(ds, filters)
	if err != nil {
		return err
	}

	files, err := export.WriteAll(cfg.ExportDir, view, func(string) { _ = bar.Add(1) })
	if err != nil {
		return err
	}
	_ = bar.Finish()

	dashboard.Print(os.Stdout, view)
	fmt.Printf("  Done. RFM → %s | Workbook → %s | Report → %s\n\n", files.CSV, files.XLSX, files.PDF)
	return nil
}

func snapshot(ctx context.Context, cfg *config.Config, cache *storage.Cache, dashboard *services.DashboardService,
	filters services.Filters, logger *utils.Logger) error {
	srv, err := web.NewServer(cache, dashboard, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	httpSrv := &http.Server{Handler: srv.Routes(), ReadHeaderTimeout: 10 * time.Second}
	go func() { _ = httpSrv.Serve(ln) }()
	defer httpSrv.Close()

	q := url.Values{}
	if !filters.Start.IsZero() {
		q.Set("start", filters.Start.Format(dateLayout))
	}
	if !filters.End.IsZero() {
		q.Set("end", filters.End.Format(dateLayout))
	}
	if filters.CustomerID != "" {
		q.Set("customer", filters.CustomerID)
	}
	target := fmt.Sprintf("http://%s/?%s", ln.Addr(), q.Encode())

	snap, err := export.NewSnapshotter(cfg.ChromeBin, cfg.MaxRetries, logger).Capture(ctx, target)
	if err != nil {
		return err
	}
	pngPath, pdfPath, err := export.SaveSnapshot(cfg.ExportDir, snap)
	if err != nil {
		return err
	}
	logger.Info("Snapshot saved → %s | %s", pngPath, pdfPath)
	return nil
}

func displayAddr(addr string) string {
	if host, port, err := net.SplitHostPort(addr); err == nil && host == "" {
		return "localhost:" + port
	}
	return addr
}
