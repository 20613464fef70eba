package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"ecommerce-dashboard/utils"
)

// Snapshotter captures a rendered dashboard page with a headless browser.
type Snapshotter struct {
	chromeBin string
	timeout   time.Duration
	logger    *utils.Logger
	retry     *utils.RetryConfig
}

// Snapshot is one captured page.
type Snapshot struct {
	PNG []byte
	PDF []byte
}

// NewSnapshotter creates a Snapshotter. An empty chromeBin is resolved from
// PATH and the usual install locations.
func NewSnapshotter(chromeBin string, maxRetries int, logger *utils.Logger) *Snapshotter {
	return &Snapshotter{
		chromeBin: FindChromeBinary(chromeBin),
		timeout:   60 * time.Second,
		logger:    logger,
		retry: &utils.RetryConfig{
			MaxAttempts: maxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// Capture loads url and returns a full-page PNG and a printed PDF.
func (s *Snapshotter) Capture(ctx context.Context, url string) (*Snapshot, error) {
	s.logger.Info("[snapshot] Using browser binary: %s", s.chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.WindowSize(1280, 900),
	)
	if s.chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(s.chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	snap := &Snapshot{}
	err := s.retry.Do(ctx, "snapshot", func(context.Context) error {
		tabCtx, cancelTab := chromedp.NewContext(browserCtx)
		defer cancelTab()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, s.timeout)
		defer cancelTimeout()

		return chromedp.Run(tabCtx,
			chromedp.Navigate(url),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.FullScreenshot(&snap.PNG, 90),
			chromedp.ActionFunc(func(ctx context.Context) error {
				buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
				if err != nil {
					return err
				}
				snap.PDF = buf
				return nil
			}),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: %s: %w", url, err)
	}

	s.logger.Info("[snapshot] Captured %s (%d bytes PNG, %d bytes PDF)", url, len(snap.PNG), len(snap.PDF))
	return snap, nil
}

// SaveSnapshot writes both captures into dir and returns their paths.
func SaveSnapshot(dir string, snap *Snapshot) (pngPath, pdfPath string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("snapshot: create output dir: %w", err)
	}
	pngPath = filepath.Join(dir, FileName("snapshot", "png"))
	pdfPath = filepath.Join(dir, FileName("snapshot", "pdf"))
	if err := os.WriteFile(pngPath, snap.PNG, 0644); err != nil {
		return "", "", fmt.Errorf("snapshot: write png: %w", err)
	}
	if err := os.WriteFile(pdfPath, snap.PDF, 0644); err != nil {
		return "", "", fmt.Errorf("snapshot: write pdf: %w", err)
	}
	return pngPath, pdfPath, nil
}

// FindChromeBinary returns configured when set, otherwise the first Chrome
// or Chromium found on PATH or in a well-known location. It returns "" when
// nothing is found and chromedp falls back to its own lookup.
func FindChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
