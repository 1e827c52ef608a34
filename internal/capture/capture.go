// Package capture renders a page in a headless browser and saves a
// screenshot. This is an external collaborator of the core pipeline: it
// consumes the web surface's output and contains no analysis logic.
package capture

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	apperrors "graybook/internal/errors"
)

// Options configures a page capture.
type Options struct {
	URL      string
	OutPath  string
	Timeout  time.Duration
	Headless bool
	// Quality of the full-page screenshot, 0-100.
	Quality int
}

// DefaultOptions returns capture options suitable for the report page.
func DefaultOptions(url, outPath string) Options {
	return Options{
		URL:      url,
		OutPath:  outPath,
		Timeout:  30 * time.Second,
		Headless: true,
		Quality:  90,
	}
}

// CapturePage navigates to the page and writes a full-page screenshot.
// Unlike the core pipeline this does real I/O against a browser, so the
// whole run is bounded by the configured timeout.
func CapturePage(ctx context.Context, logger *slog.Logger, opts Options) error {
	if logger == nil {
		logger = slog.Default()
	}

	allocOpts := chromedp.DefaultExecAllocatorOptions[:]
	allocOpts = append(allocOpts, chromedp.Flag("headless", opts.Headless))

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, opts.Timeout)
	defer cancelRun()

	logger.InfoContext(ctx, "capturing page",
		slog.String("url", opts.URL),
		slog.String("out", opts.OutPath))

	var buf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate(opts.URL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&buf, opts.Quality),
	)
	if err != nil {
		return apperrors.NewCaptureError("failed to capture page", err).WithContext("url", opts.URL)
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutPath), 0755); err != nil {
		return apperrors.NewStorageError("failed to create screenshot directory", err)
	}
	if err := os.WriteFile(opts.OutPath, buf, 0644); err != nil {
		return apperrors.NewStorageError("failed to write screenshot", err)
	}

	logger.InfoContext(ctx, "screenshot written",
		slog.String("out", opts.OutPath),
		slog.Int("bytes", len(buf)))
	return nil
}
