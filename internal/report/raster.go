package report

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// rasterTimeout bounds a single SVG screenshot.
const rasterTimeout = 30 * time.Second

// Rasterizer converts SVG assets to PNG through a headless browser. A nil
// Rasterizer disables rasterization; the workbook writer then leaves image
// cells blank.
type Rasterizer struct {
	logger *zap.Logger
}

// NewRasterizer returns a Rasterizer logging through the given logger.
func NewRasterizer(logger *zap.Logger) *Rasterizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rasterizer{logger: logger}
}

// Render rasterizes svg to a width x height PNG. Requires Chrome/Chromium
// on the system; one retry is attempted before giving up.
func (r *Rasterizer) Render(ctx context.Context, svg string, width, height int) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		png, err := r.screenshot(ctx, svg, width, height)
		if err == nil {
			return png, nil
		}
		lastErr = err
		if attempt == 0 {
			r.logger.Warn("svg rasterization failed, retrying", zap.Error(err))
		}
	}
	return nil, fmt.Errorf("svg rasterization failed: %w", lastErr)
}

func (r *Rasterizer) screenshot(ctx context.Context, svg string, width, height int) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, rasterTimeout)
	defer cancel()

	url := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(url),
		chromedp.WaitReady("svg"),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return nil, err
	}
	return png, nil
}
