// File: internal/browser/page.go
package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/internal/config"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// Page is a single loaded tab in a dedicated browser process.
type Page struct {
	URL string

	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	cfg         config.BrowserConfig
	logger      *zap.Logger
}

// Open launches a browser, emulates the configured viewport and loads url.
// The returned page must be closed to release the browser process.
func Open(ctx context.Context, cfg config.BrowserConfig, logger *zap.Logger, url string) (*Page, error) {
	if url == "" {
		return nil, errors.New("browser: url is required")
	}
	logger = logger.Named("browser")

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, AllocatorOptions(cfg)...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Sugar().Debugf),
		chromedp.WithErrorf(logger.Sugar().Debugf),
	)
	p := &Page{
		URL:         url,
		ctx:         tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
		cfg:         cfg,
		logger:      logger.With(zap.String("url", url)),
	}

	// The first Run starts the browser. It must not carry the navigation
	// timeout or the whole browser would stop when it fires.
	if err := chromedp.Run(tabCtx); err != nil {
		p.Close()
		return nil, fmt.Errorf("browser: failed to start: %w", err)
	}
	if err := p.load(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Page) load(ctx context.Context) error {
	navCtx, cancel := p.ctx, context.CancelFunc(func() {})
	if p.cfg.NavigationTimeout > 0 {
		navCtx, cancel = context.WithTimeout(p.ctx, p.cfg.NavigationTimeout)
	}
	defer cancel()

	actions := []chromedp.Action{}
	if w, h := p.cfg.Viewport.Width, p.cfg.Viewport.Height; w > 0 && h > 0 {
		actions = append(actions, chromedp.EmulateViewport(int64(w), int64(h)))
	}
	actions = append(actions, chromedp.Navigate(p.URL))

	p.logger.Debug("Navigating.", zap.Duration("timeout", p.cfg.NavigationTimeout))
	if err := chromedp.Run(navCtx, actions...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("browser: failed to load %s: %w", p.URL, err)
	}

	// Give late layout (web fonts, lazy images) a moment to settle.
	if p.cfg.PostLoadWait > 0 {
		if err := chromedp.Run(p.ctx, chromedp.Sleep(p.cfg.PostLoadWait)); err != nil {
			return fmt.Errorf("browser: interrupted while settling: %w", err)
		}
	}
	p.logger.Info("Page loaded.")
	return nil
}

// Context returns the tab context. Measurements through a CDPMeasurer must
// use it, or a context derived from it.
func (p *Page) Context() context.Context {
	return p.ctx
}

// Measurer returns a CDP measurer for this page, throttled per the browser config.
func (p *Page) Measurer(opts ...measure.CDPOption) *measure.CDPMeasurer {
	opts = append([]measure.CDPOption{measure.WithRateLimit(p.cfg.MeasureRateLimit, p.cfg.MeasureBurst)}, opts...)
	return measure.NewCDPMeasurer(p.logger, opts...)
}

// Close closes the tab and shuts the browser down.
func (p *Page) Close() {
	p.cancelTab()
	p.cancelAlloc()
}
