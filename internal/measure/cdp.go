// File: internal/measure/cdp.go
package measure

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/xkilldash9x/vantage/internal/geometry"
)

// rectProbe resolves a selector and reports its client rect. A node that is
// missing, detached or has no layout boxes (display:none, unrendered) comes
// back as found=false.
const rectProbe = `
(function(sel) {
	let node;
	try {
		node = document.querySelector(sel);
	} catch (e) {
		return { found: false };
	}
	if (!node || !node.isConnected || node.getClientRects().length === 0) {
		return { found: false };
	}
	const r = node.getBoundingClientRect();
	return { found: true, x: r.x, y: r.y, width: r.width, height: r.height };
})(%s)`

const viewportProbe = `({ width: window.innerWidth, height: window.innerHeight })`

// Evaluator runs a JavaScript expression in the page and decodes the
// by-value result into res.
type Evaluator func(ctx context.Context, expression string, res interface{}) error

// ScrollFunc scrolls the element matched by selector into view.
type ScrollFunc func(ctx context.Context, selector string) error

type probeRect struct {
	Found  bool    `json:"found"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CDPMeasurer measures elements of a live page through the Chrome DevTools
// Protocol. The ctx passed to its methods must be derived from a chromedp
// tab context.
type CDPMeasurer struct {
	evaluate Evaluator
	scroll   ScrollFunc
	limiter  *rate.Limiter
	logger   *zap.Logger
}

var (
	_ Measurer = (*CDPMeasurer)(nil)
	_ Scroller = (*CDPMeasurer)(nil)
)

// CDPOption customises a CDPMeasurer.
type CDPOption func(*CDPMeasurer)

// WithRateLimit throttles DevTools calls to perSecond with the given burst.
// A non-positive perSecond disables throttling.
func WithRateLimit(perSecond float64, burst int) CDPOption {
	return func(m *CDPMeasurer) {
		if perSecond <= 0 {
			m.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithEvaluator replaces the chromedp evaluation used for probes.
func WithEvaluator(e Evaluator) CDPOption {
	return func(m *CDPMeasurer) { m.evaluate = e }
}

// WithScrollFunc replaces the chromedp scroll action.
func WithScrollFunc(s ScrollFunc) CDPOption {
	return func(m *CDPMeasurer) { m.scroll = s }
}

// NewCDPMeasurer creates a measurer backed by chromedp.
func NewCDPMeasurer(logger *zap.Logger, opts ...CDPOption) *CDPMeasurer {
	m := &CDPMeasurer{
		evaluate: chromedpEvaluate,
		scroll:   chromedpScroll,
		logger:   logger.Named("cdp_measurer"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Rect implements Measurer.
func (m *CDPMeasurer) Rect(ctx context.Context, el Element) (RectResult, error) {
	if err := m.wait(ctx); err != nil {
		return Missing(), err
	}

	selector, err := json.Marshal(string(el))
	if err != nil {
		return Missing(), fmt.Errorf("encoding selector %q: %w", el, err)
	}

	var res probeRect
	if err := m.evaluate(ctx, fmt.Sprintf(rectProbe, selector), &res); err != nil {
		return Missing(), fmt.Errorf("measuring %q: %w", el, err)
	}
	if !res.Found {
		m.logger.Debug("Element not measurable.", zap.String("element", string(el)))
		return Missing(), nil
	}
	return Found(geometry.Rect{X: res.X, Y: res.Y, Width: res.Width, Height: res.Height}), nil
}

// Viewport implements Measurer.
func (m *CDPMeasurer) Viewport(ctx context.Context) (ViewportResult, error) {
	if err := m.wait(ctx); err != nil {
		return ViewportMissing(), err
	}

	var size geometry.Size
	if err := m.evaluate(ctx, viewportProbe, &size); err != nil {
		return ViewportMissing(), fmt.Errorf("measuring viewport: %w", err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		m.logger.Debug("Viewport reported non-positive size.", zap.Float64("width", size.Width), zap.Float64("height", size.Height))
		return ViewportMissing(), nil
	}
	return ViewportFound(size), nil
}

// ScrollIntoView implements Scroller.
func (m *CDPMeasurer) ScrollIntoView(ctx context.Context, el Element) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	if err := m.scroll(ctx, string(el)); err != nil {
		return fmt.Errorf("scrolling %q into view: %w", el, err)
	}
	return nil
}

func (m *CDPMeasurer) wait(ctx context.Context) error {
	if m.limiter == nil {
		return nil
	}
	return m.limiter.Wait(ctx)
}

func chromedpEvaluate(ctx context.Context, expression string, res interface{}) error {
	return chromedp.Run(ctx, chromedp.Evaluate(expression, res, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithReturnByValue(true).WithAwaitPromise(true).WithSilent(true)
	}))
}

func chromedpScroll(ctx context.Context, selector string) error {
	return chromedp.Run(ctx, chromedp.ScrollIntoView(selector, chromedp.ByQuery))
}
