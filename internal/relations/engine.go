// File: internal/relations/engine.go
package relations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/config"
	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

const (
	// DefaultScrollTimeout bounds the optional scroll-into-view side effect.
	DefaultScrollTimeout = 2 * time.Second
	// DefaultMaxConcurrency caps in-flight measurements per query.
	DefaultMaxConcurrency = 16
)

// Engine evaluates geometric relationships between measured elements.
// It holds no per-query state; every call re-measures.
type Engine struct {
	measurer measure.Measurer
	cfg      config.EngineConfig
	logger   *zap.Logger
}

// NewEngine creates an engine over measurer. Zero-valued config fields fall
// back to the package defaults.
func NewEngine(measurer measure.Measurer, cfg config.EngineConfig, logger *zap.Logger) *Engine {
	if cfg.ScrollTimeout <= 0 {
		cfg.ScrollTimeout = DefaultScrollTimeout
	}
	if cfg.MaxConcurrency < 1 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	return &Engine{
		measurer: measurer,
		cfg:      cfg,
		logger:   logger.Named("relations"),
	}
}

// DefaultAlignOptions returns alignment options using the engine's configured tolerance.
func (e *Engine) DefaultAlignOptions(axis schemas.Axis, mode schemas.AlignMode) AlignOptions {
	return AlignOptions{Axis: axis, Mode: mode, Tolerance: e.cfg.AlignTolerance}
}

// query returns a logger scoped to a single operation invocation.
func (e *Engine) query(op string, fields ...zap.Field) *zap.Logger {
	return e.logger.With(append([]zap.Field{zap.String("query_id", uuid.NewString()), zap.String("op", op)}, fields...)...)
}

// measureRect asks the measurer for one rectangle. Probe failures become
// absences; only cancellation of ctx is returned as an error.
func (e *Engine) measureRect(ctx context.Context, log *zap.Logger, el measure.Element) (measure.RectResult, error) {
	res, err := e.measurer.Rect(ctx, el)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return measure.Missing(), ctxErr
		}
		log.Debug("Rectangle probe failed; treating element as absent.", zap.String("element", string(el)), zap.Error(err))
		return measure.Missing(), nil
	}
	if !res.Present() {
		log.Debug("Element not measurable.", zap.String("element", string(el)))
	}
	return res, nil
}

// measureViewport mirrors measureRect for the viewport.
func (e *Engine) measureViewport(ctx context.Context, log *zap.Logger) (measure.ViewportResult, error) {
	res, err := e.measurer.Viewport(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return measure.ViewportMissing(), ctxErr
		}
		log.Debug("Viewport probe failed; treating viewport as absent.", zap.Error(err))
		return measure.ViewportMissing(), nil
	}
	return res, nil
}

// measureAll measures every element concurrently and returns the results in
// input order once all of them are available.
func (e *Engine) measureAll(ctx context.Context, log *zap.Logger, els []measure.Element) ([]measure.RectResult, error) {
	results := make([]measure.RectResult, len(els))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxConcurrency)

	for i, el := range els {
		i, el := i, el
		g.Go(func() error {
			res, err := e.measureRect(groupCtx, log, el)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// measurePair is measureAll for the common two-element case. ok is false
// when either rectangle is absent.
func (e *Engine) measurePair(ctx context.Context, log *zap.Logger, a, b measure.Element) (ra, rb geometry.Rect, ok bool, err error) {
	results, err := e.measureAll(ctx, log, []measure.Element{a, b})
	if err != nil {
		return geometry.Rect{}, geometry.Rect{}, false, err
	}
	ra, okA := results[0].Get()
	rb, okB := results[1].Get()
	return ra, rb, okA && okB, nil
}

// scrollIntoView performs the best-effort scroll. It reports false when the
// scroll failed or timed out. Measurers without the capability are skipped.
func (e *Engine) scrollIntoView(ctx context.Context, log *zap.Logger, el measure.Element, timeout time.Duration) bool {
	scroller, ok := e.measurer.(measure.Scroller)
	if !ok {
		log.Debug("Measurer cannot scroll; measuring element in place.")
		return true
	}
	if timeout <= 0 {
		timeout = e.cfg.ScrollTimeout
	}
	scrollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := scroller.ScrollIntoView(scrollCtx, el); err != nil {
		log.Debug("Scroll into view failed.", zap.Duration("timeout", timeout), zap.Error(err))
		return false
	}
	return true
}
