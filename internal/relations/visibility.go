// File: internal/relations/visibility.go
package relations

import (
	"context"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// IsInViewport reports whether el is visible inside the viewport, optionally
// inset by a safe-area padding. Usage errors are returned before measuring;
// an unmeasurable element or viewport yields false.
func (e *Engine) IsInViewport(ctx context.Context, el measure.Element, opts ViewportOptions) (bool, error) {
	if err := opts.validate(); err != nil {
		return false, err
	}
	log := e.query("is_in_viewport", zap.String("element", string(el)))

	if opts.ScrollIntoView && !e.scrollIntoView(ctx, log, el, opts.ScrollTimeout) {
		return false, ctx.Err()
	}

	rectRes, err := e.measureRect(ctx, log, el)
	if err != nil {
		return false, err
	}
	rect, ok := rectRes.Get()
	if !ok || geometry.Area(rect) <= 0 {
		return false, nil
	}

	vpRes, err := e.measureViewport(ctx, log)
	if err != nil {
		return false, err
	}
	vp, ok := vpRes.Get()
	if !ok {
		return false, nil
	}

	result := inViewport(rect, vp, opts)
	log.Debug("Viewport check evaluated.", zap.Bool("result", result))
	return result, nil
}

// inViewport is the pure part of IsInViewport. rect must have positive area.
func inViewport(rect geometry.Rect, vp geometry.Size, opts ViewportOptions) bool {
	p := opts.Padding
	effWidth := vp.Width - 2*p
	effHeight := vp.Height - 2*p
	if effWidth <= 0 || effHeight <= 0 {
		return false
	}

	if opts.FullyVisible {
		return rect.X >= p &&
			rect.Y >= p &&
			geometry.Right(rect) <= vp.Width-p &&
			geometry.Bottom(rect) <= vp.Height-p
	}

	ratio := visibleFraction(geometry.Translate(rect, -p, -p), effWidth, effHeight)
	if opts.Threshold == 0 {
		// A zero threshold still needs some visible pixels.
		return ratio > 0
	}
	return ratio >= opts.Threshold
}

// VisibleAreaRatio returns the fraction of el's area inside the viewport, in
// [0,1]. It is 0 when the element or the viewport cannot be measured or the
// element has no area.
func (e *Engine) VisibleAreaRatio(ctx context.Context, el measure.Element) (float64, error) {
	log := e.query("visible_area_ratio", zap.String("element", string(el)))

	rectRes, err := e.measureRect(ctx, log, el)
	if err != nil {
		return 0, err
	}
	rect, ok := rectRes.Get()
	if !ok {
		return 0, nil
	}

	vpRes, err := e.measureViewport(ctx, log)
	if err != nil {
		return 0, err
	}
	vp, ok := vpRes.Get()
	if !ok {
		return 0, nil
	}

	ratio := visibleFraction(rect, vp.Width, vp.Height)
	log.Debug("Visible area ratio evaluated.", zap.Float64("ratio", ratio))
	return ratio, nil
}

func visibleFraction(rect geometry.Rect, viewportWidth, viewportHeight float64) float64 {
	full := geometry.Area(rect)
	if full <= 0 {
		return 0
	}
	visible := geometry.Area(geometry.ClampVisible(viewportWidth, viewportHeight, rect))
	return geometry.Clamp01(visible / full)
}
