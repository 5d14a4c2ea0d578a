// File: internal/relations/alignment.go
package relations

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// AreAligned reports whether a and b line up on opts.Axis. AxisX compares
// top and bottom edges (or vertical centers); AxisY compares left and right
// edges (or horizontal centers).
func (e *Engine) AreAligned(ctx context.Context, a, b measure.Element, opts AlignOptions) (bool, error) {
	if err := opts.validate(); err != nil {
		return false, err
	}
	log := e.query("are_aligned",
		zap.String("a", string(a)),
		zap.String("b", string(b)),
		zap.String("axis", string(opts.Axis)),
		zap.String("mode", string(opts.Mode)),
	)

	ra, rb, ok, err := e.measurePair(ctx, log, a, b)
	if err != nil || !ok {
		return false, err
	}

	result := aligned(ra, rb, opts)
	log.Debug("Alignment evaluated.", zap.Bool("result", result))
	return result, nil
}

func aligned(a, b geometry.Rect, opts AlignOptions) bool {
	within := func(x, y float64) bool { return math.Abs(x-y) <= opts.Tolerance }

	switch {
	case opts.Axis == schemas.AxisX && opts.Mode == schemas.AlignEdges:
		return within(a.Y, b.Y) && within(geometry.Bottom(a), geometry.Bottom(b))
	case opts.Axis == schemas.AxisX && opts.Mode == schemas.AlignCenters:
		return within(geometry.CenterY(a), geometry.CenterY(b))
	case opts.Axis == schemas.AxisY && opts.Mode == schemas.AlignEdges:
		return within(a.X, b.X) && within(geometry.Right(a), geometry.Right(b))
	case opts.Axis == schemas.AxisY && opts.Mode == schemas.AlignCenters:
		return within(geometry.CenterX(a), geometry.CenterX(b))
	}
	return false
}
