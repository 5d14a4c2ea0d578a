// File: internal/relations/ratio.go
package relations

import (
	"context"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// IntersectionAreaRatio returns area(a ∩ b) / area(a), in [0,1]. The ratio is
// asymmetric: the denominator is always the subject a. It is 0 when either
// element is unmeasurable or a has no area.
func (e *Engine) IntersectionAreaRatio(ctx context.Context, a, b measure.Element) (float64, error) {
	log := e.query("intersection_area_ratio", zap.String("a", string(a)), zap.String("b", string(b)))

	ra, rb, ok, err := e.measurePair(ctx, log, a, b)
	if err != nil || !ok {
		return 0, err
	}

	ratio := intersectionRatio(ra, rb)
	log.Debug("Intersection ratio evaluated.", zap.Float64("ratio", ratio))
	return ratio, nil
}

func intersectionRatio(a, b geometry.Rect) float64 {
	full := geometry.Area(a)
	if full <= 0 {
		return 0
	}
	return geometry.Clamp01(geometry.Area(geometry.Intersect(a, b)) / full)
}
