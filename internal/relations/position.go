// File: internal/relations/position.go
package relations

import (
	"context"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// RelativePosition reports whether subject lies in direction of reference,
// separated by at least opts.Gap and overlapping on the orthogonal axis by at
// least opts.OverlapRatio. Either element being unmeasurable yields false.
func (e *Engine) RelativePosition(ctx context.Context, subject, reference measure.Element, direction schemas.Direction, opts PositionOptions) (bool, error) {
	if err := opts.validate(); err != nil {
		return false, err
	}
	physical, err := resolveDirection(direction, opts)
	if err != nil {
		return false, err
	}
	log := e.query("relative_position",
		zap.String("subject", string(subject)),
		zap.String("reference", string(reference)),
		zap.String("direction", string(physical)),
	)

	s, r, ok, err := e.measurePair(ctx, log, subject, reference)
	if err != nil || !ok {
		return false, err
	}

	result := positioned(s, r, physical, opts)
	log.Debug("Relative position evaluated.", zap.Bool("result", result))
	return result, nil
}

// positioned evaluates the ordering and orthogonal-overlap conditions.
// Tolerance sits on whichever side of each inequality loosens it.
func positioned(s, r geometry.Rect, d schemas.Direction, opts PositionOptions) bool {
	gap, tol := opts.Gap, opts.Tolerance

	var ordered bool
	var overlap float64
	switch d {
	case schemas.DirectionLeft:
		// right(s) <= r.x - gap, loosened upwards.
		ordered = geometry.Right(s) <= r.X-gap+tol
		overlap = geometry.OverlapRatio1D(s.Y, geometry.Bottom(s), r.Y, geometry.Bottom(r))
	case schemas.DirectionRight:
		// s.x >= right(r) + gap, loosened downwards.
		ordered = s.X+tol >= geometry.Right(r)+gap
		overlap = geometry.OverlapRatio1D(s.Y, geometry.Bottom(s), r.Y, geometry.Bottom(r))
	case schemas.DirectionAbove:
		ordered = geometry.Bottom(s) <= r.Y-gap+tol
		overlap = geometry.OverlapRatio1D(s.X, geometry.Right(s), r.X, geometry.Right(r))
	case schemas.DirectionBelow:
		ordered = s.Y+tol >= geometry.Bottom(r)+gap
		overlap = geometry.OverlapRatio1D(s.X, geometry.Right(s), r.X, geometry.Right(r))
	default:
		return false
	}
	return ordered && overlap+tol >= opts.OverlapRatio
}
