// File: internal/relations/distance.go
package relations

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// Distance is a signed edge distance that may be absent.
type Distance struct {
	Value float64
	Valid bool
}

// String renders the distance, or "absent".
func (d Distance) String() string {
	if !d.Valid {
		return "absent"
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64)
}

// EdgeDistance returns the signed gap between the facing edges of subject and
// reference for direction. Positive values mean a real gap in that
// direction; zero or negative means touching, overlapping or inverted.
func (e *Engine) EdgeDistance(ctx context.Context, subject, reference measure.Element, direction schemas.Direction) (Distance, error) {
	if !direction.Valid() {
		return Distance{}, optionError("direction", direction, "must be left, right, above or below")
	}
	log := e.query("edge_distance",
		zap.String("subject", string(subject)),
		zap.String("reference", string(reference)),
		zap.String("direction", string(direction)),
	)

	s, r, ok, err := e.measurePair(ctx, log, subject, reference)
	if err != nil || !ok {
		return Distance{}, err
	}

	d := Distance{Value: edgeDistance(s, r, direction), Valid: true}
	log.Debug("Edge distance evaluated.", zap.Float64("distance", d.Value))
	return d, nil
}

func edgeDistance(s, r geometry.Rect, d schemas.Direction) float64 {
	switch d {
	case schemas.DirectionLeft:
		return r.X - geometry.Right(s)
	case schemas.DirectionRight:
		return s.X - geometry.Right(r)
	case schemas.DirectionAbove:
		return r.Y - geometry.Bottom(s)
	default:
		return s.Y - geometry.Bottom(r)
	}
}
