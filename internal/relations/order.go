// File: internal/relations/order.go
package relations

import (
	"context"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// InOrder reports whether els follow order, pair by pair. Every element is
// measured concurrently; any absent element makes the answer false. An empty
// sequence is trivially ordered.
func (e *Engine) InOrder(ctx context.Context, els []measure.Element, order schemas.Order, tolerance float64) (bool, error) {
	if !order.Valid() {
		return false, optionError("order", order, "must be leftToRight, rightToLeft, topToBottom or bottomToTop")
	}
	if len(els) == 0 {
		return true, nil
	}
	log := e.query("in_order", zap.String("order", string(order)), zap.Int("elements", len(els)))

	results, err := e.measureAll(ctx, log, els)
	if err != nil {
		return false, err
	}
	rects := make([]geometry.Rect, len(results))
	for i, res := range results {
		r, ok := res.Get()
		if !ok {
			log.Debug("Order cannot be established for a missing element.", zap.String("element", string(els[i])))
			return false, nil
		}
		rects[i] = r
	}

	for i := 1; i < len(rects); i++ {
		if !follows(rects[i-1], rects[i], order, tolerance) {
			log.Debug("Order broken.", zap.Int("index", i), zap.String("element", string(els[i])))
			return false, nil
		}
	}
	return true, nil
}

// follows reports whether next comes after prev. Tolerance loosens each check.
func follows(prev, next geometry.Rect, order schemas.Order, tol float64) bool {
	switch order {
	case schemas.OrderLeftToRight:
		return geometry.Right(prev) <= next.X+tol
	case schemas.OrderRightToLeft:
		return prev.X >= geometry.Right(next)-tol
	case schemas.OrderTopToBottom:
		return geometry.Bottom(prev) <= next.Y+tol
	case schemas.OrderBottomToTop:
		return prev.Y >= geometry.Bottom(next)-tol
	}
	return false
}
