// File: internal/geometry/rect.go
package geometry

import "math"

// Rect is an axis-aligned rectangle in viewport-relative CSS pixels.
// Negative dimensions are allowed on the value itself but every derived
// computation treats them as empty.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Size is the width and height of a viewport.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns max(0,w) * max(0,h).
func Area(r Rect) float64 {
	return math.Max(0, r.Width) * math.Max(0, r.Height)
}

// Right returns the x coordinate of the right edge.
func Right(r Rect) float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func Bottom(r Rect) float64 { return r.Y + r.Height }

// CenterX returns the horizontal center.
func CenterX(r Rect) float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center.
func CenterY(r Rect) float64 { return r.Y + r.Height/2 }

// Translate returns r moved by (dx, dy).
func Translate(r Rect, dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// ClampVisible intersects r with [0,viewportWidth] x [0,viewportHeight].
// Viewport dimensions are floored at zero and the result never has negative size.
func ClampVisible(viewportWidth, viewportHeight float64, r Rect) Rect {
	vw := math.Max(0, viewportWidth)
	vh := math.Max(0, viewportHeight)

	left := clamp(r.X, 0, vw)
	top := clamp(r.Y, 0, vh)
	// An inverted rectangle collapses onto its origin.
	right := clamp(math.Max(r.X, Right(r)), 0, vw)
	bottom := clamp(math.Max(r.Y, Bottom(r)), 0, vh)

	return Rect{
		X:      left,
		Y:      top,
		Width:  math.Max(0, right-left),
		Height: math.Max(0, bottom-top),
	}
}

// OverlapLen returns the length shared by the intervals [a1,a2] and [b1,b2].
func OverlapLen(a1, a2, b1, b2 float64) float64 {
	return math.Max(0, math.Min(a2, b2)-math.Max(a1, b1))
}

// OverlapRatio1D returns the overlap length divided by the length of the
// shorter interval. Either interval having non-positive length yields 0.
func OverlapRatio1D(a1, a2, b1, b2 float64) float64 {
	lenA := a2 - a1
	lenB := b2 - b1
	if lenA <= 0 || lenB <= 0 {
		return 0
	}
	return OverlapLen(a1, a2, b1, b2) / math.Min(lenA, lenB)
}

// Intersect returns the overlapping region of a and b. When the rectangles
// are disjoint the result has zero width and/or height.
func Intersect(a, b Rect) Rect {
	x := math.Max(a.X, b.X)
	y := math.Max(a.Y, b.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(0, math.Min(Right(a), Right(b))-x),
		Height: math.Max(0, math.Min(Bottom(a), Bottom(b))-y),
	}
}

// Clamp01 bounds a ratio to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
