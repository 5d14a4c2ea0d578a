// File: internal/measure/measure.go
package measure

import (
	"context"

	"github.com/xkilldash9x/vantage/internal/geometry"
)

// Element is an opaque handle for a rendered element. For browser-backed
// measurers it is a CSS selector; for fixtures it is the recorded key.
type Element string

// RectResult is either a measured rectangle or an explicit absence
// (element missing, detached or not rendered).
type RectResult struct {
	rect    geometry.Rect
	present bool
}

// Found wraps a measured rectangle.
func Found(r geometry.Rect) RectResult {
	return RectResult{rect: r, present: true}
}

// Missing is the result for an element that could not be measured.
func Missing() RectResult {
	return RectResult{}
}

// Get returns the rectangle and whether it is present.
func (r RectResult) Get() (geometry.Rect, bool) {
	return r.rect, r.present
}

// Present reports whether a rectangle was measured.
func (r RectResult) Present() bool { return r.present }

// ViewportResult is either a viewport size or an explicit absence.
type ViewportResult struct {
	size    geometry.Size
	present bool
}

// ViewportFound wraps a measured viewport size.
func ViewportFound(s geometry.Size) ViewportResult {
	return ViewportResult{size: s, present: true}
}

// ViewportMissing is the result when no viewport is available.
func ViewportMissing() ViewportResult {
	return ViewportResult{}
}

// Get returns the viewport size and whether it is present.
func (v ViewportResult) Get() (geometry.Size, bool) {
	return v.size, v.present
}

// Measurer retrieves element geometry for a single page. Implementations
// must be safe for concurrent calls with distinct elements and must not
// assume any ordering between concurrent requests.
type Measurer interface {
	// Rect measures the element's bounding rectangle in viewport coordinates.
	// An unmeasurable element is reported as Missing(), not as an error.
	// Errors are reserved for probe failures (protocol errors, timeouts).
	Rect(ctx context.Context, el Element) (RectResult, error)

	// Viewport returns the current viewport dimensions.
	Viewport(ctx context.Context) (ViewportResult, error)
}

// Scroller is an optional capability: bring an element into view.
// The deadline on ctx bounds how long the scroll may take.
type Scroller interface {
	ScrollIntoView(ctx context.Context, el Element) error
}
