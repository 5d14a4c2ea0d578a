// File: internal/relations/options.go
package relations

import (
	"math"
	"time"

	"github.com/xkilldash9x/vantage/api/schemas"
)

// DefaultAlignTolerance is the pixel slack used by NewAlignOptions.
const DefaultAlignTolerance = 1.0

// ViewportOptions configures IsInViewport. The zero value asks whether any
// part of the element is visible.
type ViewportOptions struct {
	// FullyVisible requires every edge to lie inside the padded viewport.
	// Threshold is ignored in this mode.
	FullyVisible bool
	// Threshold is the minimum visible fraction of the element, in [0,1].
	Threshold float64
	// Padding is a safe-area inset subtracted from every viewport edge.
	Padding float64
	// ScrollIntoView asks the measurer to scroll the element first.
	// A failed or timed out scroll makes the check false.
	ScrollIntoView bool
	// ScrollTimeout overrides the engine's scroll timeout when positive.
	ScrollTimeout time.Duration
}

func (o ViewportOptions) validate() error {
	if math.IsNaN(o.Padding) || o.Padding < 0 {
		return optionError("padding", o.Padding, "must be a non-negative number of pixels")
	}
	if !o.FullyVisible {
		if err := validateRatio("threshold", o.Threshold); err != nil {
			return err
		}
	}
	return nil
}

// PositionOptions configures RelativePosition.
type PositionOptions struct {
	// OverlapRatio is the minimum orthogonal overlap, in [0,1], measured
	// against the shorter of the two extents.
	OverlapRatio float64
	// Gap is the minimum free space between the facing edges.
	Gap float64
	// Tolerance relaxes both the ordering and the overlap checks.
	Tolerance float64
	// Logical, when set, replaces a horizontal requested direction with the
	// physical direction it resolves to under WritingDirection.
	Logical schemas.LogicalDirection
	// WritingDirection defaults to ltr.
	WritingDirection schemas.WritingDirection
}

func (o PositionOptions) validate() error {
	if math.IsNaN(o.Gap) || o.Gap < 0 {
		return optionError("gap", o.Gap, "must be a non-negative number of pixels")
	}
	if err := validateRatio("overlapRatio", o.OverlapRatio); err != nil {
		return err
	}
	if math.IsNaN(o.Tolerance) {
		return optionError("tolerance", o.Tolerance, "must be a number")
	}
	if !o.Logical.Valid() {
		return optionError("logical", o.Logical, "must be start or end")
	}
	if o.WritingDirection != "" && !o.WritingDirection.Valid() {
		return optionError("writingDirection", o.WritingDirection, "must be ltr or rtl")
	}
	return nil
}

// AlignOptions configures AreAligned. Build it with NewAlignOptions to get
// the default tolerance; a literal zero Tolerance means exact alignment.
type AlignOptions struct {
	Axis      schemas.Axis
	Mode      schemas.AlignMode
	Tolerance float64
}

// NewAlignOptions returns options for axis and mode with DefaultAlignTolerance.
func NewAlignOptions(axis schemas.Axis, mode schemas.AlignMode) AlignOptions {
	return AlignOptions{Axis: axis, Mode: mode, Tolerance: DefaultAlignTolerance}
}

// WithTolerance returns a copy of o using tolerance.
func (o AlignOptions) WithTolerance(tolerance float64) AlignOptions {
	o.Tolerance = tolerance
	return o
}

func (o AlignOptions) validate() error {
	if o.Axis != schemas.AxisX && o.Axis != schemas.AxisY {
		return optionError("axis", o.Axis, "must be x or y")
	}
	if o.Mode != schemas.AlignEdges && o.Mode != schemas.AlignCenters {
		return optionError("mode", o.Mode, "must be edges or centers")
	}
	if math.IsNaN(o.Tolerance) {
		return optionError("tolerance", o.Tolerance, "must be a number")
	}
	return nil
}

func validateRatio(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return optionError(name, v, "must be between 0 and 1")
	}
	return nil
}
