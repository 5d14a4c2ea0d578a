// File: internal/relations/direction.go
package relations

import "github.com/xkilldash9x/vantage/api/schemas"

type logicalKey struct {
	logical schemas.LogicalDirection
	writing schemas.WritingDirection
}

// logicalDirections is the complete bidi policy. Vertical directions are
// never logical, so they do not appear here.
var logicalDirections = map[logicalKey]schemas.Direction{
	{schemas.LogicalStart, schemas.LTR}: schemas.DirectionLeft,
	{schemas.LogicalEnd, schemas.LTR}:   schemas.DirectionRight,
	{schemas.LogicalStart, schemas.RTL}: schemas.DirectionRight,
	{schemas.LogicalEnd, schemas.RTL}:   schemas.DirectionLeft,
}

// PhysicalDirection resolves a logical direction under a writing direction.
// An empty writing direction is treated as ltr.
func PhysicalDirection(l schemas.LogicalDirection, w schemas.WritingDirection) (schemas.Direction, bool) {
	if w == "" {
		w = schemas.LTR
	}
	d, ok := logicalDirections[logicalKey{l, w}]
	return d, ok
}

// resolveDirection picks the physical direction a position query evaluates.
// Vertical requests pass through untouched even when a logical direction is set.
func resolveDirection(requested schemas.Direction, opts PositionOptions) (schemas.Direction, error) {
	if requested.IsVertical() {
		return requested, nil
	}
	if opts.Logical != schemas.LogicalNone {
		d, ok := PhysicalDirection(opts.Logical, opts.WritingDirection)
		if !ok {
			return "", optionError("logical", opts.Logical, "cannot be resolved")
		}
		return d, nil
	}
	if !requested.Valid() {
		return "", optionError("direction", requested, "must be left, right, above or below")
	}
	return requested, nil
}
