// File: api/schemas/geometry.go
package schemas

import (
	"fmt"
	"strings"
)

// -- Directional Relationships --

// Direction is a physical orientation of one element relative to another.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

// Valid reports whether d is one of the four physical directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionLeft, DirectionRight, DirectionAbove, DirectionBelow:
		return true
	}
	return false
}

// IsVertical reports whether d compares positions on the y axis.
func (d Direction) IsVertical() bool {
	return d == DirectionAbove || d == DirectionBelow
}

// LogicalDirection is a writing-direction-relative orientation.
// The zero value means no logical direction was requested.
type LogicalDirection string

const (
	LogicalNone  LogicalDirection = ""
	LogicalStart LogicalDirection = "start"
	LogicalEnd   LogicalDirection = "end"
)

// Valid reports whether l is start, end or unset.
func (l LogicalDirection) Valid() bool {
	return l == LogicalNone || l == LogicalStart || l == LogicalEnd
}

// WritingDirection is the inline direction of text flow.
type WritingDirection string

const (
	LTR WritingDirection = "ltr"
	RTL WritingDirection = "rtl"
)

// Valid reports whether w is ltr or rtl.
func (w WritingDirection) Valid() bool {
	return w == LTR || w == RTL
}

// Order is a reading order over a sequence of elements.
type Order string

const (
	OrderLeftToRight Order = "leftToRight"
	OrderRightToLeft Order = "rightToLeft"
	OrderTopToBottom Order = "topToBottom"
	OrderBottomToTop Order = "bottomToTop"
)

// Valid reports whether o is one of the four reading orders.
func (o Order) Valid() bool {
	switch o {
	case OrderLeftToRight, OrderRightToLeft, OrderTopToBottom, OrderBottomToTop:
		return true
	}
	return false
}

// -- Alignment --

// Axis selects which pair of edges an alignment check compares.
// AxisX compares top/bottom edges (elements in a row), AxisY compares
// left/right edges (elements in a column).
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// AlignMode selects between edge and center alignment.
type AlignMode string

const (
	AlignEdges   AlignMode = "edges"
	AlignCenters AlignMode = "centers"
)

// -- Parsing Helpers --

// ParseDirection converts user input such as "Left" or "below" into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown direction %q (want left, right, above or below)", s)
	}
	return d, nil
}

// ParseLogicalDirection converts "start", "end" or "" into a LogicalDirection.
func ParseLogicalDirection(s string) (LogicalDirection, error) {
	l := LogicalDirection(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown logical direction %q (want start or end)", s)
	}
	return l, nil
}

// ParseWritingDirection converts "ltr" or "rtl" into a WritingDirection.
// An empty string yields LTR.
func ParseWritingDirection(s string) (WritingDirection, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LTR, nil
	}
	w := WritingDirection(s)
	if !w.Valid() {
		return "", fmt.Errorf("unknown writing direction %q (want ltr or rtl)", s)
	}
	return w, nil
}

// ParseOrder accepts the canonical camel-case names as well as kebab and
// snake variants ("left-to-right", "top_to_bottom").
func ParseOrder(s string) (Order, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "lefttoright":
		return OrderLeftToRight, nil
	case "righttoleft":
		return OrderRightToLeft, nil
	case "toptobottom":
		return OrderTopToBottom, nil
	case "bottomtotop":
		return OrderBottomToTop, nil
	}
	return "", fmt.Errorf("unknown order %q (want leftToRight, rightToLeft, topToBottom or bottomToTop)", s)
}

// ParseAxis converts "x" or "y" into an Axis.
func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToLower(strings.TrimSpace(s)))
	if a != AxisX && a != AxisY {
		return "", fmt.Errorf("unknown axis %q (want x or y)", s)
	}
	return a, nil
}

// ParseAlignMode converts "edges" or "centers" into an AlignMode.
func ParseAlignMode(s string) (AlignMode, error) {
	m := AlignMode(strings.ToLower(strings.TrimSpace(s)))
	if m != AlignEdges && m != AlignCenters {
		return "", fmt.Errorf("unknown alignment mode %q (want edges or centers)", s)
	}
	return m, nil
}
