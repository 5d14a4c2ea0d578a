// File: internal/relations/position_test.go
package relations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

func TestPositioned(t *testing.T) {
	// a sits 30px left of b and shares its full height.
	a := rect(0, 0, 100, 50)
	b := rect(130, 0, 100, 50)
	// c sits 20px below a, offset by half a width.
	c := rect(50, 70, 100, 50)

	tests := []struct {
		name string
		s, r geometry.Rect
		dir  schemas.Direction
		opts PositionOptions
		want bool
	}{
		{"left with gap", a, b, schemas.DirectionLeft, PositionOptions{}, true},
		{"left satisfies requested gap", a, b, schemas.DirectionLeft, PositionOptions{Gap: 30}, true},
		{"left misses larger gap", a, b, schemas.DirectionLeft, PositionOptions{Gap: 31}, false},
		{"tolerance relaxes gap", a, b, schemas.DirectionLeft, PositionOptions{Gap: 31, Tolerance: 1}, true},
		{"right is the mirror", b, a, schemas.DirectionRight, PositionOptions{Gap: 30}, true},
		{"right misses larger gap", b, a, schemas.DirectionRight, PositionOptions{Gap: 31}, false},
		{"right tolerance relaxes gap", b, a, schemas.DirectionRight, PositionOptions{Gap: 32, Tolerance: 2}, true},
		{"wrong side", b, a, schemas.DirectionLeft, PositionOptions{}, false},
		{"full vertical overlap", a, b, schemas.DirectionLeft, PositionOptions{OverlapRatio: 1}, true},
		{"below", c, a, schemas.DirectionBelow, PositionOptions{Gap: 20}, true},
		{"below misses gap", c, a, schemas.DirectionBelow, PositionOptions{Gap: 21}, false},
		{"above", a, c, schemas.DirectionAbove, PositionOptions{Gap: 20}, true},
		{"horizontal overlap satisfied", a, c, schemas.DirectionAbove, PositionOptions{OverlapRatio: 0.5}, true},
		{"horizontal overlap too small", a, c, schemas.DirectionAbove, PositionOptions{OverlapRatio: 0.6}, false},
		{"touching counts as left at zero gap", rect(0, 0, 10, 10), rect(10, 0, 10, 10), schemas.DirectionLeft, PositionOptions{}, true},
		{"overlapping is not left", rect(0, 0, 20, 10), rect(10, 0, 10, 10), schemas.DirectionLeft, PositionOptions{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positioned(tt.s, tt.r, tt.dir, tt.opts))
		})
	}
}

func TestPositioned_Antisymmetry(t *testing.T) {
	pairs := [][2]geometry.Rect{
		{rect(0, 0, 10, 10), rect(20, 0, 10, 10)},
		{rect(0, 0, 10, 10), rect(10, 5, 3, 3)},
		{rect(-50, 0, 5, 80), rect(100, 10, 1, 1)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if positioned(a, b, schemas.DirectionLeft, PositionOptions{}) {
			assert.False(t, positioned(b, a, schemas.DirectionLeft, PositionOptions{}), "%+v and %+v cannot both be left of each other", a, b)
		}
	}
}

func TestRelativePosition_LogicalDirections(t *testing.T) {
	ctx := context.Background()
	engine := fixtureEngine(t, viewport(800, 600), map[measure.Element]geometry.Rect{
		"#a": rect(0, 0, 100, 50),
		"#b": rect(130, 0, 100, 50),
		"#c": rect(0, 100, 100, 50),
	})

	tests := []struct {
		name    string
		dir     schemas.Direction
		logical schemas.LogicalDirection
		writing schemas.WritingDirection
		want    bool
	}{
		{"start in ltr is left", schemas.DirectionLeft, schemas.LogicalStart, schemas.LTR, true},
		{"start in rtl is right", schemas.DirectionLeft, schemas.LogicalStart, schemas.RTL, false},
		{"end in rtl is left", schemas.DirectionRight, schemas.LogicalEnd, schemas.RTL, true},
		{"end in ltr is right", schemas.DirectionLeft, schemas.LogicalEnd, schemas.LTR, false},
		{"writing direction defaults to ltr", schemas.DirectionLeft, schemas.LogicalStart, "", true},
		{"logical direction alone is enough", "", schemas.LogicalStart, schemas.LTR, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.RelativePosition(ctx, "#a", "#b", tt.dir, PositionOptions{Logical: tt.logical, WritingDirection: tt.writing})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("vertical directions ignore writing direction", func(t *testing.T) {
		got, err := engine.RelativePosition(ctx, "#a", "#c", schemas.DirectionAbove, PositionOptions{Logical: schemas.LogicalEnd, WritingDirection: schemas.RTL})
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestRelativePosition_Absent(t *testing.T) {
	engine := fixtureEngine(t, viewport(800, 600), map[measure.Element]geometry.Rect{"#a": rect(0, 0, 10, 10)})
	got, err := engine.RelativePosition(context.Background(), "#a", "#missing", schemas.DirectionLeft, PositionOptions{})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestRelativePosition_Validation(t *testing.T) {
	tests := []struct {
		name   string
		dir    schemas.Direction
		opts   PositionOptions
		option string
	}{
		{"negative gap", schemas.DirectionLeft, PositionOptions{Gap: -1}, "gap"},
		{"overlap ratio above one", schemas.DirectionLeft, PositionOptions{OverlapRatio: 1.2}, "overlapRatio"},
		{"negative overlap ratio", schemas.DirectionLeft, PositionOptions{OverlapRatio: -0.2}, "overlapRatio"},
		{"unknown direction", schemas.Direction("sideways"), PositionOptions{}, "direction"},
		{"unknown logical direction", schemas.DirectionLeft, PositionOptions{Logical: "middle"}, "logical"},
		{"unknown writing direction", schemas.DirectionLeft, PositionOptions{Logical: schemas.LogicalStart, WritingDirection: "ttb"}, "writingDirection"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockMeasurer)
			engine := newTestEngine(t, m)

			_, err := engine.RelativePosition(context.Background(), "#a", "#b", tt.dir, tt.opts)
			require.ErrorIs(t, err, ErrInvalidOption)
			var optErr *OptionError
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, tt.option, optErr.Option)
			assert.Empty(t, m.Calls)
		})
	}
}

func TestPhysicalDirection(t *testing.T) {
	tests := []struct {
		logical schemas.LogicalDirection
		writing schemas.WritingDirection
		want    schemas.Direction
	}{
		{schemas.LogicalStart, schemas.LTR, schemas.DirectionLeft},
		{schemas.LogicalEnd, schemas.LTR, schemas.DirectionRight},
		{schemas.LogicalStart, schemas.RTL, schemas.DirectionRight},
		{schemas.LogicalEnd, schemas.RTL, schemas.DirectionLeft},
	}
	for _, tt := range tests {
		got, ok := PhysicalDirection(tt.logical, tt.writing)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "%s under %s", tt.logical, tt.writing)
	}

	_, ok := PhysicalDirection(schemas.LogicalNone, schemas.LTR)
	assert.False(t, ok)
}
