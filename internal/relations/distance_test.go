// File: internal/relations/distance_test.go
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

func TestEdgeDistance(t *testing.T) {
	ctx := context.Background()
	engine := fixtureEngine(t, viewport(800, 600), map[measure.Element]geometry.Rect{
		"#a": rect(0, 0, 100, 50),
		"#b": rect(130, 0, 100, 50),
		"#c": rect(0, 60, 100, 50),
		"#d": rect(50, 0, 100, 50),
	})

	tests := []struct {
		name      string
		subject   measure.Element
		reference measure.Element
		dir       schemas.Direction
		want      float64
	}{
		{"gap to the right neighbour", "#a", "#b", schemas.DirectionLeft, 30},
		{"reversed subject is negative", "#b", "#a", schemas.DirectionLeft, -230},
		{"right of", "#b", "#a", schemas.DirectionRight, 30},
		{"above", "#a", "#c", schemas.DirectionAbove, 10},
		{"below", "#c", "#a", schemas.DirectionBelow, 10},
		{"overlap is negative", "#a", "#d", schemas.DirectionLeft, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := engine.EdgeDistance(ctx, tt.subject, tt.reference, tt.dir)
			require.NoError(t, err)
			require.True(t, d.Valid)
			assert.InDelta(t, tt.want, d.Value, 1e-9)
		})
	}

	t.Run("missing element is absent", func(t *testing.T) {
		d, err := engine.EdgeDistance(ctx, "#a", "#missing", schemas.DirectionLeft)
		require.NoError(t, err)
		assert.False(t, d.Valid)
		assert.Equal(t, "absent", d.String())
	})
}

func TestEdgeDistance_InvalidDirection(t *testing.T) {
	m := new(MockMeasurer)
	_, err := newTestEngine(t, m).EdgeDistance(context.Background(), "#a", "#b", "behind")
	require.ErrorIs(t, err, ErrInvalidOption)
	assert.Empty(t, m.Calls)
}

func TestDistance_String(t *testing.T) {
	assert.Equal(t, "30", Distance{Value: 30, Valid: true}.String())
	assert.Equal(t, "-2.5", Distance{Value: -2.5, Valid: true}.String())
	assert.Equal(t, "absent", Distance{}.String())
}
