// File: internal/relations/ratio_test.go
package relations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

func TestIntersectionAreaRatio(t *testing.T) {
	ctx := context.Background()
	engine := fixtureEngine(t, viewport(800, 600), map[measure.Element]geometry.Rect{
		"#small":    rect(0, 0, 10, 10),
		"#big":      rect(0, 0, 100, 100),
		"#offset":   rect(50, 50, 100, 100),
		"#far":      rect(500, 500, 10, 10),
		"#line":     rect(5, 5, 0, 10),
		"#inverted": rect(20, 20, -5, -5),
	})

	tests := []struct {
		name string
		a, b measure.Element
		want float64
	}{
		{"contained", "#small", "#big", 1},
		{"denominator is the subject", "#big", "#small", 0.01},
		{"quarter overlap", "#big", "#offset", 0.25},
		{"disjoint", "#big", "#far", 0},
		{"zero area subject", "#line", "#big", 0},
		{"inverted subject", "#inverted", "#big", 0},
		{"missing reference", "#big", "#missing", 0},
		{"missing subject", "#missing", "#big", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.IntersectionAreaRatio(ctx, tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
