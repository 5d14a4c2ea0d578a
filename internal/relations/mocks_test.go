// File: internal/relations/mocks_test.go
package relations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/vantage/internal/config"
	"github.com/xkilldash9x/vantage/internal/geometry"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// MockMeasurer mocks measure.Measurer.
type MockMeasurer struct {
	mock.Mock
}

func (m *MockMeasurer) Rect(ctx context.Context, el measure.Element) (measure.RectResult, error) {
	args := m.Called(ctx, el)
	return args.Get(0).(measure.RectResult), args.Error(1)
}

func (m *MockMeasurer) Viewport(ctx context.Context) (measure.ViewportResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(measure.ViewportResult), args.Error(1)
}

// MockScrollingMeasurer adds the optional Scroller capability.
type MockScrollingMeasurer struct {
	MockMeasurer
}

func (m *MockScrollingMeasurer) ScrollIntoView(ctx context.Context, el measure.Element) error {
	args := m.Called(ctx, el)
	return args.Error(0)
}

// -- Test Helpers --

func newTestEngine(t *testing.T, m measure.Measurer) *Engine {
	t.Helper()
	return NewEngine(m, config.NewDefaultConfig().Engine(), zaptest.NewLogger(t))
}

func fixtureEngine(t *testing.T, viewport *geometry.Size, elements map[measure.Element]geometry.Rect) *Engine {
	t.Helper()
	return newTestEngine(t, measure.NewFixture(viewport, elements))
}

func viewport(w, h float64) *geometry.Size {
	return &geometry.Size{Width: w, Height: h}
}

func rect(x, y, w, h float64) geometry.Rect {
	return geometry.Rect{X: x, Y: y, Width: w, Height: h}
}
