// File: internal/measure/cdp_test.go
package measure

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/vantage/internal/geometry"
)

// cannedEvaluator answers probes with fixed JSON payloads and records the
// expressions it was asked to run.
type cannedEvaluator struct {
	mu       sync.Mutex
	rect     string
	viewport string
	err      error
	seen     []string
}

func (c *cannedEvaluator) evaluate(_ context.Context, expression string, res interface{}) error {
	c.mu.Lock()
	c.seen = append(c.seen, expression)
	c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	payload := c.rect
	if expression == viewportProbe {
		payload = c.viewport
	}
	return json.Unmarshal([]byte(payload), res)
}

func TestCDPMeasurer_Rect(t *testing.T) {
	logger := zaptest.NewLogger(t)

	t.Run("found", func(t *testing.T) {
		ev := &cannedEvaluator{rect: `{"found":true,"x":10,"y":20,"width":30.5,"height":40}`}
		m := NewCDPMeasurer(logger, WithEvaluator(ev.evaluate))

		res, err := m.Rect(context.Background(), Element(`button[data-id="a"]`))
		require.NoError(t, err)
		r, ok := res.Get()
		require.True(t, ok)
		assert.Equal(t, geometry.Rect{X: 10, Y: 20, Width: 30.5, Height: 40}, r)

		require.Len(t, ev.seen, 1)
		assert.Contains(t, ev.seen[0], `"button[data-id=\"a\"]"`, "selector must be embedded as a JSON string literal")
	})

	t.Run("not rendered", func(t *testing.T) {
		ev := &cannedEvaluator{rect: `{"found":false}`}
		m := NewCDPMeasurer(logger, WithEvaluator(ev.evaluate))

		res, err := m.Rect(context.Background(), "#hidden")
		require.NoError(t, err)
		assert.False(t, res.Present())
	})

	t.Run("probe failure is an error", func(t *testing.T) {
		ev := &cannedEvaluator{err: errors.New("target closed")}
		m := NewCDPMeasurer(logger, WithEvaluator(ev.evaluate))

		res, err := m.Rect(context.Background(), "#a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "target closed")
		assert.False(t, res.Present())
	})
}

func TestCDPMeasurer_Viewport(t *testing.T) {
	logger := zaptest.NewLogger(t)

	ev := &cannedEvaluator{viewport: `{"width":1280,"height":800}`}
	m := NewCDPMeasurer(logger, WithEvaluator(ev.evaluate))
	res, err := m.Viewport(context.Background())
	require.NoError(t, err)
	size, ok := res.Get()
	require.True(t, ok)
	assert.Equal(t, geometry.Size{Width: 1280, Height: 800}, size)

	ev = &cannedEvaluator{viewport: `{"width":0,"height":800}`}
	m = NewCDPMeasurer(logger, WithEvaluator(ev.evaluate))
	res, err = m.Viewport(context.Background())
	require.NoError(t, err)
	_, ok = res.Get()
	assert.False(t, ok, "zero-width viewport is reported as missing")
}

func TestCDPMeasurer_ScrollIntoView(t *testing.T) {
	logger := zaptest.NewLogger(t)

	var scrolled []string
	m := NewCDPMeasurer(logger, WithScrollFunc(func(_ context.Context, selector string) error {
		scrolled = append(scrolled, selector)
		if strings.HasPrefix(selector, "#gone") {
			return context.DeadlineExceeded
		}
		return nil
	}))

	require.NoError(t, m.ScrollIntoView(context.Background(), "#footer"))
	err := m.ScrollIntoView(context.Background(), "#gone")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []string{"#footer", "#gone"}, scrolled)
}

func TestCDPMeasurer_RateLimit(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ev := &cannedEvaluator{rect: `{"found":true,"x":0,"y":0,"width":1,"height":1}`}

	t.Run("disabled", func(t *testing.T) {
		m := NewCDPMeasurer(logger, WithEvaluator(ev.evaluate), WithRateLimit(0, 4))
		assert.Nil(t, m.limiter)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		m := NewCDPMeasurer(logger, WithEvaluator(ev.evaluate), WithRateLimit(1, 1))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := m.Rect(ctx, "#a")
		require.Error(t, err)
	})

	t.Run("burst admits calls", func(t *testing.T) {
		m := NewCDPMeasurer(logger, WithEvaluator(ev.evaluate), WithRateLimit(1000, 3))
		for i := 0; i < 3; i++ {
			res, err := m.Rect(context.Background(), "#a")
			require.NoError(t, err)
			assert.True(t, res.Present())
		}
	})
}
