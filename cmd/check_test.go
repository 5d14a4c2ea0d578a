// File: cmd/check_test.go
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/reporting/sarif"
)

const passingSuite = `
checks:
  - name: hero visible
    kind: in_viewport
    element: "#hero"
  - name: row order
    kind: order
    elements: ["#a", "#b", "#c"]
    order: leftToRight
`

const failingSuite = passingSuite + `
  - name: hidden visible
    kind: in_viewport
    element: "#hidden"
`

func TestCheckCmd(t *testing.T) {
	t.Run("passing suite", func(t *testing.T) {
		suite := writeFile(t, "suite.yaml", passingSuite)
		out, err := runFixture(t, "check", suite)
		require.NoError(t, err)
		assert.Contains(t, out, "PASS  hero visible (in_viewport)")
		assert.Contains(t, out, "2 checks, 2 passed, 0 failed")
	})

	t.Run("failing suite", func(t *testing.T) {
		suite := writeFile(t, "suite.yaml", failingSuite)
		out, err := runFixture(t, "check", suite)
		assert.ErrorIs(t, err, ErrChecksFailed)
		assert.Contains(t, out, "FAIL  hidden visible (in_viewport)")
		assert.Contains(t, out, "3 checks, 2 passed, 1 failed")
	})

	t.Run("json report", func(t *testing.T) {
		suite := writeFile(t, "suite.yaml", failingSuite)
		out, err := runFixture(t, "check", suite, "-o", "json")
		assert.ErrorIs(t, err, ErrChecksFailed)

		var report schemas.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, "hidden visible", report.Results[2].Name)
	})

	t.Run("sarif report file", func(t *testing.T) {
		suite := writeFile(t, "suite.yaml", failingSuite)
		reportPath := filepath.Join(t.TempDir(), "layout.sarif")
		out, err := runFixture(t, "check", suite, "-o", "sarif", "--report-file", reportPath)
		assert.ErrorIs(t, err, ErrChecksFailed)
		assert.Empty(t, out, "a report file keeps stdout empty")

		raw, err := os.ReadFile(reportPath)
		require.NoError(t, err)
		var log sarif.Log
		require.NoError(t, json.Unmarshal(raw, &log))
		require.Len(t, log.Runs, 1)
		assert.Len(t, log.Runs[0].Results, 3)
		assert.Equal(t, sarif.LevelError, log.Runs[0].Results[2].Level)
	})

	t.Run("invalid suite", func(t *testing.T) {
		suite := writeFile(t, "suite.yaml", "checks:\n  - kind: hovering\n    element: \"#a\"\n")
		_, err := runFixture(t, "check", suite)
		assert.ErrorContains(t, err, "unknown kind")
	})
}
