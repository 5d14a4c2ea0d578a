// File: internal/reporting/reporter_test.go
package reporting_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/reporting"
)

const testToolVersion = "v1.0.0-test"

func TestNew_Stdout(t *testing.T) {
	for _, format := range reporting.Formats {
		for _, path := range []string{"", "stdout"} {
			r, err := reporting.New(format, path, testToolVersion)
			require.NoError(t, err, format)
			assert.NoError(t, r.Close(), "closing the stdout wrapper is a no-op")
		}
	}
}

func TestNew_File(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "report.json")

	r, err := reporting.New("json", tmpFile, testToolVersion)
	require.NoError(t, err)
	require.NoError(t, r.Write(sampleReport()))
	require.NoError(t, r.Close())

	raw, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	var got schemas.Report
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, "half ratio", got.Results[1].Name)
	require.NotNil(t, got.Results[1].Value)
	assert.Equal(t, 0.25, *got.Results[1].Value)
}

func TestNew_UnsupportedFormat(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "report.xml")
	r, err := reporting.New("xml", tmpFile, testToolVersion)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "unsupported output format: xml")

	_, statErr := os.Stat(tmpFile)
	assert.True(t, os.IsNotExist(statErr), "no file is created for an unsupported format")
}

func TestNew_FileCreationFailure(t *testing.T) {
	r, err := reporting.New("text", t.TempDir(), testToolVersion)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r, err := reporting.NewWriter("text", &buf, testToolVersion)
	require.NoError(t, err)
	require.NoError(t, r.Write(sampleReport()))
	require.NoError(t, r.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "PASS  hero visible (in_viewport)", lines[0])
	assert.Equal(t, "FAIL  half ratio (visible_ratio) value=0.25", lines[1])
	assert.Equal(t, "FAIL  footer visible (in_viewport): invalid option threshold=2: must be between 0 and 1", lines[2])
	assert.Equal(t, "3 checks, 1 passed, 2 failed", lines[3])
}

func TestTextReporter_CloseError(t *testing.T) {
	writer := newMockWriter()
	writer.FailClose = true
	r := reporting.NewTextReporter(writer)
	require.NoError(t, r.Write(&schemas.Report{}))
	err := r.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close output writer")
	assert.Equal(t, "0 checks, 0 passed, 0 failed\n", writer.Buffer.String())
}
