// File: internal/reporting/json_reporter.go
package reporting

import (
	"fmt"
	"io"

	json "github.com/json-iterator/go"

	"github.com/xkilldash9x/vantage/api/schemas"
)

// JSONReporter writes each report as one indented JSON document.
type JSONReporter struct {
	writer  io.WriteCloser
	encoder *json.Encoder
}

// NewJSONReporter creates a reporter that writes JSON.
func NewJSONReporter(writer io.WriteCloser) *JSONReporter {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return &JSONReporter{writer: writer, encoder: encoder}
}

// Write encodes report.
func (r *JSONReporter) Write(report *schemas.Report) error {
	if err := r.encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Close closes the writer.
func (r *JSONReporter) Close() error {
	return r.writer.Close()
}
