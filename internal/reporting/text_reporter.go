// File: internal/reporting/text_reporter.go
package reporting

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/xkilldash9x/vantage/api/schemas"
)

// TextReporter renders one line per check followed by a summary line.
type TextReporter struct {
	writer io.WriteCloser
	buf    *bufio.Writer
}

// NewTextReporter creates a reporter that writes human-readable text.
func NewTextReporter(writer io.WriteCloser) *TextReporter {
	return &TextReporter{writer: writer, buf: bufio.NewWriter(writer)}
}

// Write renders report.
func (r *TextReporter) Write(report *schemas.Report) error {
	for _, res := range report.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		line := fmt.Sprintf("%s  %s (%s)", status, res.Name, res.Kind)
		if res.Value != nil {
			line += " value=" + strconv.FormatFloat(*res.Value, 'f', -1, 64)
		}
		if res.Error != "" {
			line += ": " + res.Error
		}
		if _, err := fmt.Fprintln(r.buf, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.buf, "%d checks, %d passed, %d failed\n", report.Total, report.Passed, report.Failed)
	return err
}

// Close flushes buffered output and closes the writer.
func (r *TextReporter) Close() error {
	flushErr := r.buf.Flush()
	closeErr := r.writer.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush text output: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output writer: %w", closeErr)
	}
	return nil
}
