// File: internal/reporting/reporter.go
package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/xkilldash9x/vantage/api/schemas"
)

// Reporter writes check-suite reports to an output.
type Reporter interface {
	// Write renders a single report.
	Write(report *schemas.Report) error
	// Close finalizes the output and releases any file handle.
	Close() error
}

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// Formats lists the output formats New accepts.
var Formats = []string{"text", "json", "sarif"}

// New creates a reporter for format writing to outputPath, or to stdout when
// outputPath is empty or "stdout".
func New(format, outputPath, toolVersion string) (Reporter, error) {
	return newReporter(format, outputPath, toolVersion, os.Stdout)
}

// NewWriter creates a reporter for format over an existing writer. Close does
// not close w.
func NewWriter(format string, w io.Writer, toolVersion string) (Reporter, error) {
	return newReporter(format, "", toolVersion, w)
}

func newReporter(format, outputPath, toolVersion string, stdout io.Writer) (Reporter, error) {
	if !supported(format) {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	var writer io.WriteCloser
	if outputPath == "" || outputPath == "stdout" {
		writer = &nopWriteCloser{stdout}
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		writer = f
	}

	switch format {
	case "json":
		return NewJSONReporter(writer), nil
	case "sarif":
		return NewSARIFReporter(writer, toolVersion), nil
	default:
		return NewTextReporter(writer), nil
	}
}

func supported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
