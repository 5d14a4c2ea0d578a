// File: internal/reporting/sarif_reporter.go
package reporting

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/observability"
	"github.com/xkilldash9x/vantage/internal/reporting/sarif"
)

// Constants for tool identification in the SARIF report.
const (
	ToolName     = "vantage"
	ToolInfoURI  = "https://github.com/xkilldash9x/vantage"
	SARIFVersion = "2.1.0"
	SARIFSchema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
)

// SARIFReporter collects check results as SARIF and writes the log on Close,
// so CI systems that ingest static-analysis output can annotate layout
// regressions. Failed checks are errors; passed checks are kept as "pass"
// results. It is safe for concurrent use.
type SARIFReporter struct {
	writer io.WriteCloser
	logger *zap.Logger
	log    *sarif.Log
	mu     sync.Mutex
	// rules records which check kinds already have a rule in the driver.
	rules map[schemas.CheckKind]struct{}
	// failed is set once any written report contained a failure.
	failed bool
}

// NewSARIFReporter creates a reporter that writes SARIF output.
func NewSARIFReporter(writer io.WriteCloser, toolVersion string) *SARIFReporter {
	log := &sarif.Log{
		Version: SARIFVersion,
		Schema:  SARIFSchema,
		Runs: []*sarif.Run{
			{
				Tool: &sarif.Tool{
					Driver: &sarif.ToolComponent{
						Name:           ToolName,
						Version:        pString(toolVersion),
						InformationURI: pString(ToolInfoURI),
						Rules:          []*sarif.ReportingDescriptor{},
					},
				},
				Results: []*sarif.Result{},
			},
		},
	}

	return &SARIFReporter{
		writer: writer,
		logger: observability.GetLogger().Named("sarif_reporter"),
		log:    log,
		rules:  make(map[schemas.CheckKind]struct{}),
	}
}

// Write converts every check result in report into a SARIF result.
func (r *SARIFReporter) Write(report *schemas.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	run := r.log.Runs[0]
	if len(run.Invocation) == 0 {
		run.Invocation = []sarif.Invocation{{
			ExecutionSuccessful: true,
			StartTimeUTC:        pString(report.StartedAt.UTC().Format(time.RFC3339)),
		}}
	}

	for _, res := range report.Results {
		ruleID := r.ensureRule(res.Kind)

		result := &sarif.Result{
			RuleID:    ruleID,
			Kind:      sarif.KindPass,
			Level:     sarif.LevelNone,
			Message:   &sarif.Message{Text: pString(resultMessage(res))},
			Locations: createLocations(report.Source, res),
		}
		if !res.Passed {
			result.Kind = sarif.KindFail
			result.Level = sarif.LevelError
			r.failed = true
		}
		if res.Value != nil {
			result.Properties = &sarif.PropertyBag{"value": *res.Value, "checkId": res.ID}
		} else {
			result.Properties = &sarif.PropertyBag{"checkId": res.ID}
		}
		run.Results = append(run.Results, result)
	}

	r.logger.Debug("Wrote check results to SARIF buffer", zap.Int("results", len(report.Results)))
	return nil
}

// Close finalizes the SARIF log and writes it to the output writer.
func (r *SARIFReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	run := r.log.Runs[0]
	r.logger.Debug("Finalizing SARIF report",
		zap.Int("total_results", len(run.Results)),
		zap.Int("total_rules", len(run.Tool.Driver.Rules)),
		zap.Bool("failed", r.failed),
	)

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")

	encodeErr := encoder.Encode(r.log)
	// Always attempt to close the writer, regardless of encoding success.
	closeErr := r.writer.Close()

	if encodeErr != nil {
		return fmt.Errorf("failed to encode SARIF output: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output writer: %w", closeErr)
	}
	return nil
}

// ensureRule registers a rule for kind on first use and returns its ID.
// Must be called while holding the mutex.
func (r *SARIFReporter) ensureRule(kind schemas.CheckKind) string {
	id := ruleID(kind)
	if _, ok := r.rules[kind]; ok {
		return id
	}
	r.rules[kind] = struct{}{}

	driver := r.log.Runs[0].Tool.Driver
	driver.Rules = append(driver.Rules, &sarif.ReportingDescriptor{
		ID:               id,
		Name:             pString(string(kind)),
		ShortDescription: &sarif.MultiformatMessageString{Text: pString(ruleDescriptions[kind])},
	})
	return id
}

var ruleDescriptions = map[schemas.CheckKind]string{
	schemas.CheckInViewport:        "Element is visible inside the viewport.",
	schemas.CheckVisibleRatio:      "Visible fraction of the element is within bounds.",
	schemas.CheckPosition:          "Element lies in a direction relative to another.",
	schemas.CheckAligned:           "Two elements share edges or centers on an axis.",
	schemas.CheckDistance:          "Signed edge distance between two elements is within bounds.",
	schemas.CheckOrder:             "Elements follow a reading order.",
	schemas.CheckIntersectionRatio: "Overlap of one element with another is within bounds.",
}

func ruleID(kind schemas.CheckKind) string {
	return "VANTAGE-" + strings.ToUpper(strings.ReplaceAll(string(kind), "_", "-"))
}

func resultMessage(res schemas.CheckResult) string {
	msg := fmt.Sprintf("%s passed", res.Name)
	if !res.Passed {
		msg = fmt.Sprintf("%s failed", res.Name)
	}
	if res.Error != "" {
		msg += ": " + res.Error
	}
	return msg
}

func createLocations(source string, res schemas.CheckResult) []*sarif.Location {
	loc := &sarif.Location{
		LogicalLocations: []sarif.LogicalLocation{{Name: pString(res.Name), Kind: pString("check")}},
	}
	if source != "" {
		loc.PhysicalLocation = &sarif.PhysicalLocation{
			ArtifactLocation: &sarif.ArtifactLocation{URI: pString(source)},
		}
	}
	return []*sarif.Location{loc}
}

// pString returns a pointer to the given string value. Helper for optional SARIF fields.
func pString(s string) *string {
	return &s
}
