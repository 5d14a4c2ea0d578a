// File: internal/reporting/sarif/sarif.go
package sarif

// Go structs for the subset of SARIF 2.1.0 the check reporter emits.
// Pointers mark optional fields.

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []*Run `json:"runs"`
}

type Run struct {
	Tool       *Tool        `json:"tool"`
	Invocation []Invocation `json:"invocations,omitempty"`
	Results    []*Result    `json:"results"`
}

type Tool struct {
	Driver *ToolComponent `json:"driver"`
}

type ToolComponent struct {
	Name           string                 `json:"name"`
	Version        *string                `json:"version,omitempty"`
	InformationURI *string                `json:"informationUri,omitempty"`
	Rules          []*ReportingDescriptor `json:"rules,omitempty"`
}

type Invocation struct {
	ExecutionSuccessful bool    `json:"executionSuccessful"`
	StartTimeUTC        *string `json:"startTimeUtc,omitempty"`
}

// ReportingDescriptor is a rule. The check reporter emits one per check kind.
type ReportingDescriptor struct {
	ID               string                    `json:"id"`
	Name             *string                   `json:"name,omitempty"`
	ShortDescription *MultiformatMessageString `json:"shortDescription,omitempty"`
}

type Result struct {
	RuleID     string       `json:"ruleId"`
	Kind       Kind         `json:"kind,omitempty"`
	Level      Level        `json:"level,omitempty"`
	Message    *Message     `json:"message"`
	Locations  []*Location  `json:"locations,omitempty"`
	Properties *PropertyBag `json:"properties,omitempty"`
}

type Location struct {
	PhysicalLocation *PhysicalLocation `json:"physicalLocation,omitempty"`
	LogicalLocations []LogicalLocation `json:"logicalLocations,omitempty"`
}

type PhysicalLocation struct {
	ArtifactLocation *ArtifactLocation `json:"artifactLocation,omitempty"`
}

type ArtifactLocation struct {
	URI *string `json:"uri,omitempty"`
}

// LogicalLocation names the check a result belongs to.
type LogicalLocation struct {
	Name *string `json:"name,omitempty"`
	Kind *string `json:"kind,omitempty"`
}

type Message struct {
	Text *string `json:"text,omitempty"`
}

type MultiformatMessageString struct {
	Text *string `json:"text"`
}

type PropertyBag map[string]interface{}

type Level string

const (
	LevelError Level = "error"
	LevelNone  Level = "none"
)

type Kind string

const (
	KindFail Kind = "fail"
	KindPass Kind = "pass"
)
