// File: api/schemas/checks.go
package schemas

import "time"

// CheckKind identifies which relationship a declarative check evaluates.
type CheckKind string

const (
	CheckInViewport        CheckKind = "in_viewport"
	CheckVisibleRatio      CheckKind = "visible_ratio"
	CheckPosition          CheckKind = "position"
	CheckAligned           CheckKind = "aligned"
	CheckDistance          CheckKind = "distance"
	CheckOrder             CheckKind = "order"
	CheckIntersectionRatio CheckKind = "intersection_ratio"
)

// CheckResult is the outcome of a single evaluated check.
type CheckResult struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Kind   CheckKind `json:"kind"`
	Passed bool      `json:"passed"`
	// Value carries the measured ratio or distance for numeric checks.
	Value    *float64      `json:"value,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Report aggregates the results of a suite run.
type Report struct {
	Source    string        `json:"source"`
	StartedAt time.Time     `json:"started_at"`
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Results   []CheckResult `json:"results"`
}

// OK reports whether every check in the report passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}
