// File: internal/checks/runner.go
package checks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/measure"
	"github.com/xkilldash9x/vantage/internal/relations"
)

// Evaluator is the subset of the relations engine the runner drives.
type Evaluator interface {
	IsInViewport(ctx context.Context, el measure.Element, opts relations.ViewportOptions) (bool, error)
	VisibleAreaRatio(ctx context.Context, el measure.Element) (float64, error)
	RelativePosition(ctx context.Context, subject, reference measure.Element, direction schemas.Direction, opts relations.PositionOptions) (bool, error)
	AreAligned(ctx context.Context, a, b measure.Element, opts relations.AlignOptions) (bool, error)
	DefaultAlignOptions(axis schemas.Axis, mode schemas.AlignMode) relations.AlignOptions
	EdgeDistance(ctx context.Context, subject, reference measure.Element, direction schemas.Direction) (relations.Distance, error)
	InOrder(ctx context.Context, els []measure.Element, order schemas.Order, tolerance float64) (bool, error)
	IntersectionAreaRatio(ctx context.Context, a, b measure.Element) (float64, error)
}

var _ Evaluator = (*relations.Engine)(nil)

// Runner evaluates suites one check at a time. Checks never run concurrently
// because scroll-into-view mutates the page the next check measures.
type Runner struct {
	engine Evaluator
	logger *zap.Logger
	now    func() time.Time
}

// NewRunner creates a runner over engine.
func NewRunner(engine Evaluator, logger *zap.Logger) *Runner {
	return &Runner{
		engine: engine,
		logger: logger.Named("checks"),
		now:    time.Now,
	}
}

// Run evaluates every check in suite and returns the report. A check whose
// options are invalid fails on its own; the run stops early only when ctx is
// cancelled, in which case the partial report is returned with the error.
func (r *Runner) Run(ctx context.Context, source string, suite *Suite) (*schemas.Report, error) {
	report := &schemas.Report{
		Source:    source,
		StartedAt: r.now(),
		Results:   make([]schemas.CheckResult, 0, len(suite.Checks)),
	}

	for i := range suite.Checks {
		c := &suite.Checks[i]
		if err := ctx.Err(); err != nil {
			return report, err
		}

		start := r.now()
		passed, value, err := r.evaluate(ctx, c)
		if err != nil && ctx.Err() != nil {
			return report, ctx.Err()
		}

		result := schemas.CheckResult{
			ID:       uuid.NewString(),
			Name:     c.Name,
			Kind:     c.Kind,
			Passed:   passed && err == nil,
			Value:    value,
			Duration: r.now().Sub(start),
		}
		if err != nil {
			result.Error = err.Error()
		}
		r.record(report, result)
	}

	r.logger.Info("Check suite finished.",
		zap.String("source", source),
		zap.Int("total", report.Total),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (r *Runner) record(report *schemas.Report, result schemas.CheckResult) {
	report.Results = append(report.Results, result)
	report.Total++
	if result.Passed {
		report.Passed++
	} else {
		report.Failed++
	}
	fields := []zap.Field{zap.String("check", result.Name), zap.String("kind", string(result.Kind)), zap.Bool("passed", result.Passed)}
	if result.Error != "" {
		fields = append(fields, zap.String("error", result.Error))
	}
	r.logger.Debug("Check evaluated.", fields...)
}

func (r *Runner) evaluate(ctx context.Context, c *Check) (bool, *float64, error) {
	switch c.Kind {
	case schemas.CheckInViewport:
		ok, err := r.engine.IsInViewport(ctx, measure.Element(c.Element), relations.ViewportOptions{
			FullyVisible:   c.FullyVisible,
			Threshold:      c.Threshold,
			Padding:        c.Padding,
			ScrollIntoView: c.ScrollIntoView,
			ScrollTimeout:  c.ScrollTimeout,
		})
		return ok, nil, err

	case schemas.CheckVisibleRatio:
		v, err := r.engine.VisibleAreaRatio(ctx, measure.Element(c.Element))
		if err != nil {
			return false, nil, err
		}
		return within(v, c.Min, c.Max), &v, nil

	case schemas.CheckPosition:
		opts, dir, err := positionOptions(c)
		if err != nil {
			return false, nil, err
		}
		ok, err := r.engine.RelativePosition(ctx, measure.Element(c.Subject), measure.Element(c.Reference), dir, opts)
		return ok, nil, err

	case schemas.CheckAligned:
		axis, err := schemas.ParseAxis(c.Axis)
		if err != nil {
			return false, nil, err
		}
		mode, err := schemas.ParseAlignMode(c.Mode)
		if err != nil {
			return false, nil, err
		}
		opts := r.engine.DefaultAlignOptions(axis, mode)
		if c.Tolerance != nil {
			opts = opts.WithTolerance(*c.Tolerance)
		}
		ok, err := r.engine.AreAligned(ctx, measure.Element(c.Subject), measure.Element(c.Reference), opts)
		return ok, nil, err

	case schemas.CheckDistance:
		dir, err := schemas.ParseDirection(c.Direction)
		if err != nil {
			return false, nil, err
		}
		d, err := r.engine.EdgeDistance(ctx, measure.Element(c.Subject), measure.Element(c.Reference), dir)
		if err != nil {
			return false, nil, err
		}
		if !d.Valid {
			return false, nil, nil
		}
		v := d.Value
		return (c.Min == nil || v >= *c.Min) && (c.Max == nil || v <= *c.Max), &v, nil

	case schemas.CheckOrder:
		order, err := schemas.ParseOrder(c.Order)
		if err != nil {
			return false, nil, err
		}
		els := make([]measure.Element, len(c.Elements))
		for i, e := range c.Elements {
			els[i] = measure.Element(e)
		}
		ok, err := r.engine.InOrder(ctx, els, order, c.tolerance())
		return ok, nil, err

	case schemas.CheckIntersectionRatio:
		v, err := r.engine.IntersectionAreaRatio(ctx, measure.Element(c.Subject), measure.Element(c.Reference))
		if err != nil {
			return false, nil, err
		}
		return within(v, c.Min, c.Max), &v, nil
	}
	return false, nil, fmt.Errorf("unknown check kind %q", c.Kind)
}

func positionOptions(c *Check) (relations.PositionOptions, schemas.Direction, error) {
	opts := relations.PositionOptions{
		Gap:          c.Gap,
		OverlapRatio: c.OverlapRatio,
		Tolerance:    c.tolerance(),
	}
	var err error
	if opts.Logical, err = schemas.ParseLogicalDirection(c.Logical); err != nil {
		return opts, "", err
	}
	if opts.WritingDirection, err = schemas.ParseWritingDirection(c.WritingDirection); err != nil {
		return opts, "", err
	}
	// A logical direction may stand in for the physical one.
	if c.Direction == "" && opts.Logical != schemas.LogicalNone {
		return opts, "", nil
	}
	dir, err := schemas.ParseDirection(c.Direction)
	return opts, dir, err
}

// within applies min/max bounds to a ratio. With no bounds the ratio must be
// strictly positive.
func within(v float64, lo, hi *float64) bool {
	if lo == nil && hi == nil {
		return v > 0
	}
	return (lo == nil || v >= *lo) && (hi == nil || v <= *hi)
}
