// File: cmd/target.go
package cmd

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/internal/browser"
	"github.com/xkilldash9x/vantage/internal/config"
	"github.com/xkilldash9x/vantage/internal/measure"
)

// target names what a command measures: a live URL or a recorded fixture.
type target struct {
	url     string
	fixture string
}

// targetProvider opens a measurer for a target. It returns the context that
// measurements must run under and a cleanup function. Tests inject a fake.
type targetProvider interface {
	Open(ctx context.Context, cfg config.Interface, logger *zap.Logger, t target) (measure.Measurer, context.Context, func(), error)
}

type defaultTargetProvider struct{}

// NewTargetProvider returns the provider that loads fixtures from disk and
// launches a browser for URLs.
func NewTargetProvider() targetProvider {
	return &defaultTargetProvider{}
}

func (p *defaultTargetProvider) Open(ctx context.Context, cfg config.Interface, logger *zap.Logger, t target) (measure.Measurer, context.Context, func(), error) {
	switch {
	case t.url != "" && t.fixture != "":
		return nil, nil, nil, errors.New("--url and --fixture are mutually exclusive")
	case t.fixture != "":
		f, err := measure.LoadFixture(t.fixture)
		if err != nil {
			return nil, nil, nil, err
		}
		return f, ctx, func() {}, nil
	case t.url != "":
		page, err := browser.Open(ctx, cfg.Browser(), logger, t.url)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open %s: %w", t.url, err)
		}
		return page.Measurer(), page.Context(), page.Close, nil
	}
	return nil, nil, nil, errors.New("one of --url or --fixture is required")
}
