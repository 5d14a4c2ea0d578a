// File: cmd/check.go
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/checks"
	"github.com/xkilldash9x/vantage/internal/config"
	"github.com/xkilldash9x/vantage/internal/observability"
	"github.com/xkilldash9x/vantage/internal/relations"
	"github.com/xkilldash9x/vantage/internal/reporting"
)

// ErrChecksFailed is returned by the check command when at least one check
// failed. The report has already been written at that point.
var ErrChecksFailed = errors.New("one or more checks failed")

func newCheckCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	var reportFile string

	cmd := &cobra.Command{
		Use:   "check SUITE",
		Short: "Evaluate a suite of layout checks and report the results",
		Long: `Loads a suite file (YAML, JSON or TOML) with a "checks" list, evaluates each
check in order against the target and writes a report. Exits non-zero when
any check fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return runCheck(cmd, observability.GetLogger(), cfg, provider, opts, args[0], reportFile)
		},
	}
	cmd.Flags().StringVar(&reportFile, "report-file", "", "write the report to this file instead of stdout")
	return cmd
}

// runCheck contains the testable core of the check command.
func runCheck(cmd *cobra.Command, logger *zap.Logger, cfg config.Interface, provider targetProvider, opts *globalOptions, suitePath, reportFile string) error {
	suite, err := checks.Load(suitePath)
	if err != nil {
		return err
	}

	measurer, ctx, cleanup, err := provider.Open(cmd.Context(), cfg, logger, target{url: opts.url, fixture: opts.fixture})
	if err != nil {
		return err
	}
	defer cleanup()

	source := opts.url
	if source == "" {
		source = opts.fixture
	}
	runner := checks.NewRunner(relations.NewEngine(measurer, cfg.Engine(), logger), logger)
	report, runErr := runner.Run(ctx, source, suite)
	if runErr != nil && errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if err := writeReport(cmd, logger, report, opts.output, reportFile); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if !report.OK() {
		return ErrChecksFailed
	}
	return nil
}

func writeReport(cmd *cobra.Command, logger *zap.Logger, report *schemas.Report, format, reportFile string) error {
	var (
		reporter reporting.Reporter
		err      error
	)
	if reportFile != "" {
		reporter, err = reporting.New(format, reportFile, Version)
	} else {
		reporter, err = reporting.NewWriter(format, cmd.OutOrStdout(), Version)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize reporter: %w", err)
	}

	writeErr := reporter.Write(report)
	if closeErr := reporter.Close(); closeErr != nil && writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write report: %w", writeErr)
	}
	if reportFile != "" {
		logger.Info("Report written.", zap.String("path", reportFile), zap.Int("failed", report.Failed))
	}
	return nil
}
