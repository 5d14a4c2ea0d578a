// File: cmd/query.go
package cmd

import (
	"context"
	"fmt"
	"strconv"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/vantage/internal/observability"
	"github.com/xkilldash9x/vantage/internal/relations"
)

// queryOutput is the JSON shape of a single query result.
type queryOutput struct {
	Query    string      `json:"query"`
	Elements []string    `json:"elements"`
	Result   interface{} `json:"result"`
}

// queryFunc evaluates one relationship. A nil result renders as absent.
type queryFunc func(ctx context.Context, engine *relations.Engine) (interface{}, error)

// runQuery opens the target, builds an engine over it and prints the result.
func runQuery(cmd *cobra.Command, provider targetProvider, opts *globalOptions, name string, elements []string, fn queryFunc) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unsupported output format for %s: %s", name, opts.output)
	}
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger := observability.GetLogger()

	measurer, ctx, cleanup, err := provider.Open(cmd.Context(), cfg, logger, target{url: opts.url, fixture: opts.fixture})
	if err != nil {
		return err
	}
	defer cleanup()

	engine := relations.NewEngine(measurer, cfg.Engine(), logger)
	result, err := fn(ctx, engine)
	if err != nil {
		return err
	}
	return printResult(cmd, opts.output, queryOutput{Query: name, Elements: elements, Result: result})
}

func printResult(cmd *cobra.Command, format string, out queryOutput) error {
	w := cmd.OutOrStdout()
	if format == "json" {
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to serialize result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	var text string
	switch v := out.Result.(type) {
	case nil:
		text = "absent"
	case bool:
		text = strconv.FormatBool(v)
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		text = fmt.Sprint(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
