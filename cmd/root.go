// File: cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vantage/internal/config"
	"github.com/xkilldash9x/vantage/internal/observability"
)

type contextKey string

const configKey contextKey = "config"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	cfgFile string
	url     string
	fixture string
	output  string
	verbose bool
	headed  bool
}

// NewRootCommand builds a fresh command tree. Each invocation gets its own
// viper instance so flags and config never leak between runs.
func NewRootCommand() *cobra.Command {
	return newRootCmd(NewTargetProvider())
}

func newRootCmd(provider targetProvider) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "vantage",
		Short: "Vantage asserts geometric relationships between page elements.",
		Long: `Vantage measures elements of a live page (through Chrome DevTools) or of a
recorded rectangle fixture, and evaluates visibility, relative position,
alignment, distance, reading order and overlap between them.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(v, opts.cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return fmt.Errorf("failed to load or validate config: %w", err)
			}
			if opts.headed {
				cfg.SetBrowserHeadless(false)
			}

			observability.InitializeLogger(cfg.Logger())
			if opts.verbose {
				_ = observability.SetLevel("debug")
			}
			observability.GetLogger().Debug("Starting vantage", zap.String("version", Version))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./vantage.yaml)")
	flags.StringVar(&opts.url, "url", "", "page to load and measure in a headless browser")
	flags.StringVar(&opts.fixture, "fixture", "", "recorded rectangle fixture (JSON) to measure instead of a browser")
	flags.StringVarP(&opts.output, "output", "o", "text", "output format: text or json (check also accepts sarif)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every query at debug level")
	flags.BoolVar(&opts.headed, "headed", false, "show the browser window instead of running headless")

	rootCmd.AddCommand(
		newVisibleCmd(provider, opts),
		newRatioCmd(provider, opts),
		newPositionCmd(provider, opts),
		newAlignedCmd(provider, opts),
		newDistanceCmd(provider, opts),
		newOrderCmd(provider, opts),
		newIntersectCmd(provider, opts),
		newCheckCmd(provider, opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree with ctx. The error is returned so main can
// pick the exit code; anything other than a failed check suite is printed.
func Execute(ctx context.Context) error {
	defer observability.Sync()

	err := NewRootCommand().ExecuteContext(ctx)
	if err == nil || errors.Is(err, ErrChecksFailed) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		observability.GetLogger().Info("Interrupted.")
		return err
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}

// initializeConfig reads the config file and VANTAGE_* environment variables
// into v. A missing ./vantage.yaml is fine; a missing explicit file is not.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to expand config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vantage")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VANTAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, errors.New("configuration not found in command context")
	}
	return cfg, nil
}
