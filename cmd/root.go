package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/config"
	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/logger"
	"github.com/mj1618/uibuilder/internal/output"
	"github.com/mj1618/uibuilder/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "uibuilder",
	Short: "Turn UI designs into React, Angular, Flutter and HTML code",
	Long: `uibuilder converts design element trees into framework code or interchange JSON.
Trees come from design documents on disk or from analyzing a screenshot or mockup
with a vision model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// appConfig is loaded by the root command before any subcommand runs.
var appConfig *config.Config

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Sync()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format for structured results: yaml, json")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./uibuilder.yaml or ~/.config/uibuilder/uibuilder.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		level := cfg.Log.Level
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			level = "debug"
		}
		if err := logger.Initialize(cfg.Log.JSON, level); err != nil {
			return errors.Wrap(err, "initialize logger")
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "", "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return errors.WithHint(errors.Newf("unsupported format: %s", format), "use yaml or json")
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

// printError writes err and any hints attached to it.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "  hint: %s\n", hint)
	}
}

// formatExplicit reports whether --format was given on the command line.
func formatExplicit() bool {
	return rootCmd.PersistentFlags().Changed("format")
}
