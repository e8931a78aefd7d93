package cmd

import (
	"bytes"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/analysis"
	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/generator"
	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/logger"
	"github.com/mj1618/uibuilder/internal/model"
	"github.com/mj1618/uibuilder/internal/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Extract a design element tree from a UI image",
	Long: `Send a screenshot or mockup to the Gemini vision model and print the
element tree it finds. The image may be a file path, an http(s) URL or a data URL.

Requires GEMINI_API_KEY (or UIBUILDER_GEMINI_API_KEY). With --fallback a sample
design is returned when analysis is unavailable.

Examples:
  uibuilder analyze mockup.png
  uibuilder analyze mockup.png --save design.json
  uibuilder analyze https://example.com/shot.png --generate flutter -o lib/`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringP("description", "d", "", "Context about the design to guide the analysis")
	analyzeCmd.Flags().String("generate", "", "Generate code for this framework instead of printing the tree")
	analyzeCmd.Flags().String("output-format", "", "With --generate: code or json")
	analyzeCmd.Flags().String("name", "", "With --generate: component name (default from the image file name)")
	analyzeCmd.Flags().StringP("out", "o", "", "With --generate: output file or directory")
	analyzeCmd.Flags().String("save", "", "Also save the analysis result as JSON to this path")
	analyzeCmd.Flags().Bool("fallback", false, "Return a sample design when analysis fails")
	analyzeCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ref := args[0]
	description, _ := cmd.Flags().GetString("description")
	framework, _ := cmd.Flags().GetString("generate")
	savePath, _ := cmd.Flags().GetString("save")

	cfg := *appConfig
	if cmd.Flags().Changed("fallback") {
		cfg.Analysis.Fallback, _ = cmd.Flags().GetBool("fallback")
	}
	analyzer, err := analysis.New(ctx, &cfg)
	if err != nil {
		return err
	}

	img, err := imageinput.Load(ctx, ref)
	if err != nil {
		return err
	}

	var spinner *pterm.SpinnerPrinter
	if !logger.JSONOutput {
		spinner, _ = pterm.DefaultSpinner.WithWriter(cmd.ErrOrStderr()).Start("Analyzing " + displaySource(ref))
	}
	res, err := analyzer.Analyze(ctx, img, description)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return err
	}

	if savePath != "" {
		var buf bytes.Buffer
		if err := output.WriteJSON(&buf, res, true); err != nil {
			return err
		}
		if err := os.WriteFile(savePath, buf.Bytes(), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", savePath)
		}
	}

	if framework == "" {
		return output.Fprint(cmd.OutOrStdout(), res)
	}

	format, _ := cmd.Flags().GetString("output-format")
	name, _ := cmd.Flags().GetString("name")
	if name == "" && !isRemoteRef(ref) {
		name = model.ComponentName(ref)
	}
	out, _ := cmd.Flags().GetString("out")
	return generateTo(cmd, generator.New(), res.Elements, generateOptions{
		framework: model.Framework(framework),
		format:    model.OutputFormat(format),
		name:      name,
		out:       out,
	})
}

func isRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// displaySource shortens data URLs for progress messages.
func displaySource(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		return "data URL"
	}
	return ref
}
