package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/generator"
	"github.com/mj1618/uibuilder/internal/logger"
	"github.com/mj1618/uibuilder/internal/model"
	"github.com/mj1618/uibuilder/internal/output"
	"github.com/mj1618/uibuilder/internal/watch"
)

var generateCmd = &cobra.Command{
	Use:   "generate [design-file]",
	Short: "Generate framework code or interchange JSON from a design",
	Long: `Generate code for one framework (or all of them with --all) from a design
document. The document is read from the file argument or stdin and may be an
element array, an analysis result or a ui-design export, as JSON or YAML.

Examples:
  uibuilder generate login.json --framework flutter
  uibuilder generate login.json --framework angular --output-format json
  uibuilder generate login.json --all --out ./generated
  uibuilder generate login.json --select '$[0].children[1]' --framework html
  cat login.yaml | uibuilder generate --framework react --name LoginForm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("framework", "f", "", "Target framework: react, angular, flutter, html (default from config)")
	generateCmd.Flags().String("output-format", "", "Output format: code, json (default from config)")
	generateCmd.Flags().String("name", "", "Component or widget name")
	generateCmd.Flags().StringP("out", "o", "", "Write to this file or directory instead of stdout")
	generateCmd.Flags().Bool("all", false, "Generate for every framework")
	generateCmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the design file changes")
	addDesignFlags(generateCmd)
}

// generateOptions holds the parsed generate flags.
type generateOptions struct {
	input     string
	framework model.Framework
	format    model.OutputFormat
	name      string
	out       string
	all       bool
	design    designFlags
}

func getGenerateOptions(cmd *cobra.Command, args []string) (generateOptions, error) {
	var opts generateOptions
	if len(args) > 0 {
		opts.input = args[0]
	}
	framework, _ := cmd.Flags().GetString("framework")
	format, _ := cmd.Flags().GetString("output-format")
	if appConfig != nil {
		if framework == "" {
			framework = appConfig.Generate.Framework
		}
		if format == "" {
			format = appConfig.Generate.Format
		}
	}
	opts.framework = model.Framework(framework)
	opts.format = model.OutputFormat(format)
	opts.name, _ = cmd.Flags().GetString("name")
	opts.out, _ = cmd.Flags().GetString("out")
	opts.all, _ = cmd.Flags().GetBool("all")

	design, err := getDesignFlags(cmd)
	if err != nil {
		return opts, err
	}
	opts.design = design
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := getGenerateOptions(cmd, args)
	if err != nil {
		return err
	}
	watching, _ := cmd.Flags().GetBool("watch")
	if watching && (opts.input == "" || opts.input == "-") {
		return errors.WithHint(errors.New("--watch needs a design file"), "pass the file path instead of piping stdin")
	}

	gen := generator.New()
	run := func() error {
		elements, err := loadDesign(cmd, opts.input, opts.design)
		if err != nil {
			return err
		}
		return generateTo(cmd, gen, elements, opts)
	}

	if err := run(); err != nil {
		if !watching {
			return err
		}
		printError(cmd.ErrOrStderr(), err)
	}
	if !watching {
		return nil
	}

	log := logger.Named("generate")
	fw, err := watch.New(opts.input, 0, func(path string) error {
		log.Infow("regenerating", "file", path)
		if err := run(); err != nil {
			printError(cmd.ErrOrStderr(), err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (Ctrl+C to stop)\n", opts.input)
	return fw.Run(cmd.Context())
}

// generateTo renders elements and writes the result to --out or stdout.
func generateTo(cmd *cobra.Command, gen *generator.Generator, elements []model.DesignElement, opts generateOptions) error {
	if opts.all {
		results, err := gen.GenerateAll(cmd.Context(), elements, opts.format, opts.name)
		if err != nil {
			return err
		}
		if opts.out == "" || opts.out == "-" {
			return output.WriteAllTo(cmd.OutOrStdout(), results)
		}
		paths, err := output.WriteAll(opts.out, results)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", p)
		}
		return nil
	}

	gc, err := gen.Generate(elements, model.CodeGenerationOptions{
		Framework:     opts.framework,
		OutputFormat:  opts.format,
		ComponentName: opts.name,
	})
	if err != nil {
		return err
	}
	path, err := output.WriteGenerated(cmd.OutOrStdout(), opts.out, gc)
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	}
	return nil
}
