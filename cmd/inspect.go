package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/model"
	"github.com/mj1618/uibuilder/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [design-file]",
	Short: "List the elements of a design",
	Long: `Print every element of a design as a flat list with its tree path, bounds
and args. With --tailwind, print the Tailwind classes the Angular generator
assigns instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("tailwind", false, "Show Tailwind classes per element")
	inspectCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	addDesignFlags(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	source := ""
	if len(args) > 0 {
		source = args[0]
	}
	f, err := getDesignFlags(cmd)
	if err != nil {
		return err
	}
	elements, err := loadDesign(cmd, source, f)
	if err != nil {
		return err
	}

	if tailwind, _ := cmd.Flags().GetBool("tailwind"); tailwind {
		return output.Fprint(cmd.OutOrStdout(), output.NewClassesResult(source, elements))
	}
	return output.Fprint(cmd.OutOrStdout(), inspectResult(source, elements))
}

func inspectResult(source string, elements []model.DesignElement) output.InspectResult {
	flat := model.FlattenElements(elements)
	if flat == nil {
		flat = []model.FlatElement{}
	}
	return output.InspectResult{
		Source:   source,
		Count:    len(flat),
		Depth:    model.Depth(elements),
		Unknown:  model.UnknownTypes(elements),
		Elements: flat,
	}
}
