package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/model"
	"github.com/mj1618/uibuilder/internal/output"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-design> <new-design>",
	Short: "Show element-level changes between two designs",
	Long: `Compare two design documents element by element, matching on id. Reports
added and removed elements and, for elements in both, the fields that changed.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runDiff(cmd *cobra.Command, args []string) error {
	prev, err := loadDesign(cmd, args[0], designFlags{})
	if err != nil {
		return err
	}
	curr, err := loadDesign(cmd, args[1], designFlags{})
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), output.DiffResult{
		Old:     args[0],
		New:     args[1],
		Changes: model.DiffElements(model.FlattenElements(prev), model.FlattenElements(curr)),
	})
}
