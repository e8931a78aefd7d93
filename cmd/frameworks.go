package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/output"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List supported frameworks",
	Long:  "List the generation targets with their code language, default file name and JSON document shape.",
	Args:  cobra.NoArgs,
	RunE:  runFrameworks,
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}

func runFrameworks(cmd *cobra.Command, args []string) error {
	rows := output.Frameworks()
	if formatExplicit() {
		return output.Fprint(cmd.OutOrStdout(), rows)
	}

	data := pterm.TableData{{"FRAMEWORK", "LANGUAGE", "FILE", "JSON SHAPE"}}
	for _, r := range rows {
		data = append(data, []string{string(r.Framework), r.Language, r.File, r.JSONShape})
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
}
