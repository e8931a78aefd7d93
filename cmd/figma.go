package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/figma"
)

var figmaCmd = &cobra.Command{
	Use:   "figma <file-url-or-key>",
	Short: "Fetch a Figma file document",
	Long: `Fetch a Figma file through the Figma REST API and print the raw JSON.
Requires FIGMA_API_KEY (or UIBUILDER_FIGMA_TOKEN).

Examples:
  uibuilder figma https://www.figma.com/file/AbC123/Landing
  uibuilder figma AbC123 --images
  uibuilder figma AbC123 --nodes 1:2,1:3`,
	Args: cobra.ExactArgs(1),
	RunE: runFigma,
}

func init() {
	rootCmd.AddCommand(figmaCmd)
	figmaCmd.Flags().Bool("images", false, "Fetch image fill URLs instead of the document")
	figmaCmd.Flags().String("nodes", "", "Comma-separated node ids to fetch instead of the whole document")
	figmaCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runFigma(cmd *cobra.Command, args []string) error {
	if err := appConfig.RequireFigma(); err != nil {
		return err
	}
	key, err := figma.ExtractFileKey(args[0])
	if err != nil {
		return err
	}
	images, _ := cmd.Flags().GetBool("images")
	nodes, _ := cmd.Flags().GetString("nodes")
	pretty, _ := cmd.Flags().GetBool("pretty")
	if images && nodes != "" {
		return errors.New("--images and --nodes are mutually exclusive")
	}

	client := figma.New(appConfig.Figma.Token, figma.WithBaseURL(appConfig.Figma.BaseURL))
	var raw json.RawMessage
	switch {
	case images:
		raw, err = client.GetFileImages(cmd.Context(), key)
	case nodes != "":
		raw, err = client.GetNodes(cmd.Context(), key, splitList(nodes)...)
	default:
		raw, err = client.GetFile(cmd.Context(), key)
	}
	if err != nil {
		return err
	}

	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return errors.Wrap(err, "format figma response")
		}
		raw = buf.Bytes()
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
