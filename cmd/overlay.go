package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/overlay"
)

var overlayCmd = &cobra.Command{
	Use:   "overlay <image> <design-file>",
	Short: "Draw element bounding boxes on the design image",
	Long: `Outline every element of a design on top of the image it was extracted from,
to check analysis geometry by eye. Boxes are colored by element type.

Examples:
  uibuilder overlay mockup.png design.json -o check.png
  uibuilder overlay mockup.png design.json --labels id --design-width 375`,
	Args: cobra.ExactArgs(2),
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(overlayCmd)
	overlayCmd.Flags().StringP("out", "o", "overlay.png", "Output PNG path (\"-\" for stdout)")
	overlayCmd.Flags().String("labels", "type", "Label each box with: type, id, name, none")
	overlayCmd.Flags().Float64("design-width", 0, "Width the element geometry refers to (default: image width)")
	overlayCmd.Flags().Float64("design-height", 0, "Height the element geometry refers to (default: image height)")
}

func runOverlay(cmd *cobra.Command, args []string) error {
	labelsStr, _ := cmd.Flags().GetString("labels")
	labels, err := overlay.ParseLabelMode(labelsStr)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	designW, _ := cmd.Flags().GetFloat64("design-width")
	designH, _ := cmd.Flags().GetFloat64("design-height")

	img, err := imageinput.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	decoded, err := img.Decode()
	if err != nil {
		return err
	}
	elements, err := loadDesign(cmd, args[1], designFlags{})
	if err != nil {
		return err
	}

	drawn := overlay.Draw(decoded, elements, overlay.Options{
		Labels:       labels,
		DesignWidth:  designW,
		DesignHeight: designH,
	})

	if out == "-" {
		w := bufio.NewWriter(cmd.OutOrStdout())
		if err := overlay.Encode(w, drawn); err != nil {
			return err
		}
		return w.Flush()
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "create %s", out)
	}
	if err := overlay.Encode(f, drawn); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", out)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
	return nil
}
