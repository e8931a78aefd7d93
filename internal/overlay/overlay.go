// Package overlay draws design element bounding boxes onto the source
// image so analysis results can be checked by eye.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/model"
)

// LabelMode controls what text is drawn on each element.
type LabelMode int

const (
	// LabelTypes draws the element type, e.g. "button".
	LabelTypes LabelMode = iota
	// LabelIDs draws "[id]".
	LabelIDs
	// LabelNames draws the element name, falling back to the type.
	LabelNames
	// LabelNone draws boxes only.
	LabelNone
)

// ParseLabelMode maps a flag value to a LabelMode.
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "", "type":
		return LabelTypes, nil
	case "id":
		return LabelIDs, nil
	case "name":
		return LabelNames, nil
	case "none":
		return LabelNone, nil
	}
	return 0, errors.WithHint(errors.Newf("unknown label mode %q", s), "use type, id, name or none")
}

// Options controls drawing.
type Options struct {
	Labels LabelMode
	// DesignWidth and DesignHeight are the dimensions the element geometry
	// was measured against. Zero means the image's own size.
	DesignWidth  float64
	DesignHeight float64
}

// typeColors gives each element type a distinct box color.
var typeColors = map[model.ElementType]color.RGBA{
	model.TypeButton:    {R: 239, G: 68, B: 68, A: 255},
	model.TypeInput:     {R: 59, G: 130, B: 246, A: 255},
	model.TypeText:      {R: 34, G: 197, B: 94, A: 255},
	model.TypeImage:     {R: 168, G: 85, B: 247, A: 255},
	model.TypeContainer: {R: 107, G: 114, B: 128, A: 255},
	model.TypeCard:      {R: 249, G: 115, B: 22, A: 255},
	model.TypeList:      {R: 20, G: 184, B: 166, A: 255},
	model.TypeIcon:      {R: 236, G: 72, B: 153, A: 255},
}

var (
	defaultBoxColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor    = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// BoxColor returns the outline color used for an element type.
func BoxColor(t model.ElementType) color.RGBA {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return defaultBoxColor
}

// Draw returns a copy of img with every element in the tree outlined.
// Elements without a size are skipped. Parents are drawn before children
// so nested boxes stay visible.
func Draw(img image.Image, elements []model.DesignElement, opts Options) *image.RGBA {
	rgba := ToRGBA(img)
	b := img.Bounds()

	scaleX, scaleY := 1.0, 1.0
	if opts.DesignWidth > 0 {
		scaleX = float64(b.Dx()) / opts.DesignWidth
	}
	if opts.DesignHeight > 0 {
		scaleY = float64(b.Dy()) / opts.DesignHeight
	}

	model.Walk(elements, func(el *model.DesignElement, _ int) bool {
		if el.Width <= 0 || el.Height <= 0 {
			return true
		}
		x := b.Min.X + int(el.X*scaleX)
		y := b.Min.Y + int(el.Y*scaleY)
		w := int(el.Width * scaleX)
		h := int(el.Height * scaleY)

		c := BoxColor(el.Type)
		drawRectangle(rgba, x, y, x+w, y+h, c)
		drawRectangle(rgba, x+1, y+1, x+w-1, y+h-1, c)

		if label := labelFor(el, opts.Labels); label != "" {
			drawTextWithOutline(rgba, label, x+3, y+13, textColor, outlineColor)
		}
		return true
	})
	return rgba
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// ToRGBA converts any image to RGBA.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func labelFor(el *model.DesignElement, mode LabelMode) string {
	switch mode {
	case LabelIDs:
		return fmt.Sprintf("[%s]", el.ID)
	case LabelNames:
		if el.Name != "" {
			return el.Name
		}
		return string(el.Type)
	case LabelNone:
		return ""
	default:
		return string(el.Type)
	}
}

// drawRectangle draws a one-pixel rectangle outline clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	x1, y1 = max(x1, bounds.Min.X), max(y1, bounds.Min.Y)
	x2, y2 = min(x2, bounds.Max.X), min(y2, bounds.Max.Y)
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline draws text with its baseline at (x, y) and a one
// pixel outline so labels read on any background.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, fg, outline color.Color) {
	d := &font.Drawer{Dst: img, Face: basicfont.Face7x13}

	d.Src = image.NewUniform(outline)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d.Dot = fixed.P(x+dx, y+dy)
			d.DrawString(text)
		}
	}

	d.Src = image.NewUniform(fg)
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
