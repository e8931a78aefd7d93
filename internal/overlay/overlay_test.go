package overlay

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/uibuilder/internal/model"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestDrawOutlinesElements(t *testing.T) {
	src := whiteImage(200, 100)
	elements := []model.DesignElement{{
		ID: "card", Type: model.TypeCard, X: 10, Y: 10, Width: 100, Height: 60,
		Children: []model.DesignElement{
			{ID: "btn", Type: model.TypeButton, X: 20, Y: 30, Width: 50, Height: 20},
		},
	}}

	out := Draw(src, elements, Options{Labels: LabelNone})
	assert.Equal(t, BoxColor(model.TypeCard), out.RGBAAt(10, 10))
	assert.Equal(t, BoxColor(model.TypeCard), out.RGBAAt(109, 69))
	assert.Equal(t, BoxColor(model.TypeButton), out.RGBAAt(20, 30))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, out.RGBAAt(150, 90), "outside every box")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, src.RGBAAt(10, 10), "source is not modified")
}

func TestDrawScalesGeometry(t *testing.T) {
	src := whiteImage(200, 200)
	elements := []model.DesignElement{{ID: "a", Type: model.TypeInput, X: 10, Y: 10, Width: 20, Height: 20}}

	out := Draw(src, elements, Options{Labels: LabelNone, DesignWidth: 100, DesignHeight: 100})
	assert.Equal(t, BoxColor(model.TypeInput), out.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, out.RGBAAt(10, 10))
}

func TestDrawSkipsUnsizedAndClamps(t *testing.T) {
	src := whiteImage(50, 50)
	elements := []model.DesignElement{
		{ID: "zero", Type: model.TypeText, X: 5, Y: 5},
		{ID: "huge", Type: model.TypeImage, X: -10, Y: -10, Width: 500, Height: 500},
	}
	out := Draw(src, elements, Options{Labels: LabelNone})
	assert.Equal(t, BoxColor(model.TypeImage), out.RGBAAt(0, 0))
}

func TestLabelsChangePixels(t *testing.T) {
	elements := []model.DesignElement{{ID: "btn", Type: model.TypeButton, X: 0, Y: 0, Width: 120, Height: 40}}
	plain := Draw(whiteImage(150, 50), elements, Options{Labels: LabelNone})
	labelled := Draw(whiteImage(150, 50), elements, Options{Labels: LabelIDs})
	assert.NotEqual(t, plain.Pix, labelled.Pix)
}

func TestLabelFor(t *testing.T) {
	el := &model.DesignElement{ID: "x1", Type: model.TypeText, Name: "Title"}
	assert.Equal(t, "text", labelFor(el, LabelTypes))
	assert.Equal(t, "[x1]", labelFor(el, LabelIDs))
	assert.Equal(t, "Title", labelFor(el, LabelNames))
	assert.Equal(t, "", labelFor(el, LabelNone))
	el.Name = ""
	assert.Equal(t, "text", labelFor(el, LabelNames))
}

func TestParseLabelMode(t *testing.T) {
	for in, want := range map[string]LabelMode{"": LabelTypes, "type": LabelTypes, "id": LabelIDs, "name": LabelNames, "none": LabelNone} {
		got, err := ParseLabelMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLabelMode("coords")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, whiteImage(4, 4)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}
