package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crusoe/pkg/css"
	"crusoe/pkg/dom"
	"crusoe/pkg/layout"
	"crusoe/pkg/style"
)

var (
	red   = css.Color{R: 255, A: 255}
	black = css.Color{A: 255}
)

// blockBox builds a laid-out-looking block box by hand so display-list
// emission can be checked against exact rectangles.
func blockBox(content layout.Rect, pad, border float64, bg, bc *css.Color) *layout.Box {
	return &layout.Box{
		Type: layout.BlockBox,
		Dimensions: layout.Dimensions{
			Content: content,
			Padding: layout.EdgeSizes{Left: pad, Right: pad, Top: pad, Bottom: pad},
			Border:  layout.EdgeSizes{Left: border, Right: border, Top: border, Bottom: border},
		},
		Background:  bg,
		BorderColor: bc,
	}
}

func TestBackgroundAndBorderFills(t *testing.T) {
	box := blockBox(layout.Rect{X: 20, Y: 30, Width: 100, Height: 50}, 10, 5, &red, &black)
	list := BuildDisplayList(box)
	require.Len(t, list, 5)

	// Background covers the border box: content expanded by padding+border.
	assert.Equal(t, SolidColor{Rect: layout.Rect{X: 5, Y: 15, Width: 130, Height: 80}, Color: red}, list[0])

	// Four border strips, each 5px thick, inside the same border box.
	assert.Equal(t, SolidColor{Rect: layout.Rect{X: 5, Y: 15, Width: 5, Height: 80}, Color: black}, list[1])
	assert.Equal(t, SolidColor{Rect: layout.Rect{X: 130, Y: 15, Width: 5, Height: 80}, Color: black}, list[2])
	assert.Equal(t, SolidColor{Rect: layout.Rect{X: 5, Y: 15, Width: 130, Height: 5}, Color: black}, list[3])
	assert.Equal(t, SolidColor{Rect: layout.Rect{X: 5, Y: 90, Width: 130, Height: 5}, Color: black}, list[4])
}

func TestNoColorsNoCommands(t *testing.T) {
	box := blockBox(layout.Rect{Width: 100, Height: 100}, 0, 0, nil, nil)
	assert.Empty(t, BuildDisplayList(box))
}

func TestBorderOnly(t *testing.T) {
	box := blockBox(layout.Rect{Width: 100, Height: 100}, 0, 2, nil, &black)
	assert.Len(t, BuildDisplayList(box), 4)
}

func TestPaintOrderParentBeforeChildren(t *testing.T) {
	child := blockBox(layout.Rect{X: 10, Y: 10, Width: 50, Height: 20}, 0, 0, &black, nil)
	parent := blockBox(layout.Rect{Width: 100, Height: 100}, 0, 0, &red, nil)
	parent.Children = []*layout.Box{child}

	list := BuildDisplayList(parent)
	require.Len(t, list, 2)
	assert.Equal(t, red, list[0].Color)
	assert.Equal(t, black, list[1].Color)
}

func TestInlineBoxesEmitNothing(t *testing.T) {
	inline := &layout.Box{Type: layout.InlineBox, Background: &red}
	parent := blockBox(layout.Rect{Width: 100, Height: 100}, 0, 0, &red, nil)
	parent.Children = []*layout.Box{inline}

	assert.Len(t, BuildDisplayList(parent), 1)
}

// End to end: the whole pipeline from markup and styles to fill commands.
func TestDisplayListFromLayout(t *testing.T) {
	root := dom.NewElement("div", nil,
		dom.NewElement("p", nil),
		dom.NewElement("p", map[string]string{"class": "hidden"}),
	)
	sheet, err := css.Parse(`
		div, p { display: block; }
		div { background: #ffffff; }
		p { height: 50px; background: red; border-width: 5px; border-color: black; }
		.hidden { display: none; }
	`)
	require.NoError(t, err)

	styled := style.BuildTree(root, []*css.Stylesheet{sheet})
	box, err := layout.Layout(styled, layout.Dimensions{Content: layout.Rect{Width: 800, Height: 600}})
	require.NoError(t, err)

	list := BuildDisplayList(box)
	// div background, then p background + 4 borders; the hidden p is gone.
	require.Len(t, list, 6)
	assert.Equal(t, css.Color{R: 255, G: 255, B: 255, A: 255}, list[0].Color)
	assert.Equal(t, red, list[1].Color)
	// p border box: content 790x50 at (5,5) expanded by the 5px border.
	assert.Equal(t, layout.Rect{X: 0, Y: 0, Width: 800, Height: 60}, list[1].Rect)
	for _, item := range list[2:] {
		assert.Equal(t, black, item.Color)
	}
}
