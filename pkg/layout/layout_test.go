package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crusoe/pkg/css"
	"crusoe/pkg/dom"
	"crusoe/pkg/style"
)

func styledTree(t *testing.T, root *dom.Node, cssSrc string) *style.Node {
	t.Helper()
	sheet, err := css.Parse(cssSrc)
	require.NoError(t, err)
	return style.BuildTree(root, []*css.Stylesheet{sheet})
}

func viewport(width float64) Dimensions {
	return Dimensions{Content: Rect{Width: width, Height: 600}}
}

func mustLayout(t *testing.T, root *dom.Node, cssSrc string, width float64) *Box {
	t.Helper()
	box, err := Layout(styledTree(t, root, cssSrc), viewport(width))
	require.NoError(t, err)
	return box
}

// horizontalSum is the left-to-right box equation checked by the spec:
// margins + borders + padding + content width.
func horizontalSum(d Dimensions) float64 {
	return d.Margin.Left + d.Border.Left + d.Padding.Left +
		d.Content.Width +
		d.Padding.Right + d.Border.Right + d.Margin.Right
}

func TestAutoWidthFillsContainingBlock(t *testing.T) {
	box := mustLayout(t, dom.NewElement("div", nil), `div { display: block; }`, 800)
	assert.Equal(t, 800.0, box.Dimensions.Content.Width)
	assert.Equal(t, 0.0, box.Dimensions.Content.X)
	assert.Equal(t, 0.0, box.Dimensions.Content.Y)
}

func TestAutoWidthAbsorbsEdges(t *testing.T) {
	root := dom.NewElement("div", nil, dom.NewElement("p", nil))
	box := mustLayout(t, root, `
		div, p { display: block; }
		p { margin: 50px; padding: 10px; border-width: 5px; }
	`, 800)

	child := box.Children[0].Dimensions
	assert.Equal(t, 800.0-2*(50+10+5), child.Content.Width)
	assert.Equal(t, 65.0, child.Content.X)
	assert.Equal(t, 800.0, horizontalSum(child))
}

func TestAutoMarginsCenter(t *testing.T) {
	root := dom.NewElement("div", nil, dom.NewElement("p", nil))
	box := mustLayout(t, root, `
		div, p { display: block; }
		p { width: 600px; margin: auto; }
	`, 800)

	child := box.Children[0].Dimensions
	assert.Equal(t, 600.0, child.Content.Width)
	assert.Equal(t, 100.0, child.Margin.Left)
	assert.Equal(t, 100.0, child.Margin.Right)
	assert.Equal(t, 100.0, child.Content.X)
}

func TestSingleAutoMarginTakesUnderflow(t *testing.T) {
	root := dom.NewElement("div", nil, dom.NewElement("p", nil))

	box := mustLayout(t, root, `
		div, p { display: block; }
		p { width: 600px; margin-left: auto; margin-right: 50px; }
	`, 800)
	child := box.Children[0].Dimensions
	assert.Equal(t, 150.0, child.Margin.Left)
	assert.Equal(t, 50.0, child.Margin.Right)

	box = mustLayout(t, root, `
		div, p { display: block; }
		p { width: 600px; margin-left: 50px; }
	`, 800)
	child = box.Children[0].Dimensions
	assert.Equal(t, 50.0, child.Margin.Left)
	assert.Equal(t, 150.0, child.Margin.Right)
}

func TestOverconstrainedMarginRightAbsorbs(t *testing.T) {
	root := dom.NewElement("div", nil, dom.NewElement("p", nil))
	box := mustLayout(t, root, `
		div, p { display: block; }
		p { width: 600px; margin-left: 50px; margin-right: 50px; }
	`, 800)

	child := box.Children[0].Dimensions
	assert.Equal(t, 50.0, child.Margin.Left)
	// underflow = 800 - 700 goes entirely to margin-right.
	assert.Equal(t, 150.0, child.Margin.Right)
	assert.Equal(t, 800.0, horizontalSum(child))
}

func TestAutoWidthNegativeUnderflow(t *testing.T) {
	root := dom.NewElement("div", nil, dom.NewElement("p", nil))
	box := mustLayout(t, root, `
		div, p { display: block; }
		p { padding-left: 500px; padding-right: 500px; }
	`, 800)

	child := box.Children[0].Dimensions
	// Width cannot go negative; margin-right soaks up the overflow.
	assert.Equal(t, 0.0, child.Content.Width)
	assert.Equal(t, -200.0, child.Margin.Right)
}

func TestExplicitWidthWiderThanContainer(t *testing.T) {
	root := dom.NewElement("div", nil, dom.NewElement("p", nil))
	box := mustLayout(t, root, `
		div, p { display: block; }
		p { width: 1000px; margin-left: auto; margin-right: auto; }
	`, 800)

	child := box.Children[0].Dimensions
	// Auto margins are zeroed first, then margin-right absorbs the
	// negative underflow.
	assert.Equal(t, 1000.0, child.Content.Width)
	assert.Equal(t, 0.0, child.Margin.Left)
	assert.Equal(t, -200.0, child.Margin.Right)
}

func TestVerticalStacking(t *testing.T) {
	root := dom.NewElement("div", nil,
		dom.NewElement("p", nil),
		dom.NewElement("p", nil),
		dom.NewElement("p", nil),
	)
	box := mustLayout(t, root, `
		div, p { display: block; }
		p { height: 50px; margin-bottom: 10px; }
	`, 800)

	require.Len(t, box.Children, 3)
	assert.Equal(t, 0.0, box.Children[0].Dimensions.Content.Y)
	assert.Equal(t, 60.0, box.Children[1].Dimensions.Content.Y)
	assert.Equal(t, 120.0, box.Children[2].Dimensions.Content.Y)
	// The parent shrinks to the sum of its children's margin boxes.
	assert.Equal(t, 180.0, box.Dimensions.Content.Height)
}

func TestExplicitHeightOverridesChildren(t *testing.T) {
	root := dom.NewElement("div", nil, dom.NewElement("p", nil))
	box := mustLayout(t, root, `
		div, p { display: block; }
		div { height: 300px; }
		p { height: 50px; }
	`, 800)
	assert.Equal(t, 300.0, box.Dimensions.Content.Height)
}

func TestNestedContainingBlock(t *testing.T) {
	inner := dom.NewElement("span", map[string]string{"class": "inner"})
	root := dom.NewElement("div", nil,
		dom.NewElement("p", nil, inner),
	)
	box := mustLayout(t, root, `
		div, p, .inner { display: block; }
		p { margin-left: 100px; padding-left: 20px; width: 400px; }
	`, 800)

	p := box.Children[0]
	innerBox := p.Children[0]
	// The child resolves against p's content box, not the viewport.
	assert.Equal(t, 400.0, innerBox.Dimensions.Content.Width)
	assert.Equal(t, 120.0, innerBox.Dimensions.Content.X)
	assert.Equal(t, 400.0, horizontalSum(innerBox.Dimensions))
}

func TestLayoutIsIdempotent(t *testing.T) {
	root := dom.NewElement("div", nil,
		dom.NewElement("p", nil, dom.NewText("x")),
		dom.NewElement("p", nil),
	)
	src := `
		div, p { display: block; }
		p { margin: 10px; padding: 5px; height: 40px; }
	`
	styled := styledTree(t, root, src)

	first, err := Layout(styled, viewport(800))
	require.NoError(t, err)
	second, err := Layout(styled, viewport(800))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRootDisplayNoneFails(t *testing.T) {
	styled := styledTree(t, dom.NewElement("div", nil), `div { display: none; }`)
	_, err := Layout(styled, viewport(800))
	assert.ErrorIs(t, err, ErrRootDisplayNone)
}

func TestDisplayNoneRemovesSubtree(t *testing.T) {
	hidden := dom.NewElement("p", map[string]string{"class": "hidden"},
		dom.NewElement("span", nil, dom.NewText("invisible")),
	)
	root := dom.NewElement("div", nil, hidden, dom.NewElement("p", nil))
	box := mustLayout(t, root, `
		div, p { display: block; }
		.hidden { display: none; }
	`, 800)

	require.Len(t, box.Children, 1)
	assert.Same(t, root.Children[1], box.Children[0].Style.DOM)
}

func TestUnsupportedWidthValueFails(t *testing.T) {
	styled := styledTree(t, dom.NewElement("div", nil),
		`div { display: block; width: banana; }`)
	_, err := Layout(styled, viewport(800))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestPaintColorsResolved(t *testing.T) {
	box := mustLayout(t, dom.NewElement("div", nil), `
		div { display: block; background: red; border-color: #000000; color: #00ff00; }
	`, 800)

	require.NotNil(t, box.Background)
	assert.Equal(t, css.Color{R: 255, G: 0, B: 0, A: 255}, *box.Background)
	require.NotNil(t, box.BorderColor)
	assert.Equal(t, css.Color{R: 0, G: 0, B: 0, A: 255}, *box.BorderColor)
	require.NotNil(t, box.Color)
	assert.Equal(t, css.Color{R: 0, G: 255, B: 0, A: 255}, *box.Color)

	plain := mustLayout(t, dom.NewElement("div", nil), `div { display: block; }`, 800)
	assert.Nil(t, plain.Background)
	assert.Nil(t, plain.BorderColor)
}

func TestRectHelpers(t *testing.T) {
	d := Dimensions{
		Content: Rect{X: 20, Y: 30, Width: 100, Height: 50},
		Padding: EdgeSizes{Left: 10, Right: 10, Top: 10, Bottom: 10},
		Border:  EdgeSizes{Left: 5, Right: 5, Top: 5, Bottom: 5},
		Margin:  EdgeSizes{Left: 1, Right: 2, Top: 3, Bottom: 4},
	}
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 120, Height: 70}, d.PaddingBox())
	assert.Equal(t, Rect{X: 5, Y: 15, Width: 130, Height: 80}, d.BorderBox())
	assert.Equal(t, Rect{X: 4, Y: 12, Width: 133, Height: 87}, d.MarginBox())
}
