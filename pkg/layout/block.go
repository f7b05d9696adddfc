package layout

import (
	"fmt"

	"crusoe/pkg/css"
	"crusoe/pkg/style"
)

// Layout builds the box tree for a style tree and lays it out against the
// viewport. The viewport's content width seeds the root containing block;
// its content height is zeroed for the pass so the root grows to fit its
// children (the caller's copy is untouched, viewport is passed by value).
//
// Layout is a pure function of its inputs: the same style tree and
// viewport always produce identical geometry.
func Layout(root *style.Node, viewport Dimensions) (*Box, error) {
	box, err := BuildTree(root)
	if err != nil {
		return nil, err
	}
	viewport.Content.Height = 0
	if err := box.layout(&viewport); err != nil {
		return nil, err
	}
	return box, nil
}

// layout computes geometry for a box and its descendants. Only block
// boxes get geometry in this engine; inline and anonymous boxes are left
// untouched (inline text measurement is out of scope), so they contribute
// no height to their parent.
func (b *Box) layout(containing *Dimensions) error {
	if b.Type == BlockBox {
		return b.layoutBlock(containing)
	}
	return nil
}

// layoutBlock lays out one block box in strict order: width first (child
// widths depend on the parent's), then position, then children, then
// height (the parent's height depends on the children's).
func (b *Box) layoutBlock(containing *Dimensions) error {
	if err := b.calculateWidth(containing); err != nil {
		return err
	}
	if err := b.calculatePosition(containing); err != nil {
		return err
	}
	if err := b.layoutChildren(); err != nil {
		return err
	}
	if err := b.calculateHeight(); err != nil {
		return err
	}
	b.resolvePaint()
	return nil
}

// calculateWidth resolves the seven horizontal quantities so that they
// exactly fill the containing block's content width (CSS 2.1 §10.3.3).
// All results are absolute px lengths.
func (b *Box) calculateWidth(containing *Dimensions) error {
	sn := b.Style
	zero := css.ZeroLength

	width := css.Auto
	if v, ok := sn.Value("width"); ok {
		width = v
	}
	marginLeft := sn.Lookup("margin-left", "margin", zero)
	marginRight := sn.Lookup("margin-right", "margin", zero)
	borderLeft := sn.Lookup("border-left-width", "border-width", zero)
	borderRight := sn.Lookup("border-right-width", "border-width", zero)
	paddingLeft := sn.Lookup("padding-left", "padding", zero)
	paddingRight := sn.Lookup("padding-right", "padding", zero)

	if err := requireLengthOrAuto("width", width); err != nil {
		return err
	}
	if err := requireLengthOrAuto("margin-left", marginLeft); err != nil {
		return err
	}
	if err := requireLengthOrAuto("margin-right", marginRight); err != nil {
		return err
	}
	for _, q := range []struct {
		name  string
		value css.Value
	}{
		{"border-left-width", borderLeft},
		{"border-right-width", borderRight},
		{"padding-left", paddingLeft},
		{"padding-right", paddingRight},
	} {
		if err := requireLength(q.name, q.value); err != nil {
			return err
		}
	}

	// `auto` terms count as 0 in the sum.
	total := width.ToPx() + marginLeft.ToPx() + marginRight.ToPx() +
		borderLeft.ToPx() + borderRight.ToPx() +
		paddingLeft.ToPx() + paddingRight.ToPx()

	// With an explicit width that already overflows the container, auto
	// margins get no share of the (negative) underflow.
	if !width.IsAuto() && total > containing.Content.Width {
		if marginLeft.IsAuto() {
			marginLeft = zero
		}
		if marginRight.IsAuto() {
			marginRight = zero
		}
	}

	underflow := containing.Content.Width - total

	wAuto, mlAuto, mrAuto := width.IsAuto(), marginLeft.IsAuto(), marginRight.IsAuto()
	switch {
	case !wAuto && !mlAuto && !mrAuto:
		// Overconstrained: margin-right absorbs the difference.
		marginRight = css.Length(marginRight.ToPx() + underflow)
	case !wAuto && !mlAuto && mrAuto:
		marginRight = css.Length(underflow)
	case !wAuto && mlAuto && !mrAuto:
		marginLeft = css.Length(underflow)
	case wAuto:
		if mlAuto {
			marginLeft = css.ZeroLength
		}
		if mrAuto {
			marginRight = css.ZeroLength
		}
		if underflow >= 0 {
			width = css.Length(underflow)
		} else {
			// Width can't go negative; shrink margin-right instead.
			width = css.Length(0)
			marginRight = css.Length(marginRight.ToPx() + underflow)
		}
	default:
		// Both margins auto: split the underflow evenly.
		marginLeft = css.Length(underflow / 2)
		marginRight = css.Length(underflow / 2)
	}

	d := &b.Dimensions
	d.Content.Width = width.ToPx()
	d.Padding.Left = paddingLeft.ToPx()
	d.Padding.Right = paddingRight.ToPx()
	d.Border.Left = borderLeft.ToPx()
	d.Border.Right = borderRight.ToPx()
	d.Margin.Left = marginLeft.ToPx()
	d.Margin.Right = marginRight.ToPx()
	return nil
}

// calculatePosition resolves the vertical edges and places the box below
// every sibling laid out so far in the containing block.
func (b *Box) calculatePosition(containing *Dimensions) error {
	sn := b.Style
	zero := css.ZeroLength
	d := &b.Dimensions

	// Auto vertical margins are used as zero.
	marginTop := sn.Lookup("margin-top", "margin", zero)
	marginBottom := sn.Lookup("margin-bottom", "margin", zero)
	if err := requireLengthOrAuto("margin-top", marginTop); err != nil {
		return err
	}
	if err := requireLengthOrAuto("margin-bottom", marginBottom); err != nil {
		return err
	}
	d.Margin.Top = marginTop.ToPx()
	d.Margin.Bottom = marginBottom.ToPx()

	for _, q := range []struct {
		name   string
		value  css.Value
		target *float64
	}{
		{"border-top-width", sn.Lookup("border-top-width", "border-width", zero), &d.Border.Top},
		{"border-bottom-width", sn.Lookup("border-bottom-width", "border-width", zero), &d.Border.Bottom},
		{"padding-top", sn.Lookup("padding-top", "padding", zero), &d.Padding.Top},
		{"padding-bottom", sn.Lookup("padding-bottom", "padding", zero), &d.Padding.Bottom},
	} {
		if err := requireLength(q.name, q.value); err != nil {
			return err
		}
		*q.target = q.value.ToPx()
	}

	d.Content.X = containing.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left

	// The containing block's accumulated content height is where the next
	// sibling starts.
	d.Content.Y = containing.Content.Height + containing.Content.Y +
		d.Margin.Top + d.Border.Top + d.Padding.Top
	return nil
}

// layoutChildren lays out each child against this box's content area and
// grows the content height by the child's margin box, stacking siblings
// vertically in document order.
func (b *Box) layoutChildren() error {
	d := &b.Dimensions
	for _, child := range b.Children {
		if err := child.layout(d); err != nil {
			return err
		}
		d.Content.Height += child.Dimensions.MarginBox().Height
	}
	return nil
}

// calculateHeight overrides the accumulated content height when the style
// sets an explicit pixel height; otherwise the box shrinks to fit.
func (b *Box) calculateHeight() error {
	v, ok := b.Style.Value("height")
	if !ok || v.IsAuto() {
		return nil
	}
	if v.Kind != css.KindLength {
		return fmt.Errorf("layout: height: unsupported value %q", v)
	}
	b.Dimensions.Content.Height = v.Length
	return nil
}

// resolvePaint reads the box's colors once, after geometry is final, for
// the display-list builder.
func (b *Box) resolvePaint() {
	b.Color = b.styleColor("color", "")
	b.Background = b.styleColor("background-color", "background")
	b.BorderColor = b.styleColor("border-color", "")
}

func (b *Box) styleColor(name, fallback string) *css.Color {
	v, ok := b.Style.Value(name)
	if !ok && fallback != "" {
		v, ok = b.Style.Value(fallback)
	}
	if !ok || v.Kind != css.KindColor {
		return nil
	}
	c := v.Color
	return &c
}

// requireLength rejects non-length values for properties that have no
// auto form. Absent properties never reach here; they default upstream.
func requireLength(name string, v css.Value) error {
	if v.Kind != css.KindLength {
		return fmt.Errorf("layout: %s: unsupported value %q", name, v)
	}
	return nil
}

func requireLengthOrAuto(name string, v css.Value) error {
	if v.Kind == css.KindLength || v.IsAuto() {
		return nil
	}
	return fmt.Errorf("layout: %s: unsupported value %q", name, v)
}
