// Package layout builds the box tree from a style tree and computes the
// absolute geometry of every block box: CSS 2.1 normal-flow block layout
// with anonymous boxes wrapping inline content.
package layout

import (
	"crusoe/pkg/css"
	"crusoe/pkg/style"
)

// Rect is an absolute rectangle in device pixels, relative to the
// document origin.
type Rect struct {
	X, Y, Width, Height float64
}

// ExpandedBy grows the rectangle outward by the given edges.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

// EdgeSizes holds per-side thicknesses for padding, border or margin.
type EdgeSizes struct {
	Left, Right, Top, Bottom float64
}

// Dimensions is the full box-model geometry of one box. Content is the
// content rectangle; the edge records extend it outward.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox is the content area plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the content area plus padding and borders. Backgrounds and
// borders paint inside this rectangle.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the full footprint of the box, used to stack siblings.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

type BoxType int

const (
	// BlockBox is a box generated by a display:block element.
	BlockBox BoxType = iota
	// InlineBox is a box generated by inline content.
	InlineBox
	// AnonymousBox is a block-level box inserted by the engine to wrap
	// consecutive inline children of a block parent. It has no element of
	// its own; its Style is the enclosing block's style node.
	AnonymousBox
)

func (t BoxType) String() string {
	switch t {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBox:
		return "anonymous"
	}
	return "?"
}

// Box is one node of the layout tree. Dimensions are written exactly once
// during the layout pass and read-only afterwards. The paint fields are
// resolved for block boxes after their geometry is final; nil means the
// property is not set to a color.
type Box struct {
	Type       BoxType
	Style      *style.Node
	Dimensions Dimensions
	Children   []*Box

	Color       *css.Color
	Background  *css.Color
	BorderColor *css.Color
}

func newBox(t BoxType, sn *style.Node) *Box {
	return &Box{Type: t, Style: sn}
}
