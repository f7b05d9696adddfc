// Package paint flattens a laid-out box tree into an ordered display list
// of solid-color fills and rasterizes it.
package paint

import (
	"crusoe/pkg/css"
	"crusoe/pkg/layout"
)

// SolidColor fills a rectangle with one color, no blending. Later
// commands paint over earlier ones where they overlap.
type SolidColor struct {
	Rect  layout.Rect
	Color css.Color
}

// DisplayList is the ordered sequence of paint commands for one box tree.
// Order is significant: parent before children, background before border,
// siblings in document order.
type DisplayList []SolidColor

// BuildDisplayList walks the box tree pre-order, emitting each block
// box's background and border fills. Inline and anonymous boxes have no
// resolved colors and paint nothing here.
func BuildDisplayList(root *layout.Box) DisplayList {
	var list DisplayList
	paintBox(&list, root)
	return list
}

func paintBox(list *DisplayList, box *layout.Box) {
	if box.Type != layout.BlockBox {
		return
	}
	paintBackground(list, box)
	paintBorders(list, box)
	for _, child := range box.Children {
		paintBox(list, child)
	}
}

// paintBackground fills the border box; the border fills then overpaint
// its edges.
func paintBackground(list *DisplayList, box *layout.Box) {
	if box.Background == nil {
		return
	}
	*list = append(*list, SolidColor{
		Rect:  box.Dimensions.BorderBox(),
		Color: *box.Background,
	})
}

// paintBorders emits one fill per edge: each strip spans the full border
// box along its edge and is exactly the border thickness deep.
func paintBorders(list *DisplayList, box *layout.Box) {
	if box.BorderColor == nil {
		return
	}
	color := *box.BorderColor
	d := &box.Dimensions
	borderBox := d.BorderBox()

	// Left
	*list = append(*list, SolidColor{Color: color, Rect: layout.Rect{
		X:      borderBox.X,
		Y:      borderBox.Y,
		Width:  d.Border.Left,
		Height: borderBox.Height,
	}})
	// Right
	*list = append(*list, SolidColor{Color: color, Rect: layout.Rect{
		X:      borderBox.X + borderBox.Width - d.Border.Right,
		Y:      borderBox.Y,
		Width:  d.Border.Right,
		Height: borderBox.Height,
	}})
	// Top
	*list = append(*list, SolidColor{Color: color, Rect: layout.Rect{
		X:      borderBox.X,
		Y:      borderBox.Y,
		Width:  borderBox.Width,
		Height: d.Border.Top,
	}})
	// Bottom
	*list = append(*list, SolidColor{Color: color, Rect: layout.Rect{
		X:      borderBox.X,
		Y:      borderBox.Y + borderBox.Height - d.Border.Bottom,
		Width:  borderBox.Width,
		Height: d.Border.Bottom,
	}})
}
