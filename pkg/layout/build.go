package layout

import (
	"errors"

	"crusoe/pkg/style"
)

// ErrRootDisplayNone is returned when the document's root element resolves
// to display:none. A document with no root box cannot be laid out.
var ErrRootDisplayNone = errors.New("layout: root node has display: none")

// BuildTree constructs the box tree for a style tree without computing any
// geometry. Nodes with display:none are omitted along with their subtrees.
func BuildTree(root *style.Node) (*Box, error) {
	if root.Display() == style.None {
		return nil, ErrRootDisplayNone
	}
	return buildBox(root), nil
}

func buildBox(sn *style.Node) *Box {
	t := InlineBox
	if sn.Display() == style.Block {
		t = BlockBox
	}
	box := newBox(t, sn)

	for _, child := range sn.Children {
		switch child.Display() {
		case style.Block:
			box.Children = append(box.Children, buildBox(child))
		case style.Inline:
			ic := box.inlineContainer()
			ic.Children = append(ic.Children, buildBox(child))
		case style.None:
			// No box, no descendants.
		}
	}
	return box
}

// inlineContainer returns the box a new inline child should be appended
// to. Inline and anonymous boxes take inline children directly; a block
// box wraps consecutive inline children in one shared anonymous block,
// starting a new one only when the previous child is not one.
func (b *Box) inlineContainer() *Box {
	switch b.Type {
	case InlineBox, AnonymousBox:
		return b
	default:
		if n := len(b.Children); n == 0 || b.Children[n-1].Type != AnonymousBox {
			b.Children = append(b.Children, newBox(AnonymousBox, b.Style))
		}
		return b.Children[len(b.Children)-1]
	}
}
