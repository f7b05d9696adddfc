package style

import (
	"crusoe/pkg/css"
	"crusoe/pkg/dom"
)

// Display is the subset of display modes the layout engine understands.
type Display int

const (
	Inline Display = iota
	Block
	None
)

func (d Display) String() string {
	switch d {
	case Inline:
		return "inline"
	case Block:
		return "block"
	case None:
		return "none"
	}
	return "?"
}

// Node is one node of the style tree: the originating document node plus
// its specified values. The tree is isomorphic to the document tree (text
// nodes included, with empty property maps) and immutable once built.
//
// A style tree is cheap to build and holds no caches, so callers rebuild
// it from scratch whenever the document or the stylesheets change.
type Node struct {
	DOM       *dom.Node
	Specified PropertyMap
	Children  []*Node
}

// BuildTree walks the document tree once, attaching specified values to
// every node.
func BuildTree(node *dom.Node, stylesheets []*css.Stylesheet) *Node {
	styled := &Node{
		DOM:       node,
		Specified: Specified(node, stylesheets),
	}
	for _, child := range node.Children {
		styled.Children = append(styled.Children, BuildTree(child, stylesheets))
	}
	return styled
}

// Value returns the specified value of a property, if any.
func (n *Node) Value(name string) (css.Value, bool) {
	v, ok := n.Specified[name]
	return v, ok
}

// Lookup returns the value of name, falling back to fallback, falling back
// to def. This is how per-side properties defer to their shorthand
// (`margin-left` to `margin`) and how absent properties default.
func (n *Node) Lookup(name, fallback string, def css.Value) css.Value {
	if v, ok := n.Value(name); ok {
		return v
	}
	if v, ok := n.Value(fallback); ok {
		return v
	}
	return def
}

// Display returns the node's display mode. Text nodes are inline; elements
// default to inline unless the display property names a recognized block
// or none keyword. Unrecognized keywords lay out as inline.
func (n *Node) Display() Display {
	if n.DOM.Type == dom.TextNode {
		return Inline
	}
	v, ok := n.Value("display")
	if !ok || v.Kind != css.KindKeyword {
		return Inline
	}
	switch v.Keyword {
	case "block":
		return Block
	case "none":
		return None
	default:
		return Inline
	}
}
