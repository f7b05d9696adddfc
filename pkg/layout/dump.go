package layout

import (
	"fmt"

	"github.com/xlab/treeprint"

	"crusoe/pkg/dom"
)

// Dump renders the box tree with its computed geometry, for debugging and
// the CLI dump command.
func (b *Box) Dump() string {
	tree := treeprint.NewWithRoot(b.label())
	addChildren(tree, b)
	return tree.String()
}

func addChildren(tree treeprint.Tree, b *Box) {
	for _, child := range b.Children {
		branch := tree.AddBranch(child.label())
		addChildren(branch, child)
	}
}

func (b *Box) label() string {
	name := b.Type.String()
	if b.Type != AnonymousBox && b.Style != nil && b.Style.DOM != nil {
		switch b.Style.DOM.Type {
		case dom.ElementNode:
			name = fmt.Sprintf("%s <%s>", name, b.Style.DOM.TagName)
		case dom.TextNode:
			name = fmt.Sprintf("%s %q", name, truncate(b.Style.DOM.Text, 24))
		}
	}
	d := b.Dimensions.Content
	return fmt.Sprintf("%s (%g,%g) %gx%g", name, d.X, d.Y, d.Width, d.Height)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
