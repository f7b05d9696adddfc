package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"

	"crusoe/pkg/dom"
)

// Dump renders the style tree with each node's specified values, for the
// CLI dump command.
func (n *Node) Dump() string {
	tree := treeprint.NewWithRoot(n.label())
	addChildren(tree, n)
	return tree.String()
}

func addChildren(tree treeprint.Tree, n *Node) {
	for _, child := range n.Children {
		branch := tree.AddBranch(child.label())
		addChildren(branch, child)
	}
}

func (n *Node) label() string {
	if n.DOM.Type == dom.TextNode {
		text := n.DOM.Text
		if len(text) > 24 {
			text = text[:24] + "..."
		}
		return fmt.Sprintf("%q", text)
	}

	props := make([]string, 0, len(n.Specified))
	for name, value := range n.Specified {
		props = append(props, fmt.Sprintf("%s: %s", name, value))
	}
	sort.Strings(props)
	if len(props) == 0 {
		return fmt.Sprintf("<%s>", n.DOM.TagName)
	}
	return fmt.Sprintf("<%s> { %s }", n.DOM.TagName, strings.Join(props, "; "))
}
