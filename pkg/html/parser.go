// Package html parses HTML documents into the dom tree, collecting
// embedded and linked stylesheet references along the way.
package html

import (
	"fmt"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"

	"crusoe/pkg/dom"
)

// Document is a parsed page: the element tree plus the stylesheet sources
// found in it. The caller parses Stylesheets and fetches StylesheetLinks;
// this package does no CSS work itself.
type Document struct {
	Root *dom.Node
	// Stylesheets holds the text of <style> elements in document order.
	Stylesheets []string
	// StylesheetLinks holds the hrefs of <link rel="stylesheet"> elements
	// in document order.
	StylesheetLinks []string
}

// Parse reads an HTML document. Parsing is delegated to x/net/html (which
// also repairs malformed markup); the resulting tree is converted into
// the engine's document model. Comments, doctypes, whitespace-only text,
// and style/script/link/meta machinery are dropped from the tree.
func Parse(r io.Reader) (*Document, error) {
	parsed, err := xhtml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("html: parse: %w", err)
	}

	doc := &Document{}
	for child := parsed.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xhtml.ElementNode {
			doc.Root = doc.convert(child)
			break
		}
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("html: document has no root element")
	}
	return doc, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

func (doc *Document) convert(n *xhtml.Node) *dom.Node {
	switch n.Data {
	case "style":
		doc.Stylesheets = append(doc.Stylesheets, textContent(n))
		return nil
	case "link":
		if attr(n, "rel") == "stylesheet" {
			if href := attr(n, "href"); href != "" {
				doc.StylesheetLinks = append(doc.StylesheetLinks, href)
			}
		}
		return nil
	case "script", "meta", "title", "base":
		return nil
	}

	var attrs map[string]string
	if len(n.Attr) > 0 {
		attrs = make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			attrs[a.Key] = a.Val
		}
	}
	elem := dom.NewElement(n.Data, attrs)

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xhtml.ElementNode:
			if converted := doc.convert(child); converted != nil {
				elem.AddChild(converted)
			}
		case xhtml.TextNode:
			if strings.TrimSpace(child.Data) != "" {
				elem.AppendText(child.Data)
			}
		}
	}
	return elem
}

func attr(n *xhtml.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *xhtml.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xhtml.TextNode {
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}
