package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Area returns the trimmed text of the section heading governing n.
// The second result is false if no heading precedes n.
func Area(n *html.Node) (string, bool) {
	heading := PrecedingElement(n, atom.H3)
	if heading == nil {
		return "", false
	}
	return strings.TrimSpace(nodeText(heading)), true
}

// PrecedingElement returns the nearest element with the given tag that comes
// before n in document order, or nil. Ancestors of n count as preceding
// elements, as do the descendants of its earlier siblings.
func PrecedingElement(n *html.Node, tag atom.Atom) *html.Node {
	for cur := previous(n); cur != nil; cur = previous(cur) {
		if cur.Type == html.ElementNode && cur.DataAtom == tag {
			return cur
		}
	}
	return nil
}

// previous returns the node immediately before n in document order.
func previous(n *html.Node) *html.Node {
	if n.PrevSibling == nil {
		return n.Parent
	}
	cur := n.PrevSibling
	for cur.LastChild != nil {
		cur = cur.LastChild
	}
	return cur
}

// nodeText concatenates the text nodes under n, like Selection.Text.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
