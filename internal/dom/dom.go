package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document from r.
//
// The returned node is the document node, not the root element. Use
// RootElement or DefaultRoot to get a node suitable for resolution.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s))
}

// IsElement reports whether n is an element node. Text, comment and
// document nodes are never resolution targets.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagIs reports whether n is an element with the given tag name.
// The comparison is case-insensitive, matching the host tree's naming
// convention regardless of how the source document was written.
func TagIs(n *html.Node, name string) bool {
	return IsElement(n) && strings.EqualFold(n.Data, name)
}

// Attr returns the value of the named attribute on n, or "" if the
// attribute is absent or n is not an element.
func Attr(n *html.Node, key string) string {
	if !IsElement(n) {
		return ""
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// ID returns the value of n's id attribute, or "" if it has none.
func ID(n *html.Node) string {
	return Attr(n, "id")
}

// RootElement returns the document's root element (<html> for a full
// document). If doc is itself an element it is returned unchanged.
// Returns nil for a nil or element-less document.
func RootElement(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if IsElement(doc) {
		return doc
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c) {
			return c
		}
	}
	return nil
}

// DefaultRoot returns the node resolution falls back to when nothing
// more specific applies: the document's <body> if present, otherwise
// the root element.
func DefaultRoot(doc *html.Node) *html.Node {
	root := RootElement(doc)
	if root == nil {
		return nil
	}
	if body := findTag(root, "body"); body != nil {
		return body
	}
	return root
}

// findTag returns the first element with the given tag in the subtree
// rooted at n (inclusive), depth-first.
func findTag(n *html.Node, tag string) *html.Node {
	if TagIs(n, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}
