package resolve

import (
	"golang.org/x/net/html"

	"github.com/rtomasi/animbind/internal/dom"
)

// ResolveID searches the subtree rooted at root (inclusive) for the
// first element whose id attribute equals id, depth-first in document
// order. Returns nil when no element matches.
func ResolveID(root *html.Node, id string) *html.Node {
	if root == nil || id == "" {
		return nil
	}
	if dom.IsElement(root) && dom.ID(root) == id {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := ResolveID(c, id); n != nil {
			return n
		}
	}
	return nil
}
