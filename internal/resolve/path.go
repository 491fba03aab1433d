package resolve

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/rtomasi/animbind/internal/dom"
)

// pathStep is one parsed step of a path expression: a tag name and a
// 1-based index among the current node's matching children.
type pathStep struct {
	tag   string
	index int
}

var stepPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*)(?:\[([0-9]+)\])?$`)

// parsePath parses a slash-separated path expression like
// "div[2]/span[1]" into steps. A step without an index means index 1.
// Returns false for an empty expression, an absolute-style expression
// with a leading separator, or a malformed step — callers treat all of
// those as unresolved rather than errors.
func parsePath(expr string) ([]pathStep, bool) {
	if expr == "" || strings.HasPrefix(expr, "/") {
		return nil, false
	}

	parts := strings.Split(expr, "/")
	steps := make([]pathStep, 0, len(parts))
	for _, part := range parts {
		m := stepPattern.FindStringSubmatch(part)
		if m == nil {
			return nil, false
		}
		index := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return nil, false
			}
			index = n
		}
		steps = append(steps, pathStep{tag: m[1], index: index})
	}
	return steps, true
}

// ResolvePath walks a path expression from root and returns the node
// it addresses, or nil when any step has no matching child, an index
// is out of range, or the expression is malformed. Resolution is
// strictly scoped to root: expressions are never reinterpreted against
// the document.
func ResolvePath(root *html.Node, expr string) *html.Node {
	if root == nil {
		return nil
	}
	steps, ok := parsePath(expr)
	if !ok {
		return nil
	}

	cur := root
	for _, step := range steps {
		next := childAt(cur, step.tag, step.index)
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// childAt returns the index-th (1-based) direct child element of n
// with the given tag, or nil.
func childAt(n *html.Node, tag string, index int) *html.Node {
	seen := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !dom.TagIs(c, tag) {
			continue
		}
		seen++
		if seen == index {
			return c
		}
	}
	return nil
}
