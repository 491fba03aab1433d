package resolve

import (
	"golang.org/x/net/html"

	"github.com/rtomasi/animbind/internal/model"
)

// ResolveReference performs the single resolution attempt for one
// timeline spec against root and returns the resulting Timeline.
//
// Precedence over the spec's reference forms:
//
//  1. Neither id nor path: unresolved, no lookup attempted.
//  2. Id only: resolved iff an element with that id exists under root.
//  3. Path only: resolved iff the path walks to a node from root.
//  4. Both id and path: the combination is ambiguous and always
//     unresolved, even when the id would have matched.
//
// Unresolved outcomes are data, never errors; construction of the
// enclosing group continues regardless.
func ResolveReference(root *html.Node, spec model.TimelineSpec) *model.Timeline {
	var node *html.Node
	switch {
	case spec.ID != "" && spec.Path != "":
		// Ambiguous by definition; skip the lookup entirely.
	case spec.ID != "":
		node = ResolveID(root, spec.ID)
	case spec.Path != "":
		node = ResolvePath(root, spec.Path)
	}
	return model.NewTimeline(spec, node)
}
