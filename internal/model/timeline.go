package model

import "golang.org/x/net/html"

// Timeline binds a TimelineSpec to the outcome of a single resolution
// attempt. A Timeline is created once during group construction and
// never modified afterwards; Node is non-nil exactly when resolution
// succeeded.
//
// Example:
//
//	tl := group.Timelines()[0]
//	if tl.Resolved() {
//	    fmt.Printf("%s -> <%s>\n", tl.DisplayName(), tl.Node.Data)
//	}
type Timeline struct {
	// Spec is the original descriptor the timeline was built from.
	Spec TimelineSpec

	// ID echoes the identity marker from the spec, "" if none.
	ID string

	// Path echoes the path expression from the spec, "" if none.
	Path string

	// Node is the resolved tree node, nil if the spec did not resolve.
	Node *html.Node
}

// NewTimeline creates a Timeline for spec bound to node. A nil node
// records an unresolved outcome.
func NewTimeline(spec TimelineSpec, node *html.Node) *Timeline {
	return &Timeline{
		Spec: spec,
		ID:   spec.ID,
		Path: spec.Path,
		Node: node,
	}
}

// Resolved reports whether the timeline located its element.
func (t *Timeline) Resolved() bool {
	return t.Node != nil
}

// Ambiguous reports whether the spec supplied both an identity marker
// and a path. Such specs are always unresolved.
func (t *Timeline) Ambiguous() bool {
	return t.ID != "" && t.Path != ""
}

// DisplayName returns the label if set, otherwise the id or path the
// spec referenced, otherwise "(empty)".
func (t *Timeline) DisplayName() string {
	switch {
	case t.Spec.Label != "":
		return t.Spec.Label
	case t.ID != "":
		return "#" + t.ID
	case t.Path != "":
		return t.Path
	}
	return "(empty)"
}
