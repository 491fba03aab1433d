package model

import "golang.org/x/net/html"

// Group is a named, time-scaled collection of Timelines, all resolved
// against the same root element.
//
// The resolved/unresolved partitions and the node index are computed
// once at construction; Timelines are immutable so the views never go
// stale.
//
// Example:
//
//	g := groups.ByName("intro")
//	for _, tl := range g.Unresolved() {
//	    log.Printf("could not bind %s", tl.DisplayName())
//	}
type Group struct {
	// Name is the group's lookup key within its Groups collection.
	Name string

	// TimeScale is the group's time multiplier, 1 when the spec left
	// it unset.
	TimeScale float64

	// Root is the element all of this group's timelines resolved
	// against.
	Root *html.Node

	timelines  []*Timeline
	resolved   []*Timeline
	unresolved []*Timeline
	byNode     map[*html.Node]*Timeline
}

// NewGroup creates a Group owning the given timelines, preserving
// their order. A non-positive timeScale defaults to 1.
func NewGroup(name string, timeScale float64, root *html.Node, timelines []*Timeline) *Group {
	if timeScale <= 0 {
		timeScale = 1
	}

	g := &Group{
		Name:      name,
		TimeScale: timeScale,
		Root:      root,
		timelines: timelines,
		byNode:    make(map[*html.Node]*Timeline),
	}

	for _, tl := range timelines {
		if !tl.Resolved() {
			g.unresolved = append(g.unresolved, tl)
			continue
		}
		g.resolved = append(g.resolved, tl)
		// First timeline bound to a node wins the index slot.
		if _, taken := g.byNode[tl.Node]; !taken {
			g.byNode[tl.Node] = tl
		}
	}

	return g
}

// Timelines returns all timelines in declaration order.
func (g *Group) Timelines() []*Timeline {
	return g.timelines
}

// Len returns the number of timelines in the group.
func (g *Group) Len() int {
	return len(g.timelines)
}

// Resolved returns the timelines that located their element, in
// declaration order.
func (g *Group) Resolved() []*Timeline {
	return g.resolved
}

// Unresolved returns the timelines that did not locate an element, in
// declaration order.
func (g *Group) Unresolved() []*Timeline {
	return g.unresolved
}

// ByNode returns the timeline bound to node, or nil. When several
// timelines bound the same node, the first one in declaration order is
// returned.
func (g *Group) ByNode(node *html.Node) *Timeline {
	return g.byNode[node]
}
