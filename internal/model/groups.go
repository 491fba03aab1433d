package model

import "golang.org/x/net/html"

// Groups is the ordered collection built from one configuration. Its
// length always equals the number of group specs in the configuration:
// a group is never dropped for having only unresolved timelines.
type Groups struct {
	groups []*Group
	byName map[string]*Group
	rootEl *html.Node
}

// NewGroups creates a Groups collection over the given groups. rootEl
// records the explicit root the construction used, or the document
// default when the caller supplied none.
func NewGroups(groups []*Group, rootEl *html.Node) *Groups {
	gs := &Groups{
		groups: groups,
		byName: make(map[string]*Group, len(groups)),
		rootEl: rootEl,
	}
	// Later entries overwrite earlier ones, so a duplicated name
	// looks up the last group carrying it.
	for _, g := range groups {
		gs.byName[g.Name] = g
	}
	return gs
}

// Len returns the number of groups.
func (gs *Groups) Len() int {
	return len(gs.groups)
}

// At returns the group at position i, or nil when out of range.
func (gs *Groups) At(i int) *Group {
	if i < 0 || i >= len(gs.groups) {
		return nil
	}
	return gs.groups[i]
}

// ByName returns the group with the given name, or nil. With duplicate
// names the last group wins.
func (gs *Groups) ByName(name string) *Group {
	return gs.byName[name]
}

// All returns the groups in declaration order.
func (gs *Groups) All() []*Group {
	return gs.groups
}

// RootEl returns the explicit root used for construction (the document
// default root when the caller omitted one).
func (gs *Groups) RootEl() *html.Node {
	return gs.rootEl
}
