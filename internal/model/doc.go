// Package model defines the configuration shapes and the resolved
// object graph produced by animbind.
//
// # Specs
//
// GroupSpec and TimelineSpec mirror the configuration format: a named
// group with an optional time scale, an optional exported root, and an
// ordered list of element references (by id or by path). Document is
// the envelope a remotely loaded configuration arrives in.
//
// # Resolved Graph
//
// Resolution turns specs into Groups → Group → Timeline:
//
//	groups, err := builder.Build(specs, nil)
//	g := groups.ByName("intro")
//	fmt.Printf("%d bound, %d missing\n", len(g.Resolved()), len(g.Unresolved()))
//
// Timelines are immutable after construction and exactly one
// resolution attempt is made per spec, so the resolved/unresolved
// partitions on Group are fixed at build time. Group.ByNode indexes
// resolved timelines by their bound node; the first timeline bound to
// a node claims the slot.
package model
