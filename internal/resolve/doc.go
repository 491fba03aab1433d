// Package resolve implements the engine that binds animation group
// configurations to document-tree nodes.
//
// The package handles three concerns:
//
//  1. Locating single elements — by structural path (ResolvePath) or
//     by identity marker (ResolveID)
//  2. Applying reference precedence per timeline (ResolveReference)
//     and root precedence per group (SelectRoot)
//  3. Assembling the resolved graph (Builder.Build)
//
// # Path Expressions
//
// A path expression is a slash-separated walk from a root element,
// each step naming a tag and a 1-based position among the current
// node's matching direct children:
//
//	node := resolve.ResolvePath(root, "div[2]/span[1]")
//	// 2nd <div> child of root, then its 1st <span> child
//
// A step without an index means the first match. Expressions with a
// leading separator are absolute-style and never resolve against a
// scoped root.
//
// # Failure Model
//
// Per-timeline and per-root lookups never fail the build; they produce
// unresolved timelines and fallback roots. The only construction-time
// error is ErrHostNotCapable, raised before any tree access when the
// injected capability predicate says no.
package resolve
