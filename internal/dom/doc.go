// Package dom provides the host-tree primitives the resolution engine
// is built on.
//
// Documents are parsed with golang.org/x/net/html and all tree nodes
// are *html.Node. This package adds the small set of helpers the rest
// of the codebase needs:
//
//   - Element-kind and tag predicates (IsElement, TagIs)
//   - Attribute access (Attr, ID)
//   - Root selection (RootElement, DefaultRoot)
//
// # Root Selection
//
// RootElement returns the document's root element (usually <html>),
// which is what exported root paths in group configurations resolve
// against. DefaultRoot returns <body> when present, which is the
// document-wide fallback root for groups that specify nothing else:
//
//	doc, _ := dom.ParseString(pageHTML)
//	docRoot := dom.RootElement(doc) // <html>
//	fallback := dom.DefaultRoot(doc) // <body>
package dom
