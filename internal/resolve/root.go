package resolve

import (
	"golang.org/x/net/html"

	"github.com/rtomasi/animbind/internal/model"
)

// SelectRoot picks the root element a group's timelines resolve
// against. Precedence, first success wins:
//
//  1. An explicit root supplied by the caller, used verbatim.
//  2. The group's exported root path, resolved against the document
//     root element.
//  3. The document default root.
//
// An exported root that fails to resolve falls back silently to the
// default — partial configuration data is expected, so this is not an
// error. The fallback is always the document default, never the
// explicit root.
func SelectRoot(spec model.GroupSpec, explicit, docRoot, defaultRoot *html.Node) *html.Node {
	if explicit != nil {
		return explicit
	}
	if spec.Root != nil && spec.Root.Path != "" {
		if n := ResolvePath(docRoot, spec.Root.Path); n != nil {
			return n
		}
	}
	return defaultRoot
}
