package resolve

import (
	"errors"

	"golang.org/x/net/html"

	"github.com/rtomasi/animbind/internal/dom"
	"github.com/rtomasi/animbind/internal/model"
)

// ErrHostNotCapable is returned by construction entry points invoked
// outside a capable host environment. It is an environment
// precondition, checked before any tree access, and is never absorbed
// into per-timeline unresolved state.
var ErrHostNotCapable = errors.New("host environment cannot resolve documents")

// CapabilityFunc reports whether the host environment can run
// resolution. It is an explicit dependency of Builder so tests can run
// without a real host.
type CapabilityFunc func() bool

// Builder constructs Groups from group specs against one parsed
// document.
//
// Example:
//
//	doc, _ := dom.ParseString(pageHTML)
//	b := resolve.NewBuilder(doc)
//	groups, err := b.Build(specs, nil)
type Builder struct {
	doc     *html.Node
	capable CapabilityFunc
}

// NewBuilder creates a Builder over doc. The default capability check
// requires only that a document is present; use WithCapability to
// inject a different predicate.
func NewBuilder(doc *html.Node) *Builder {
	b := &Builder{doc: doc}
	b.capable = func() bool { return b.doc != nil }
	return b
}

// WithCapability replaces the host capability predicate and returns
// the builder.
func (b *Builder) WithCapability(fn CapabilityFunc) *Builder {
	if fn != nil {
		b.capable = fn
	}
	return b
}

// HostCapable reports the current capability predicate's verdict.
func (b *Builder) HostCapable() bool {
	return b.capable()
}

// Build constructs a Groups collection from specs. explicitRoot, when
// non-nil, is used verbatim as the root for every group, overriding
// any exported roots; when nil it defaults to the document default
// root for the collection's RootEl and groups fall back through their
// exported roots.
//
// Build either succeeds for the whole configuration — possibly with
// many unresolved timelines — or fails with ErrHostNotCapable before
// any group is built. The returned Groups always has exactly one
// Group per spec, in declaration order.
func (b *Builder) Build(specs []model.GroupSpec, explicitRoot *html.Node) (*model.Groups, error) {
	if !b.capable() {
		return nil, ErrHostNotCapable
	}

	docRoot := dom.RootElement(b.doc)
	defaultRoot := dom.DefaultRoot(b.doc)

	rootEl := explicitRoot
	if rootEl == nil {
		rootEl = defaultRoot
	}

	groups := make([]*model.Group, 0, len(specs))
	for _, spec := range specs {
		root := SelectRoot(spec, explicitRoot, docRoot, defaultRoot)

		timelines := make([]*model.Timeline, 0, len(spec.Timelines))
		for _, ts := range spec.Timelines {
			timelines = append(timelines, ResolveReference(root, ts))
		}

		groups = append(groups, model.NewGroup(spec.Name, spec.TimeScale, root, timelines))
	}

	return model.NewGroups(groups, rootEl), nil
}

// BuildOne constructs Groups from a single group spec. It is the
// single-descriptor form of Build.
func (b *Builder) BuildOne(spec model.GroupSpec, explicitRoot *html.Node) (*model.Groups, error) {
	return b.Build([]model.GroupSpec{spec}, explicitRoot)
}
