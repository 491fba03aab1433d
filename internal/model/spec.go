package model

// TimelineSpec describes one element binding inside a group
// configuration. A spec locates its element either by identity marker
// (ID) or by structural path (Path) — never both. A spec carrying both
// forms is ambiguous and never resolves; a spec carrying neither is
// unresolved by definition.
type TimelineSpec struct {
	// ID is the identity marker of the target element, matched against
	// the element's id attribute anywhere beneath the group root.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Path is a structural path expression walked from the group root,
	// e.g. "div[2]/span[1]". Indices are 1-based; a step without an
	// index means the first match.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Label is an optional display name for the timeline.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Props carries animation properties for the downstream engine.
	// The resolver stores them untouched.
	Props map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// RootSpec is an exported root: a root reference embedded in a group
// configuration, resolved against the document root element.
type RootSpec struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// GroupSpec describes one named animation group.
type GroupSpec struct {
	// Name identifies the group within its collection.
	Name string `json:"name" yaml:"name"`

	// TimeScale is the group's time multiplier. Zero means unset and
	// defaults to 1 at construction.
	TimeScale float64 `json:"timeScale,omitempty" yaml:"timeScale,omitempty"`

	// Root optionally overrides the root element this group's timelines
	// resolve against. It is ignored when the caller supplies an
	// explicit root.
	Root *RootSpec `json:"root,omitempty" yaml:"root,omitempty"`

	// Timelines lists the group's element bindings in declaration order.
	Timelines []TimelineSpec `json:"timelines" yaml:"timelines"`
}

// Document is the shape of a remotely loaded configuration document.
// Only Groups feeds resolution; the version fields are carried through
// for diagnostics.
type Document struct {
	VersionApp string      `json:"VERSION_APP" yaml:"VERSION_APP"`
	VersionLib string      `json:"VERSION_LIB" yaml:"VERSION_LIB"`
	Groups     []GroupSpec `json:"groups" yaml:"groups"`
}
