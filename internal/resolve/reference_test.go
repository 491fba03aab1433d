package resolve

import (
	"testing"

	"github.com/rtomasi/animbind/internal/dom"
	"github.com/rtomasi/animbind/internal/model"
)

func TestResolveID(t *testing.T) {
	doc := mustParse(t, testPage)
	body := bodyOf(t, doc)

	tests := []struct {
		name   string
		root   string // path from body to the search root, "" = body
		id     string
		wantOK bool
	}{
		{"direct child", "", "stage", true},
		{"deep descendant", "", "second", true},
		{"scoped to subtree", "div[2]", "first", false},
		{"root itself matches", "div[1]", "stage", true},
		{"missing id", "", "nowhere", false},
		{"empty id", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := body
			if tt.root != "" {
				root = ResolvePath(body, tt.root)
				if root == nil {
					t.Fatalf("fixture: root path %q not found", tt.root)
				}
			}
			node := ResolveID(root, tt.id)
			if tt.wantOK && node == nil {
				t.Fatal("expected a node, got unresolved")
			}
			if !tt.wantOK && node != nil {
				t.Errorf("expected unresolved, got <%s id=%q>", node.Data, dom.ID(node))
			}
			if tt.wantOK && dom.ID(node) != tt.id {
				t.Errorf("got id %q, want %q", dom.ID(node), tt.id)
			}
		})
	}
}

func TestResolveIDDepthFirst(t *testing.T) {
	// Two elements share an id; depth-first document order decides.
	doc := mustParse(t, `<html><body>
<div><span id="dup" class="inner"></span></div>
<p id="dup" class="late"></p>
</body></html>`)
	body := bodyOf(t, doc)

	node := ResolveID(body, "dup")
	if node == nil {
		t.Fatal("expected a node")
	}
	if dom.Attr(node, "class") != "inner" {
		t.Errorf("got %q, want the first match in document order", dom.Attr(node, "class"))
	}
}

func TestResolveReference(t *testing.T) {
	doc := mustParse(t, testPage)
	body := bodyOf(t, doc)

	tests := []struct {
		name   string
		spec   model.TimelineSpec
		wantID string
		wantOK bool
	}{
		{"by id", model.TimelineSpec{ID: "second"}, "second", true},
		{"by path", model.TimelineSpec{Path: "div[2]"}, "aside", true},
		{"id misses", model.TimelineSpec{ID: "nowhere"}, "", false},
		{"path misses", model.TimelineSpec{Path: "div[9]"}, "", false},
		{"neither form", model.TimelineSpec{Label: "bare"}, "", false},
		{"both forms always unresolved", model.TimelineSpec{ID: "second", Path: "div[2]"}, "", false},
		{"both forms with valid id", model.TimelineSpec{ID: "stage", Path: "table[1]"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := ResolveReference(body, tt.spec)

			if tl.Resolved() != tt.wantOK {
				t.Fatalf("resolved = %v, want %v", tl.Resolved(), tt.wantOK)
			}
			if tt.wantOK && dom.ID(tl.Node) != tt.wantID {
				t.Errorf("bound id %q, want %q", dom.ID(tl.Node), tt.wantID)
			}
			// The descriptor fields are echoed regardless of outcome.
			if tl.ID != tt.spec.ID || tl.Path != tt.spec.Path {
				t.Errorf("timeline lost descriptor fields: id=%q path=%q", tl.ID, tl.Path)
			}
		})
	}
}

func TestResolveReferenceIdempotent(t *testing.T) {
	doc := mustParse(t, testPage)
	body := bodyOf(t, doc)
	spec := model.TimelineSpec{ID: "first"}

	a := ResolveReference(body, spec)
	b := ResolveReference(body, spec)
	if a.Node == nil || a.Node != b.Node {
		t.Error("same spec against an unchanged tree must bind the same node")
	}
}
