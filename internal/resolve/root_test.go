package resolve

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/rtomasi/animbind/internal/dom"
	"github.com/rtomasi/animbind/internal/model"
)

func TestSelectRoot(t *testing.T) {
	doc := mustParse(t, testPage)
	docRoot := dom.RootElement(doc)
	body := bodyOf(t, doc)
	stage := ResolveID(body, "stage")
	aside := ResolveID(body, "aside")

	exported := &model.RootSpec{Path: "body[1]/div[1]"} // resolves to #stage
	broken := &model.RootSpec{Path: "body[1]/nav[4]"}

	tests := []struct {
		name     string
		spec     model.GroupSpec
		explicit *html.Node
		want     *html.Node
	}{
		{"explicit beats exported", model.GroupSpec{Root: exported}, aside, aside},
		{"exported beats default", model.GroupSpec{Root: exported}, nil, stage},
		{"unresolvable exported falls back", model.GroupSpec{Root: broken}, nil, body},
		{"no root at all", model.GroupSpec{}, nil, body},
		{"empty exported path", model.GroupSpec{Root: &model.RootSpec{}}, nil, body},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectRoot(tt.spec, tt.explicit, docRoot, body)
			if got != tt.want {
				t.Errorf("got <%s id=%q>, want <%s id=%q>",
					got.Data, dom.ID(got), tt.want.Data, dom.ID(tt.want))
			}
		})
	}
}
