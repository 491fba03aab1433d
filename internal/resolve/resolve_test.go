package resolve

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/rtomasi/animbind/internal/dom"
)

// testPage has two <div> children under <body>: a stage holding two
// inner divs (one span, then two spans) and an aside.
const testPage = `<html><head><title>fixture</title></head><body>
<div id="stage">
<div><span id="first">one</span></div>
<div><span>two</span><span id="second">three</span></div>
</div>
<div id="aside"><p>text</p></div>
</body></html>`

func mustParse(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := dom.ParseString(page)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func bodyOf(t *testing.T, doc *html.Node) *html.Node {
	t.Helper()
	body := dom.DefaultRoot(doc)
	if !dom.TagIs(body, "body") {
		t.Fatalf("fixture has no body")
	}
	return body
}
