package dom

import (
	"testing"
)

const testPage = `<html><head><title>t</title></head><body>
<div id="stage"><span>a</span></div>
<div>plain</div>
</body></html>`

func TestDefaultRoot(t *testing.T) {
	doc, err := ParseString(testPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	body := DefaultRoot(doc)
	if !TagIs(body, "body") {
		t.Errorf("expected <body>, got %v", body)
	}

	root := RootElement(doc)
	if !TagIs(root, "html") {
		t.Errorf("expected <html>, got %v", root)
	}
}

func TestDefaultRootNil(t *testing.T) {
	if DefaultRoot(nil) != nil {
		t.Error("expected nil root for nil document")
	}
}

func TestAttrAndID(t *testing.T) {
	doc, err := ParseString(testPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	body := DefaultRoot(doc)
	var withID, without bool
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if !TagIs(c, "div") {
			continue
		}
		switch ID(c) {
		case "stage":
			withID = true
		case "":
			without = true
		}
	}
	if !withID {
		t.Error("did not find div with id=stage")
	}
	if !without {
		t.Error("did not find div without id")
	}
}

func TestTagIsCaseInsensitive(t *testing.T) {
	doc, err := ParseString(`<html><body><DIV id="x"></DIV></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	body := DefaultRoot(doc)
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c) {
			if !TagIs(c, "DIV") || !TagIs(c, "div") {
				t.Errorf("tag match should ignore case, node %q", c.Data)
			}
		}
	}
}
