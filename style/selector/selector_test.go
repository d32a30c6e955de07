package selector

import "testing"

type fakeElement struct {
	tag    string
	attrs  map[string]string
	parent *fakeElement
}

func (e *fakeElement) Tag() string { return e.tag }

func (e *fakeElement) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) IsRoot() bool { return e.parent == nil }

func TestMatchesUniversal(t *testing.T) {
	e := &fakeElement{tag: "p"}
	if !Matches(e, "*") {
		t.Error("expected * to match any element")
	}
}

func TestMatchesTag(t *testing.T) {
	e := &fakeElement{tag: "p"}
	if !Matches(e, "p") || Matches(e, "div") {
		t.Error("tag selector mismatch")
	}
}

func TestMatchesClassChain(t *testing.T) {
	e := &fakeElement{tag: "div", attrs: map[string]string{"class": "a b c"}}
	if !Matches(e, ".a.b") {
		t.Error("expected chained class selector to match")
	}
	if Matches(e, ".a.missing") {
		t.Error("expected missing class to fail match")
	}
	if !Matches(e, "div.a") {
		t.Error("expected tag-qualified class selector to match")
	}
	if Matches(e, "span.a") {
		t.Error("expected wrong tag-qualified class selector to fail")
	}
}

func TestMatchesID(t *testing.T) {
	e := &fakeElement{tag: "div", attrs: map[string]string{"id": "main"}}
	if !Matches(e, "#main") || Matches(e, "#other") {
		t.Error("id selector mismatch")
	}
}

func TestMatchesAttribute(t *testing.T) {
	e := &fakeElement{tag: "input", attrs: map[string]string{"type": "text"}}
	if !Matches(e, "[type]") {
		t.Error("expected presence selector to match")
	}
	if !Matches(e, "[type=text]") {
		t.Error("expected value selector to match")
	}
	if Matches(e, "[type=number]") {
		t.Error("expected mismatched attribute value to fail")
	}
}

func TestMatchesDescendantCombinator(t *testing.T) {
	grandparent := &fakeElement{tag: "body"}
	parent := &fakeElement{tag: "div", parent: grandparent}
	child := &fakeElement{tag: "p", parent: parent}
	if !Matches(child, "body p") {
		t.Error("expected descendant combinator to match through an intervening div")
	}
	if Matches(child, "span p") {
		t.Error("expected descendant combinator to fail with no matching ancestor")
	}
}

func TestMatchesChildCombinator(t *testing.T) {
	parent := &fakeElement{tag: "div"}
	child := &fakeElement{tag: "p", parent: parent}
	if !Matches(child, "div > p") {
		t.Error("expected direct child combinator to match")
	}

	grandparent := &fakeElement{tag: "div"}
	middle := &fakeElement{tag: "section", parent: grandparent}
	leaf := &fakeElement{tag: "p", parent: middle}
	if Matches(leaf, "div > p") {
		t.Error("expected child combinator to fail across an intervening element")
	}
}

func TestMatchesLinkPseudoClass(t *testing.T) {
	a := &fakeElement{tag: "a", attrs: map[string]string{"href": "/x"}}
	if !Matches(a, "a:link") && !Matches(a, ":any-link") {
		t.Error("expected anchor with href to match :link/:any-link")
	}
	span := &fakeElement{tag: "span"}
	if Matches(span, ":link") {
		t.Error("expected non-anchor to fail :link")
	}
}

func TestMatchesRootPseudoClass(t *testing.T) {
	root := &fakeElement{tag: "html"}
	child := &fakeElement{tag: "body", parent: root}
	if !Matches(root, ":root") {
		t.Error("expected parentless element to match :root")
	}
	if Matches(child, ":root") {
		t.Error("expected non-root element to fail :root")
	}
}

func TestMatchesUnknownPseudoClassNeverMatches(t *testing.T) {
	e := &fakeElement{tag: "div"}
	if Matches(e, "div:hover") {
		t.Error("expected unrecognised pseudo-class to never match")
	}
}
