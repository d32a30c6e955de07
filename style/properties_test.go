package style

import (
	"testing"

	"gocko/css"
	"gocko/css/mediaquery"
	"gocko/dom"
)

func TestFontSizeEmResolvesAgainstParent(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	parent := dom.NewElement("div")
	child := dom.NewElement("span")
	doc.Root.AppendChild(parent)
	parent.AppendChild(child)

	sheet := css.Parse("div { font-size: 20px; } span { font-size: 2em; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	span := findByTag(tree, "span")
	if got := span.FontSizeProperty(); got != 40 {
		t.Errorf("FontSizeProperty() = %v, want 40 (2em against 20px parent)", got)
	}
}

func TestFontSizeKeywordRatios(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	doc.Root.AppendChild(p)

	sheet := css.Parse("p { font-size: xx-large; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	if got, want := node.FontSizeProperty(), 32.0; got != want {
		t.Errorf("FontSizeProperty() = %v, want %v", got, want)
	}
}

func TestFontWeightBolderSteppedFromParent(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	parent := dom.NewElement("div")
	child := dom.NewElement("span")
	doc.Root.AppendChild(parent)
	parent.AppendChild(child)

	sheet := css.Parse("div { font-weight: 400; } span { font-weight: bolder; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	span := findByTag(tree, "span")
	if got := span.FontWeightProperty(); got.Value != 700 {
		t.Errorf("FontWeightProperty().Value = %v, want 700", got.Value)
	}
}

func TestBorderWidthKeyword(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	doc.Root.AppendChild(p)

	sheet := css.Parse("p { border-top-width: thick; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	if got := node.BorderWidthProperty(css.BorderTopWidth); got != 7 {
		t.Errorf("BorderWidthProperty() = %v, want 7", got)
	}
}

func TestDisplayNoneSuppressesBox(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	doc.Root.AppendChild(p)

	sheet := css.Parse("p { display: none; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	if node.DisplayProperty() != DisplayNone {
		t.Error("expected display: none to produce DisplayNone")
	}
}

func TestTextDecorationLineMultiToken(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	doc.Root.AppendChild(p)

	sheet := css.Parse("p { text-decoration-line: underline overline; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	lines := node.TextDecorationLineProperty()
	if len(lines) != 2 || lines[0] != TextDecorationLineUnderline || lines[1] != TextDecorationLineOverline {
		t.Errorf("TextDecorationLineProperty() = %v, want [underline overline]", lines)
	}
}
