package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocko/css"
	"gocko/css/mediaquery"
	"gocko/dom"
)

func buildTree(t *testing.T, html string, cssText string) *Node {
	t.Helper()
	doc := &dom.Document{Root: dom.NewElement("html")}
	body := dom.NewElement("body")
	doc.Root.AppendChild(body)
	body.AppendChild(html2node(html))

	sheet := css.Parse(cssText)
	return BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
}

// html2node builds a trivial single-element tree for test fixtures; the
// full tag soup is htmlparse's job, not this package's.
func html2node(tag string) *dom.Node {
	return dom.NewElement(tag)
}

func findByTag(n *Node, tag string) *Node {
	if n.DOM.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := findByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestCascadeAppliesMatchingRule(t *testing.T) {
	tree := buildTree(t, "p", "p { color: red; }")
	p := findByTag(tree, "p")
	require.NotNil(t, p)
	assert.Equal(t, "red", p.GetRawProperty(css.Color))
}

func TestCascadeInlineOverridesStylesheet(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	body := dom.NewElement("body")
	doc.Root.AppendChild(body)
	p := dom.NewElement("p")
	p.Attributes["style"] = "color: blue"
	body.AppendChild(p)

	sheet := css.Parse("p { color: red; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	require.NotNil(t, node)
	assert.Equal(t, "blue", node.GetRawProperty(css.Color))
}

func TestCascadeStylesheetImportantBeatsInlineNormal(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	p.Attributes["style"] = "color: blue"
	doc.Root.AppendChild(p)

	sheet := css.Parse("p { color: red !important; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	require.NotNil(t, node)
	assert.Equal(t, "red", node.GetRawProperty(css.Color))
}

func TestCascadeInlineImportantWinsOverEverything(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	p.Attributes["style"] = "color: blue !important"
	doc.Root.AppendChild(p)

	sheet := css.Parse("p { color: red !important; }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	require.NotNil(t, node)
	assert.Equal(t, "blue", node.GetRawProperty(css.Color))
}

func TestInheritedPropertyWalksToParent(t *testing.T) {
	tree := buildTree(t, "p", "body { color: green; }")
	p := findByTag(tree, "p")
	require.NotNil(t, p)
	assert.Equal(t, "green", p.GetRawProperty(css.Color))
}

func TestUnsetOnNonInheritedPropertyFallsBackToInitial(t *testing.T) {
	tree := buildTree(t, "p", "p { display: unset; }")
	p := findByTag(tree, "p")
	require.NotNil(t, p)
	assert.Equal(t, css.Display.InitialValue(), p.GetRawProperty(css.Display))
}

func TestMediaQueryGatesRuleApplication(t *testing.T) {
	sheet := css.Parse("@media (min-width: 900px) { p { color: red; } }")
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	doc.Root.AppendChild(p)

	narrow := BuildStyleTree(doc.Root, sheet, mediaquery.Context{WindowWidth: 600})
	node := findByTag(narrow, "p")
	require.NotNil(t, node)
	assert.Equal(t, css.Color.InitialValue(), node.GetRawProperty(css.Color))

	wide := BuildStyleTree(doc.Root, sheet, mediaquery.Context{WindowWidth: 900})
	node = findByTag(wide, "p")
	require.NotNil(t, node)
	assert.Equal(t, "red", node.GetRawProperty(css.Color))
}

func TestVarExpressionResolvesFromAncestorCustomProperty(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	doc.Root.AppendChild(p)

	sheet := css.Parse("html { --brand: teal; } p { color: var(--brand); }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	require.NotNil(t, node)
	assert.Equal(t, "teal", node.GetRawProperty(css.Color))
}

func TestVarExpressionFallsBackWhenUnresolved(t *testing.T) {
	doc := &dom.Document{Root: dom.NewElement("html")}
	p := dom.NewElement("p")
	doc.Root.AppendChild(p)

	sheet := css.Parse("p { color: var(--missing, coral); }")
	tree := BuildStyleTree(doc.Root, sheet, mediaquery.Context{})
	node := findByTag(tree, "p")
	require.NotNil(t, node)
	assert.Equal(t, "coral", node.GetRawProperty(css.Color))
}
