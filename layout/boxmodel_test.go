package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocko/css"
	"gocko/css/mediaquery"
	"gocko/dom"
	"gocko/style"
)

func runLayout(t *testing.T, cssSrc string, build func() *dom.Node, opts Options) *Box {
	t.Helper()
	root := build()
	sheet := css.Parse(cssSrc)
	styled := style.BuildStyleTree(root, sheet, mediaquery.Context{})
	tree := Build(styled)
	tree = CollapseWhitespace(tree)
	Compute(tree, opts)
	return tree
}

func TestAutoMarginsCenterFixedWidthBox(t *testing.T) {
	opts := Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: NoFonts{}}
	tree := runLayout(t, "body { display: block; } div { display: block; width: 100px; margin-left: auto; margin-right: auto; }", func() *dom.Node {
		html := dom.NewElement("html")
		body := dom.NewElement("body")
		div := dom.NewElement("div")
		body.AppendChild(div)
		html.AppendChild(body)
		return html
	}, opts)

	body := tree.Children[0]
	div := body.Children[0]
	assert.Equal(t, 100.0, div.Width)
	assert.Equal(t, 350.0, div.MarginLeft)
	assert.Equal(t, 350.0, div.MarginRight)
	assert.Equal(t, body.X+350.0, div.X)
}

func TestPercentHeightAgainstIndefiniteParentFallsBackToChildren(t *testing.T) {
	opts := Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: NoFonts{}}
	tree := runLayout(t, "body { display: block; } div { display: block; height: 50%; } span { display: block; height: 40px; }", func() *dom.Node {
		html := dom.NewElement("html")
		body := dom.NewElement("body")
		div := dom.NewElement("div")
		span := dom.NewElement("span")
		div.AppendChild(span)
		body.AppendChild(div)
		html.AppendChild(body)
		return html
	}, opts)

	div := tree.Children[0].Children[0]
	assert.Equal(t, 40.0, div.Height)
}

func TestPercentHeightResolvesAtRootAgainstViewport(t *testing.T) {
	opts := Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: NoFonts{}}
	tree := runLayout(t, "html { height: 50%; }", func() *dom.Node {
		return dom.NewElement("html")
	}, opts)

	assert.Equal(t, 300.0, tree.Height)
}

func TestMaxWidthClampsResolvedWidth(t *testing.T) {
	opts := Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: NoFonts{}}
	tree := runLayout(t, "div { display: block; width: 700px; max-width: 300px; }", func() *dom.Node {
		html := dom.NewElement("html")
		div := dom.NewElement("div")
		html.AppendChild(div)
		return html
	}, opts)

	require.Len(t, tree.Children, 1)
	assert.Equal(t, 300.0, tree.Children[0].Width)
}

func TestBlockBoxesStackVertically(t *testing.T) {
	opts := Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: NoFonts{}}
	tree := runLayout(t, "div { display: block; height: 20px; }", func() *dom.Node {
		html := dom.NewElement("html")
		html.AppendChild(dom.NewElement("div"))
		html.AppendChild(dom.NewElement("div"))
		return html
	}, opts)

	require.Len(t, tree.Children, 2)
	first, second := tree.Children[0], tree.Children[1]
	assert.Equal(t, 20.0, first.Height)
	assert.Equal(t, first.Y+20.0, second.Y)
}
