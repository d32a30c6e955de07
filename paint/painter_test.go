package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocko/css"
	"gocko/css/mediaquery"
	"gocko/css/values"
	"gocko/dom"
	"gocko/layout"
	"gocko/render"
	"gocko/style"
)

func buildPage(t *testing.T, html *dom.Node, cssSrc string) (*layout.Box, *style.Node) {
	t.Helper()
	sheet := css.Parse(cssSrc)
	styled := style.BuildStyleTree(html, sheet, mediaquery.Context{})
	tree := layout.Build(styled)
	tree = layout.CollapseWhitespace(tree)
	layout.Compute(tree, layout.Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: layout.NoFonts{}})
	return tree, styled
}

func TestPaintUsesHTMLBackgroundWhenSet(t *testing.T) {
	html := dom.NewElement("html")
	html.AppendChild(dom.NewElement("body"))

	tree, styled := buildPage(t, html, "html { background-color: red; } body { background-color: blue; }")

	rec := render.NewRecorder()
	Paint(tree, styled, nil, ClipRect{}, rec)

	require.NotEmpty(t, rec.Commands)
	clear := rec.Commands[0]
	assert.Equal(t, render.CmdClear, clear.Kind)
	red, err := values.ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, red, clear.Color)
}

func TestPaintFallsBackToBodyBackground(t *testing.T) {
	html := dom.NewElement("html")
	html.AppendChild(dom.NewElement("body"))

	tree, styled := buildPage(t, html, "body { background-color: blue; }")

	rec := render.NewRecorder()
	Paint(tree, styled, nil, ClipRect{}, rec)

	blue, err := values.ParseColor("blue")
	require.NoError(t, err)
	assert.Equal(t, blue, rec.Commands[0].Color)
}

func TestPaintFallsBackToWhiteWithNoBackgrounds(t *testing.T) {
	html := dom.NewElement("html")
	html.AppendChild(dom.NewElement("body"))

	tree, styled := buildPage(t, html, "")

	rec := render.NewRecorder()
	Paint(tree, styled, nil, ClipRect{}, rec)

	assert.Equal(t, values.White(), rec.Commands[0].Color)
}

func TestPaintSkipsFullyTransparentNoBorderBox(t *testing.T) {
	html := dom.NewElement("html")
	div := dom.NewElement("div")
	html.AppendChild(div)

	tree, styled := buildPage(t, html, "")

	rec := render.NewRecorder()
	Paint(tree, styled, nil, ClipRect{}, rec)

	for _, c := range rec.Commands {
		assert.NotEqual(t, render.CmdDrawRect, c.Kind)
	}
}

func TestPaintEmitsDrawRectForStyledBox(t *testing.T) {
	html := dom.NewElement("html")
	div := dom.NewElement("div")
	html.AppendChild(div)

	tree, styled := buildPage(t, html, "div { display: block; background-color: green; width: 100px; height: 50px; }")

	rec := render.NewRecorder()
	Paint(tree, styled, nil, ClipRect{}, rec)

	var found bool
	for _, c := range rec.Commands {
		if c.Kind == render.CmdDrawRect {
			found = true
			green, err := values.ParseColor("green")
			require.NoError(t, err)
			assert.Equal(t, green, c.Color)
			assert.Equal(t, 100.0, c.Rect.W)
			assert.Equal(t, 50.0, c.Rect.H)
		}
	}
	assert.True(t, found, "expected a DrawRect command for the styled div")
}

func TestPaintEmitsDrawTextForTextBox(t *testing.T) {
	html := dom.NewElement("html")
	html.AppendChild(dom.NewText("hello"))

	tree, styled := buildPage(t, html, "")

	rec := render.NewRecorder()
	Paint(tree, styled, nil, ClipRect{}, rec)

	var found bool
	for _, c := range rec.Commands {
		if c.Kind == render.CmdDrawText {
			found = true
			assert.Equal(t, "hello", c.Text)
		}
	}
	assert.True(t, found, "expected a DrawText command for the text box")
}

func TestPaintClipPrunesOffscreenSubtree(t *testing.T) {
	html := dom.NewElement("html")
	div := dom.NewElement("div")
	html.AppendChild(div)

	tree, styled := buildPage(t, html, "div { background-color: green; width: 100px; height: 50px; }")

	rec := render.NewRecorder()
	// Clip entirely below the whole page's border box, pruning the walk
	// before it ever reaches the div.
	Paint(tree, styled, nil, ClipRect{X: 0, Y: 1000, W: 800, H: 10, Active: true}, rec)

	for _, c := range rec.Commands {
		assert.NotEqual(t, render.CmdDrawRect, c.Kind)
	}
}
