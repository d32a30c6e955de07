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

// textTree builds <html>text0 text1 ...</html> as direct text-node children
// (no wrapping element), so each run becomes its own top-level Box and the
// row-wrapping cursor in inline.go operates on them directly.
func textTree(t *testing.T, texts []string, contentWidth float64) *Box {
	t.Helper()
	root := dom.NewElement("html")
	for _, txt := range texts {
		root.AppendChild(dom.NewText(txt))
	}
	sheet := css.Parse("")
	styled := style.BuildStyleTree(root, sheet, mediaquery.Context{})
	tree := Build(styled)
	tree = CollapseWhitespace(tree)
	Compute(tree, Options{ViewportWidth: contentWidth, ViewportHeight: 600, Fonts: NoFonts{}})
	return tree
}

// At 16px/NoFonts, each glyph estimates to ceil(16/2) = 8 device pixels.

func TestInlineOverflowEntirelyPastEdgeStartsNewRow(t *testing.T) {
	// "ab" is exactly 16px (2 glyphs * 8px), filling a 16px-wide line; "cd"
	// (16px) cannot share that row at all, so it moves to a fresh one.
	tree := textTree(t, []string{"ab", "cd"}, 16)

	require.Len(t, tree.Children, 2)
	first, second := tree.Children[0], tree.Children[1]
	assert.Equal(t, "ab", first.Text)
	assert.Equal(t, "cd", second.Text)
	assert.Equal(t, tree.X, second.X)
	assert.Greater(t, second.Y, first.Y)
}

func TestInlineSplittableTextSplitsAtLatestFittingSpace(t *testing.T) {
	// "cdef ghij" (72px) doesn't fit after "ab" (16px) on a 60px line, but
	// "cdef" does; the remainder "ghij" becomes a new sibling box that
	// starts the next row.
	tree := textTree(t, []string{"ab", "cdef ghij"}, 60)

	require.Len(t, tree.Children, 3)
	first, second, third := tree.Children[0], tree.Children[1], tree.Children[2]

	assert.Equal(t, "ab", first.Text)
	assert.Equal(t, "cdef", second.Text)
	assert.Equal(t, "ghij", third.Text)
	assert.Equal(t, first.Y, second.Y)
	assert.Equal(t, second.Y+second.Height, third.Y)
	assert.Equal(t, tree.X, third.X)
}

func TestBrResetsTheRow(t *testing.T) {
	root := dom.NewElement("html")
	root.AppendChild(dom.NewText("hi"))
	root.AppendChild(dom.NewElement("br"))
	root.AppendChild(dom.NewText("there"))

	sheet := css.Parse("br { display: inline; }")
	styled := style.BuildStyleTree(root, sheet, mediaquery.Context{})
	tree := Build(styled)
	tree = CollapseWhitespace(tree)
	Compute(tree, Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: NoFonts{}})

	require.Len(t, tree.Children, 3)
	hi, br, there := tree.Children[0], tree.Children[1], tree.Children[2]
	assert.Equal(t, hi.X, there.X)
	assert.Greater(t, there.Y, hi.Y)
	assert.Equal(t, there.Y, br.Y+br.Height)
}

func TestInlineRowFitsWhenWithinWidth(t *testing.T) {
	root := dom.NewElement("html")
	root.AppendChild(dom.NewText("hi"))

	sheet := css.Parse("")
	styled := style.BuildStyleTree(root, sheet, mediaquery.Context{})
	tree := Build(styled)
	tree = CollapseWhitespace(tree)
	Compute(tree, Options{ViewportWidth: 800, ViewportHeight: 600, Fonts: NoFonts{}})

	require.Len(t, tree.Children, 1)
	assert.Equal(t, tree.Y, tree.Children[0].Y)
}
