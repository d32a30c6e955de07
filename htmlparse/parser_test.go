package htmlparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *Document {
	t.Helper()
	d := &Document{}
	require.NoError(t, d.parse(context.Background(), src))
	return d
}

func TestParseBasicTree(t *testing.T) {
	d := parse(t, `<div id="a"><p>hello <b>world</b></p></div>`)
	div := d.root.Children[0]
	assert.Equal(t, "div", div.Tag)
	assert.Equal(t, "a", div.GetAttr("id"))
	p := div.Children[0]
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, "hello ", p.Children[0].Content)
	assert.Equal(t, "b", p.Children[1].Tag)
}

func TestParseVoidElementsHaveNoChildren(t *testing.T) {
	d := parse(t, `<div><img src="x.png"><p>after</p></div>`)
	div := d.root.Children[0]
	require.Len(t, div.Children, 2)
	assert.Empty(t, div.Children[0].Children)
	assert.Equal(t, "img", div.Children[0].Tag)
}

func TestParseImplicitlyClosesParagraph(t *testing.T) {
	d := parse(t, `<div><p>one<p>two</div>`)
	div := d.root.Children[0]
	require.Len(t, div.Children, 2)
	assert.Equal(t, "p", div.Children[0].Tag)
	assert.Equal(t, "p", div.Children[1].Tag)
}

func TestParseUnmatchedClosingTagTolerated(t *testing.T) {
	d := parse(t, `<div></span><p>x</p></div>`)
	div := d.root.Children[0]
	require.Len(t, div.Children, 1)
	assert.Equal(t, "p", div.Children[0].Tag)
}

func TestParseScriptContentPreservedVerbatim(t *testing.T) {
	d := parse(t, `<script>if (a < b) { alert("x"); }</script>`)
	script := d.root.Children[0]
	assert.Equal(t, "script", script.Tag)
	require.Len(t, script.Children, 1)
	assert.Equal(t, `if (a < b) { alert("x"); }`, script.Children[0].Content)
}

func TestParseCommentProducesCommentNode(t *testing.T) {
	d := parse(t, `<div><!-- note --></div>`)
	div := d.root.Children[0]
	require.Len(t, div.Children, 1)
	assert.Equal(t, "comment", div.Children[0].Type.String())
	assert.Equal(t, " note ", div.Children[0].Content)
}

func TestParseDoctypeSetsQuirksOnPublicID(t *testing.T) {
	d := parse(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN"><html></html>`)
	require.NotNil(t, d.doctype)
	assert.Equal(t, "html", d.doctype.Name)
	assert.True(t, d.Quirks)
}

func TestParseHTML5DoctypeIsNotQuirks(t *testing.T) {
	d := parse(t, `<!DOCTYPE html><div></div>`)
	require.NotNil(t, d.doctype)
	assert.False(t, d.Quirks)
}

func TestParseSkipsSVGContent(t *testing.T) {
	d := parse(t, `<div><svg><circle r="1"/></svg><p>after</p></div>`)
	div := d.root.Children[0]
	require.Len(t, div.Children, 1)
	assert.Equal(t, "p", div.Children[0].Tag)
}
