package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []TokenKind {
	ks := make([]TokenKind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeKeywordVsIdentifier(t *testing.T) {
	toks := Tokenize("let x = 1")
	require.Len(t, toks, 5) // let, x, =, 1, EOF
	assert.Equal(t, TokenKeyword, toks[0].Kind)
	assert.Equal(t, "let", toks[0].Text)
	assert.Equal(t, TokenIdentifier, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Text)
	assert.Equal(t, TokenPunctuator, toks[2].Kind)
	assert.Equal(t, "=", toks[2].Text)
	assert.Equal(t, TokenNumber, toks[3].Kind)
	assert.Equal(t, "1", toks[3].Text)
	assert.Equal(t, TokenEOF, toks[4].Kind)
}

func TestTokenizeSkipsLineAndBlockComments(t *testing.T) {
	toks := Tokenize("a // trailing comment\n/* block\ncomment */ b")
	require.Len(t, toks, 3)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "b", toks[1].Text)
	assert.Equal(t, TokenEOF, toks[2].Kind)
}

func TestTokenizeStringLiteralsBothQuoteStyles(t *testing.T) {
	toks := Tokenize(`"double" 'single'`)
	require.Len(t, toks, 3)
	assert.Equal(t, TokenString, toks[0].Kind)
	assert.Equal(t, `"double"`, toks[0].Text)
	assert.Equal(t, TokenString, toks[1].Kind)
	assert.Equal(t, `'single'`, toks[1].Text)
}

func TestTokenizeTemplateLiteralWithInterpolation(t *testing.T) {
	toks := Tokenize("`hi ${name}!`")
	require.Len(t, toks, 2)
	assert.Equal(t, TokenTemplate, toks[0].Kind)
	assert.Equal(t, "`hi ${name}!`", toks[0].Text)
}

func TestTokenizeMultiCharPunctuatorsPreferLongestMatch(t *testing.T) {
	toks := Tokenize("a === b")
	require.Len(t, toks, 4)
	assert.Equal(t, TokenPunctuator, toks[1].Kind)
	assert.Equal(t, "===", toks[1].Text)
}

func TestTokenizeArrowFunctionPunctuator(t *testing.T) {
	toks := Tokenize("x => x")
	require.Len(t, toks, 4)
	assert.Equal(t, "=>", toks[1].Text)
}

func TestSourceRoundTripsTokenText(t *testing.T) {
	src := "let x = 1"
	toks := Tokenize(src)
	assert.Equal(t, "let x = 1", Source(toks))
}

func TestTokenizeEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks := Tokenize("")
	require.Len(t, toks, 1)
	assert.Equal(t, TokenEOF, toks[0].Kind)
}
