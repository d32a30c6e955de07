package engine

import "gocko/css"

// defaultStylesheetSource is the engine's built-in user-agent stylesheet,
// spliced in before any document styles. original_source/css/default.cpp
// only captures the loader (css::parse(kDefaultCss)); the constant itself
// wasn't part of the retrieved source, so this is authored from the
// standard CSS 2.2 §18.1 UA defaults it would have held.
const defaultStylesheetSource = `
html, address, blockquote, body, dd, div, dl, dt, fieldset, form,
frame, frameset, h1, h2, h3, h4, h5, h6, noframes, ol, p, ul, center,
dir, hr, menu, pre, li, table, tr, section, article, header, footer,
nav, figure, figcaption { display: block; }

head, script, style, title, link, meta { display: none; }

span, a, b, i, em, strong, small, big, code, tt, kbd, samp, var,
sub, sup, u, s, strike, label, img, abbr, cite, q, mark, time { display: inline; }

br { display: inline; }

h1 { font-size: 2em; font-weight: bold; margin-top: 0.67em; margin-bottom: 0.67em; }
h2 { font-size: 1.5em; font-weight: bold; margin-top: 0.83em; margin-bottom: 0.83em; }
h3 { font-size: 1.17em; font-weight: bold; margin-top: 1em; margin-bottom: 1em; }
h4 { font-size: 1em; font-weight: bold; margin-top: 1.33em; margin-bottom: 1.33em; }
h5 { font-size: 0.83em; font-weight: bold; margin-top: 1.67em; margin-bottom: 1.67em; }
h6 { font-size: 0.67em; font-weight: bold; margin-top: 2.33em; margin-bottom: 2.33em; }

p, dl, ol, ul, pre, blockquote, figure { margin-top: 1em; margin-bottom: 1em; }
body { margin-top: 8px; margin-right: 8px; margin-bottom: 8px; margin-left: 8px; }

b, strong { font-weight: bold; }
i, em, cite, var, address { font-style: italic; }
pre { white-space: pre; }
a { color: #0000ee; text-decoration-line: underline; }
`

// DefaultStylesheet parses the built-in user-agent stylesheet fresh, since
// css.Stylesheet carries no guarantee of being safe to share/mutate across
// navigations.
func DefaultStylesheet() *css.Stylesheet {
	return css.Parse(defaultStylesheetSource)
}
