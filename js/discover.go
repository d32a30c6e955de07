package js

import "gocko/dom"

// Script is one discovered <script> element: its source attribute (empty
// for inline scripts) and, for inline scripts, its tokenised body.
type Script struct {
	Src    string
	Tokens []Token
}

// Discover finds every <script> element under root, in document order,
// tokenising inline bodies. External scripts (src set) are reported with a
// nil Tokens — fetching and tokenising their body is a caller concern, this
// only walks the tree that's already in hand.
func Discover(root *dom.Node) []Script {
	var scripts []Script
	for _, el := range root.GetElementsByTagName("script") {
		if src := el.GetAttr("src"); src != "" {
			scripts = append(scripts, Script{Src: src})
			continue
		}
		scripts = append(scripts, Script{Tokens: Tokenize(el.TextContent())})
	}
	return scripts
}
