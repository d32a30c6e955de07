package style

import (
	"gocko/css"
	"gocko/css/mediaquery"
	"gocko/dom"
	"gocko/style/selector"
)

// elementView adapts *Node to selector.Element without Node itself having
// to implement a Parent() method that would collide with its Parent field.
type elementView struct{ n *Node }

func (e elementView) Tag() string { return e.n.Tag() }

func (e elementView) Attr(name string) (string, bool) { return e.n.Attr(name) }

func (e elementView) Parent() selector.Element {
	if e.n.Parent == nil {
		return nil
	}
	return elementView{e.n.Parent}
}

func (e elementView) IsRoot() bool { return e.n.Parent == nil }

// Tag returns the element's tag name ("" for non-element nodes).
func (n *Node) Tag() string { return n.DOM.Tag }

// Attr returns an element's attribute value.
func (n *Node) Attr(name string) (string, bool) {
	if n.DOM.Attributes == nil {
		return "", false
	}
	v, ok := n.DOM.Attributes[name]
	return v, ok
}

func isMatch(n *Node, sel string) bool {
	return selector.Matches(elementView{n}, sel)
}

// BuildStyleTree walks root in pre-order, building a parallel Node tree and
// running the cascade (§4.4) for every element: stylesheet-normal,
// inline-normal, stylesheet-important, inline-important, in that order, so
// last-write-wins scanning gives inline !important the final say.
func BuildStyleTree(root *dom.Node, sheet *css.Stylesheet, ctx mediaquery.Context) *Node {
	n := &Node{DOM: root}
	buildStyleTreeInto(n, sheet, ctx)
	return n
}

func buildStyleTreeInto(n *Node, sheet *css.Stylesheet, ctx mediaquery.Context) {
	if n.DOM.Type != dom.NodeElement {
		return
	}

	n.Children = make([]*Node, 0, len(n.DOM.Children))
	for _, child := range n.DOM.Children {
		childNode := &Node{DOM: child, Parent: n}
		n.Children = append(n.Children, childNode)
		buildStyleTreeInto(childNode, sheet, ctx)
	}

	n.properties, n.customProperties = matchingProperties(n, sheet, ctx)
}

// matchingProperties collects every declaration that applies to n, in the
// corrected cascade order (see BuildStyleTree's doc / SPEC_FULL §9 open question 1).
func matchingProperties(n *Node, sheet *css.Stylesheet, ctx mediaquery.Context) ([]declaration, []customDecl) {
	var props []declaration
	var custom []customDecl

	ruleApplies := func(rule *css.Rule) bool {
		if rule.MediaQuery != nil && !rule.MediaQuery.Evaluate(ctx) {
			return false
		}
		for _, sel := range rule.Selectors {
			if isMatch(n, sel) {
				return true
			}
		}
		return false
	}

	// Pass 1: stylesheet-normal.
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		if !ruleApplies(rule) {
			continue
		}
		for id, v := range rule.Declarations {
			props = append(props, declaration{id, v})
		}
		for name, v := range rule.CustomProperties {
			custom = append(custom, customDecl{name, v})
		}
	}

	// Pass 2: inline style attribute, normal declarations only (its
	// !important ones are applied in pass 4).
	var inlineRule css.Rule
	hasInline := false
	if styleAttr, ok := n.Attr("style"); ok {
		inlineRule = css.ParseInlineDeclarations(styleAttr)
		hasInline = true
		for id, v := range inlineRule.Declarations {
			props = append(props, declaration{id, v})
		}
		for name, v := range inlineRule.CustomProperties {
			custom = append(custom, customDecl{name, v})
		}
	}

	// Pass 3: stylesheet !important.
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		if len(rule.ImportantDeclarations) == 0 || !ruleApplies(rule) {
			continue
		}
		for id, v := range rule.ImportantDeclarations {
			props = append(props, declaration{id, v})
		}
	}

	// Pass 4: inline !important, applied last so it has final say.
	if hasInline {
		for id, v := range inlineRule.ImportantDeclarations {
			props = append(props, declaration{id, v})
		}
	}

	return props, custom
}
