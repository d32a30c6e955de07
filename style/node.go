// Package style builds the styled tree: a DOM-shaped tree where every
// element carries the ordered list of declarations that matched it, ready
// for property resolution. Selector matching lives in the selector
// sub-package; this package owns the cascade and the per-property getters.
package style

import (
	"strings"

	"gocko/css"
	"gocko/dom"
)

type declaration struct {
	id    css.PropertyId
	value string
}

type customDecl struct {
	name  string
	value string
}

// Node mirrors one dom.Node, carrying the declarations the cascade matched
// for it. Non-element nodes (text, comment) carry no declarations of their
// own; property lookups on them delegate to the parent, mirroring the DOM's
// inheritance model for anonymous text runs.
type Node struct {
	DOM      *dom.Node
	Parent   *Node
	Children []*Node

	properties       []declaration
	customProperties []customDecl
}

// getParentRawProperty returns the parent's raw property, or the property's
// built-in initial value at the root.
func getParentRawProperty(n *Node, id css.PropertyId) string {
	if n.Parent != nil {
		return n.Parent.GetRawProperty(id)
	}
	return id.InitialValue()
}

// GetRawProperty scans n's matched declarations from newest to oldest
// (last-write-wins, since specificity plays no role in this cascade),
// applying the inherit/initial/unset/currentcolor/var() keyword rules.
// Text nodes with no declarations of their own delegate to the parent.
func (n *Node) GetRawProperty(id css.PropertyId) string {
	raw, found := n.findOwnDeclaration(id)

	if !found && n.DOM.Type == dom.NodeText && n.Parent != nil {
		return n.Parent.GetRawProperty(id)
	}

	if !found || raw == "unset" {
		if id.IsInherited() && n.Parent != nil {
			return getParentRawProperty(n, id)
		}
		return id.InitialValue()
	}

	if raw == "initial" {
		return id.InitialValue()
	}

	if raw == "inherit" {
		return getParentRawProperty(n, id)
	}

	if raw == "currentcolor" {
		if id == css.Color {
			return getParentRawProperty(n, id)
		}
		return n.GetRawProperty(css.Color)
	}

	if strings.HasPrefix(raw, "var(") && strings.Contains(raw, ")") {
		return n.resolveVarExpression(raw)
	}

	return raw
}

func (n *Node) findOwnDeclaration(id css.PropertyId) (string, bool) {
	for i := len(n.properties) - 1; i >= 0; i-- {
		if n.properties[i].id == id {
			return n.properties[i].value, true
		}
	}
	return "", false
}

func (n *Node) resolveVarExpression(raw string) string {
	inner := raw[len("var(") : strings.LastIndex(raw, ")")]
	name, fallback, hasFallback := strings.Cut(inner, ",")
	name = strings.TrimSpace(name)

	if value, ok := n.ResolveVariable(name); ok {
		return value
	}
	if hasFallback {
		fallback = strings.TrimSpace(fallback)
		if fallback != "" {
			return fallback
		}
	}
	return raw
}

// ResolveVariable walks up the parent chain looking for the nearest
// `--name` custom property and returns its value verbatim. A var() inside
// that value is not expanded, so one custom property never resolves
// through another; a circular pair yields the unexpanded var() text, not
// the property's initial value.
func (n *Node) ResolveVariable(name string) (string, bool) {
	for cur := n; cur != nil; cur = cur.Parent {
		for i := len(cur.customProperties) - 1; i >= 0; i-- {
			if cur.customProperties[i].name == name {
				return cur.customProperties[i].value, true
			}
		}
	}
	return "", false
}
