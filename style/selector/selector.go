// Package selector implements CSS selector matching against a styled tree.
// There is no specificity model here: the engine resolves cascade conflicts
// purely by declaration order, so matching only needs a yes/no predicate.
package selector

import "strings"

// Element is the minimal view of a styled node that matching needs: its own
// tag/attributes and a walk up to its parent. Kept independent of the style
// package's concrete type so selector has no import cycle back to it.
type Element interface {
	Tag() string
	Attr(name string) (string, bool)
	Parent() Element
	IsRoot() bool
}

// Matches reports whether selector matches element, per CSS selector syntax:
// descendant (" ") and child (">") combinators, the universal selector "*",
// type selectors, ".class" chains (optionally tag-qualified), "#id", "[attr]"
// / "[attr=value]" (chainable), and the :link/:any-link/:root pseudo-classes.
func Matches(element Element, selector string) bool {
	sel, pseudoClass, hasPseudo := splitOnce(selector, ':')

	if strings.Contains(sel, ">") {
		parts := splitAndTrim(sel, ">")
		sel = parts[len(parts)-1]
		ancestorParts := parts[:len(parts)-1]
		reverse(ancestorParts)

		current := element.Parent()
		for _, part := range ancestorParts {
			if strings.Contains(part, " ") {
				return false
			}
			if current == nil || !Matches(current, part) {
				return false
			}
			current = current.Parent()
		}
	}

	if strings.Contains(sel, " ") {
		parts := splitAndTrim(sel, " ")
		sel = parts[len(parts)-1]
		ancestorParts := parts[:len(parts)-1]
		reverse(ancestorParts)

		current := element.Parent()
		for _, part := range ancestorParts {
			for current != nil && !Matches(current, part) {
				current = current.Parent()
			}
			if current == nil {
				return false
			}
			current = current.Parent()
		}
	}

	if hasPseudo {
		switch pseudoClass {
		case "link", "any-link":
			if _, ok := element.Attr("href"); !ok {
				return false
			}
			if element.Tag() != "a" && element.Tag() != "area" {
				return false
			}
			if sel == "" {
				return true
			}
		case "root":
			if !element.IsRoot() {
				return false
			}
			if sel == "" {
				return true
			}
		default:
			return false
		}
	}

	if sel == "*" {
		return true
	}

	if element.Tag() == sel {
		return true
	}

	if idx := strings.IndexByte(sel, '.'); idx != -1 {
		classAttr, ok := element.Attr("class")
		if !ok {
			return false
		}
		if idx != 0 && sel[:idx] != element.Tag() {
			return false
		}
		for _, cls := range strings.Split(sel[idx+1:], ".") {
			if !hasClass(classAttr, cls) {
				return false
			}
		}
		return true
	}

	if strings.HasPrefix(sel, "#") {
		id, ok := element.Attr("id")
		return ok && id == sel[1:]
	}

	if strings.HasPrefix(sel, "[") && strings.Contains(sel, "]") {
		body := sel[1:]
		attr, rest, hasRest := splitOnce(body, ']')
		if hasRest && rest != "" && !Matches(element, rest) {
			return false
		}
		key, value, hasValue := splitOnce(attr, '=')
		if !hasValue {
			_, ok := element.Attr(key)
			return ok
		}
		got, ok := element.Attr(key)
		return ok && got == value
	}

	return false
}

func hasClass(classes, needle string) bool {
	for _, cls := range strings.Fields(classes) {
		if cls == needle {
			return true
		}
	}
	return false
}

// splitOnce splits s on the first occurrence of sep, reporting whether sep
// was found. Mirrors util::split_once's semantics from the reference parser.
func splitOnce(s string, sep byte) (before, after string, found bool) {
	idx := strings.IndexByte(s, sep)
	if idx == -1 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
