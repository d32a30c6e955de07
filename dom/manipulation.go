package dom

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// ======================================================================================
// HTML ENTITIES
// ======================================================================================

// DecodeEntities decodes HTML entities in a string.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// EncodeEntities encodes special characters as HTML entities.
func EncodeEntities(s string) string {
	return html.EscapeString(s)
}

// ======================================================================================
// NODE MANIPULATION
// ======================================================================================

// RemoveChild removes a child node.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return true
		}
	}
	return false
}

// InsertBefore inserts a new child before the reference child.
func (n *Node) InsertBefore(newChild, refChild *Node) bool {
	for i, c := range n.Children {
		if c == refChild {
			newChildren := make([]*Node, 0, len(n.Children)+1)
			newChildren = append(newChildren, n.Children[:i]...)
			newChildren = append(newChildren, newChild)
			newChildren = append(newChildren, n.Children[i:]...)
			n.Children = newChildren
			newChild.Parent = n
			return true
		}
	}
	return false
}

// ReplaceChild replaces an old child with a new one.
func (n *Node) ReplaceChild(newChild, oldChild *Node) bool {
	for i, c := range n.Children {
		if c == oldChild {
			n.Children[i] = newChild
			newChild.Parent = n
			oldChild.Parent = nil
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the node, excluding ComputedStyle (the clone
// has not been styled yet).
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	clone := &Node{
		Type:    n.Type,
		Tag:     n.Tag,
		Content: n.Content,
	}
	if n.Attributes != nil {
		clone.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			clone.Attributes[k] = v
		}
	}

	for _, child := range n.Children {
		clone.AppendChild(child.Clone())
	}

	return clone
}

// ======================================================================================
// SERIALIZATION
// ======================================================================================

// OuterHTML returns the HTML representation of the node.
func (n *Node) OuterHTML() string {
	if n == nil {
		return ""
	}

	switch n.Type {
	case NodeText:
		return EncodeEntities(n.Content)
	case NodeComment:
		return "<!--" + n.Content + "-->"
	}

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString("=\"")
		sb.WriteString(EncodeEntities(n.Attributes[k]))
		sb.WriteString("\"")
	}

	if isVoidElement(n.Tag) {
		sb.WriteString(" />")
		return sb.String()
	}

	sb.WriteString(">")
	for _, child := range n.Children {
		sb.WriteString(child.OuterHTML())
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">")

	return sb.String()
}

// InnerHTML returns the HTML of the node's children.
func (n *Node) InnerHTML() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.OuterHTML())
	}
	return sb.String()
}

// isVoidElement returns true for HTML void elements.
func isVoidElement(tag string) bool {
	voidElements := map[string]bool{
		"area": true, "base": true, "br": true, "col": true,
		"embed": true, "hr": true, "img": true, "input": true,
		"link": true, "meta": true, "source": true, "track": true,
		"wbr": true,
	}
	return voidElements[strings.ToLower(tag)]
}

// ======================================================================================
// TREE DUMP
// ======================================================================================

// Dump renders the document in the canonical tree-dump format tests and the
// CLI compare against: a root "#document" line, then one line per node
// prefixed by "| " plus two spaces per depth level. Elements render as
// "<name>" with any attributes on their own indented lines, text nodes as
// a quoted string, comments as "<!-- text -->".
func (d *Document) Dump() string {
	var sb strings.Builder
	sb.WriteString("#document\n")
	if d.Doctype != nil {
		sb.WriteString("| ")
		sb.WriteString(dumpDoctype(d.Doctype))
		sb.WriteString("\n")
	}
	if d.Root != nil {
		d.Root.dump(&sb, 0)
	}
	return sb.String()
}

func dumpDoctype(dt *DoctypeInfo) string {
	if dt.PublicID == "" && dt.SystemID == "" {
		return fmt.Sprintf("<!DOCTYPE %s>", dt.Name)
	}
	return fmt.Sprintf("<!DOCTYPE %s %q %q>", dt.Name, dt.PublicID, dt.SystemID)
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	prefix := "| " + strings.Repeat("  ", depth)

	switch n.Type {
	case NodeElement:
		sb.WriteString(prefix)
		sb.WriteString("<")
		sb.WriteString(n.Tag)
		sb.WriteString(">\n")

		attrPrefix := "| " + strings.Repeat("  ", depth+1)
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(attrPrefix)
			sb.WriteString(k)
			sb.WriteString("=\"")
			sb.WriteString(n.Attributes[k])
			sb.WriteString("\"\n")
		}

	case NodeText:
		sb.WriteString(prefix)
		sb.WriteString("\"")
		sb.WriteString(n.Content)
		sb.WriteString("\"\n")

	case NodeComment:
		sb.WriteString(prefix)
		sb.WriteString("<!-- ")
		sb.WriteString(n.Content)
		sb.WriteString(" -->\n")
	}

	for _, child := range n.Children {
		child.dump(sb, depth+1)
	}
}
