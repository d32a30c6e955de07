// Package dom provides the HTML Document Object Model the rest of the
// engine styles, lays out, and paints. Tree construction itself is a
// collaborator's job (see the htmlparse package's Parser interface); this
// package only defines the tree shape and the handful of traversal helpers
// the style and layout engines need.
package dom

import "strings"

// NodeType discriminates the tagged union a Node represents.
type NodeType int

const (
	NodeElement NodeType = iota
	NodeText
	NodeComment
)

func (t NodeType) String() string {
	switch t {
	case NodeElement:
		return "element"
	case NodeText:
		return "text"
	case NodeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is a tagged union over {Element, Text, Comment}. Exactly one of the
// type-specific fields is meaningful, selected by Type.
type Node struct {
	Type NodeType

	// Element fields.
	Tag        string
	Attributes map[string]string
	Children   []*Node

	// Text/Comment fields.
	Content string

	// Parent is a non-owning back-reference; every tree here is a strict
	// projection of the DOM, so this can never introduce a cycle.
	Parent *Node

	// ComputedStyle is attached by the style engine as *style.Node; kept as
	// interface{} here to avoid a dom -> style import cycle.
	ComputedStyle interface{}
}

// NewElement creates an element node with no attributes or children.
func NewElement(tag string) *Node {
	return &Node{Type: NodeElement, Tag: tag, Attributes: map[string]string{}}
}

// NewText creates a text node.
func NewText(content string) *Node {
	return &Node{Type: NodeText, Content: content}
}

// NewComment creates a comment node.
func NewComment(content string) *Node {
	return &Node{Type: NodeComment, Content: content}
}

// AppendChild appends child to n's children and fixes up its parent pointer.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// GetAttr returns an attribute value, or "" if absent. Attribute lookup is
// case-sensitive, matching the spec's data model.
func (n *Node) GetAttr(name string) string {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[name]
}

// HasAttr reports whether the attribute is present at all (distinct from
// present-but-empty being indistinguishable from absent via GetAttr).
func (n *Node) HasAttr(name string) bool {
	if n.Attributes == nil {
		return false
	}
	_, ok := n.Attributes[name]
	return ok
}

// IsElement reports whether n is an Element node with the given tag name
// (case-insensitive, as HTML tag names are).
func (n *Node) IsElement(tag string) bool {
	return n.Type == NodeElement && strings.EqualFold(n.Tag, tag)
}

// TextContent returns the concatenated text of all descendant text nodes,
// in document order.
func (n *Node) TextContent() string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(node *Node) {
		switch node.Type {
		case NodeText:
			b.WriteString(node.Content)
		case NodeElement:
			for _, c := range node.Children {
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// DoctypeInfo captures doctype metadata, when present.
type DoctypeInfo struct {
	Name     string
	PublicID string
	SystemID string
}

// Document owns the root <html> element plus doctype metadata and the
// quirks-mode flag a parser may have derived from it.
type Document struct {
	Root    *Node // the <html> element
	Doctype *DoctypeInfo
	Quirks  bool
}

// HTMLElement returns the document's root <html> element.
func (d *Document) HTMLElement() *Node {
	return d.Root
}
