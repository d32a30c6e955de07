package layout

import (
	"gocko/dom"
	"gocko/style"
)

// Build constructs the layout tree from a styled tree's root: pre-order
// walk, display:none elision, <img>-without-src alt-text fallback, and
// anonymous-block grouping of inline runs mixed with block siblings. A
// display:none root yields a nil tree, which callers treat as a
// successfully laid out empty page rather than an error.
func Build(root *style.Node) *Box {
	return buildNode(root)
}

func buildNode(n *style.Node) *Box {
	if n.DOM.Type == dom.NodeText {
		return &Box{StyledNode: n, Type: TypeText, Text: n.DOM.Content}
	}

	if n.DisplayProperty() == style.DisplayNone {
		return nil
	}

	if n.Tag() == "img" {
		if src, ok := n.Attr("src"); ok && src != "" {
			box := &Box{StyledNode: n, Type: boxType(n)}
			box.ImageURL = src
			return box
		}
		alt, _ := n.Attr("alt")
		return &Box{StyledNode: n, Type: boxType(n), Children: []*Box{
			{StyledNode: n, Type: TypeText, Text: alt},
		}}
	}

	box := &Box{StyledNode: n, Type: boxType(n)}
	var children []*Box
	for _, c := range n.Children {
		if child := buildNode(c); child != nil {
			children = append(children, child)
		}
	}
	box.Children = groupAnonymousBlocks(box.Type, children)
	return box
}

func boxType(n *style.Node) Type {
	if n.DisplayProperty() == style.DisplayInline {
		return TypeInline
	}
	return TypeBlock
}

func isInlineLevel(b *Box) bool {
	return b.Type == TypeInline || b.Type == TypeText
}

// groupAnonymousBlocks wraps consecutive inline-level children of a block
// box in an anonymous block, leaving runs of block-level children (and the
// children of inline boxes) untouched.
func groupAnonymousBlocks(parentType Type, children []*Box) []*Box {
	if parentType != TypeBlock || len(children) == 0 {
		return children
	}

	hasBlock, hasInline := false, false
	for _, c := range children {
		if isInlineLevel(c) {
			hasInline = true
		} else {
			hasBlock = true
		}
	}
	if !hasBlock || !hasInline {
		return children
	}

	var out []*Box
	var run []*Box
	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, &Box{Type: TypeAnonymousBlock, Children: run})
		run = nil
	}
	for _, c := range children {
		if isInlineLevel(c) {
			run = append(run, c)
		} else {
			flush()
			out = append(out, c)
		}
	}
	flush()
	return out
}
