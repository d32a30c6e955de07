// Package layout builds the layout tree: a box-model-positioned tree
// derived from a styled tree, ready for painting. It owns tree
// construction, whitespace collapsing, text-transform, box-model geometry,
// and inline line-wrapping.
package layout

import "gocko/style"

// Type discriminates what a Box represents.
type Type int

const (
	TypeBlock Type = iota
	TypeInline
	TypeAnonymousBlock
	TypeText
)

// Box is one node of the layout tree: a positioned, sized box plus
// whichever of {styled node, text} is relevant for its Type. Anonymous
// blocks carry no StyledNode.
type Box struct {
	StyledNode *style.Node
	Type       Type
	Children   []*Box

	// Text is the post-whitespace-collapse, post-text-transform content of
	// a TypeText box only.
	Text string

	// Content-box geometry, device pixels.
	X, Y, Width, Height float64

	MarginTop, MarginRight, MarginBottom, MarginLeft   float64
	BorderTop, BorderRight, BorderBottom, BorderLeft    float64
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft float64

	// ImageURL is set on boxes backed by an <img> with a resolvable src.
	ImageURL string
}

// ContentRect returns the box's content-box geometry.
func (b *Box) ContentRect() (x, y, w, h float64) {
	return b.X, b.Y, b.Width, b.Height
}

// PaddingRect returns the padding-box geometry (content + padding).
func (b *Box) PaddingRect() (x, y, w, h float64) {
	return b.X - b.PaddingLeft, b.Y - b.PaddingTop,
		b.Width + b.PaddingLeft + b.PaddingRight,
		b.Height + b.PaddingTop + b.PaddingBottom
}

// BorderRect returns the border-box geometry (padding + border).
func (b *Box) BorderRect() (x, y, w, h float64) {
	x, y, w, h = b.PaddingRect()
	return x - b.BorderLeft, y - b.BorderTop,
		w + b.BorderLeft + b.BorderRight,
		h + b.BorderTop + b.BorderBottom
}

// MarginRect returns the margin-box geometry (border + margin).
func (b *Box) MarginRect() (x, y, w, h float64) {
	x, y, w, h = b.BorderRect()
	return x - b.MarginLeft, y - b.MarginTop,
		w + b.MarginLeft + b.MarginRight,
		h + b.MarginTop + b.MarginBottom
}

// IsAnonymous reports whether the box has no backing styled node.
func (b *Box) IsAnonymous() bool { return b.Type == TypeAnonymousBlock }
