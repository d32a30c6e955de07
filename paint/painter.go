// Package paint walks a layout tree in pre-order and emits drawing commands
// to a render.Sink, implementing spec §4.7.
package paint

import (
	"gocko/css"
	"gocko/css/values"
	"gocko/layout"
	"gocko/render"
	"gocko/style"
)

// ImageSource resolves an already-fetched image's pixel buffer for blitting.
// A nil ImageSource makes every <img> box paint nothing.
type ImageSource interface {
	Pixels(url string) (rgba []byte, ok bool)
}

// ClipRect is an optional global clip applied before descending into any
// box; an empty ClipRect (zero value) means "no clipping".
type ClipRect struct {
	X, Y, W, H float64
	Active     bool
}

func (c ClipRect) intersect(r render.Rect) (render.Rect, bool) {
	if !c.Active {
		return r, true
	}
	x0 := max(c.X, r.X)
	y0 := max(c.Y, r.Y)
	x1 := min(c.X+c.W, r.X+r.W)
	y1 := min(c.Y+c.H, r.Y+r.H)
	if x1 <= x0 || y1 <= y0 {
		return render.Rect{}, false
	}
	return render.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Paint emits the page's drawing commands to sink: first the html/body
// background-clear special case (CSS 2.2 §14.2), then a pre-order walk of
// the tree.
func Paint(tree *layout.Box, root *style.Node, images ImageSource, clip ClipRect, sink render.Sink) {
	sink.Clear(backgroundClearColor(root))
	if tree == nil {
		return
	}
	paintBox(tree, images, clip, sink)
}

// backgroundClearColor implements the special html/body background rule:
// the <html> element's background if non-transparent, else <body>'s, else
// white.
func backgroundClearColor(root *style.Node) values.Color {
	if root == nil {
		return values.White()
	}
	if c := root.ColorProperty(css.BackgroundColor); !c.IsTransparent() {
		return c
	}
	for _, child := range root.Children {
		if child.Tag() == "body" {
			if c := child.ColorProperty(css.BackgroundColor); !c.IsTransparent() {
				return c
			}
			break
		}
	}
	return values.White()
}

// paintBox emits root's own commands (if any) then recurses into children,
// pruning subtrees whose border-box falls entirely outside clip.
func paintBox(b *layout.Box, images ImageSource, clip ClipRect, sink render.Sink) {
	bx, by, bw, bh := b.BorderRect()
	if _, ok := clip.intersect(render.Rect{X: bx, Y: by, W: bw, H: bh}); !ok {
		return
	}

	switch {
	case b.IsAnonymous():
		// no self-draw

	case b.Type == layout.TypeText:
		paintText(b, sink)

	case b.ImageURL != "":
		paintImage(b, images, sink)

	default:
		paintBoxDecoration(b, sink)
	}

	for _, c := range b.Children {
		paintBox(c, images, clip, sink)
	}
}

func paintText(b *layout.Box, sink render.Sink) {
	n := b.StyledNode
	families := n.FontFamilyProperty()
	size := n.FontSizeProperty()
	color := n.ColorProperty(css.Color)

	ts := render.TextStyle{
		Italic: n.FontStyleProperty() != style.FontStyleNormal,
		Bold:   n.FontWeightProperty().Value >= 700,
	}
	for _, line := range n.TextDecorationLineProperty() {
		switch line {
		case style.TextDecorationLineUnderline:
			ts.Underline = true
		case style.TextDecorationLineOverline:
			ts.Overline = true
		case style.TextDecorationLineThrough:
			ts.Strikethrough = true
		}
	}

	sink.DrawText(render.Point{X: b.X, Y: b.Y}, b.Text, families, size, ts, color)
}

func paintImage(b *layout.Box, images ImageSource, sink render.Sink) {
	if images == nil {
		return
	}
	pixels, ok := images.Pixels(b.ImageURL)
	if !ok {
		return
	}
	sink.DrawPixels(render.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}, pixels)
}

// paintBoxDecoration draws the padding-box fill and per-side borders.
// Fully-transparent backgrounds with no border emit no command at all.
func paintBoxDecoration(b *layout.Box, sink render.Sink) {
	n := b.StyledNode
	fill := n.ColorProperty(css.BackgroundColor)
	borders := render.Borders{
		Top:    borderSide(n, css.BorderTopWidth, css.BorderTopStyle, css.BorderTopColor, b.BorderTop),
		Right:  borderSide(n, css.BorderRightWidth, css.BorderRightStyle, css.BorderRightColor, b.BorderRight),
		Bottom: borderSide(n, css.BorderBottomWidth, css.BorderBottomStyle, css.BorderBottomColor, b.BorderBottom),
		Left:   borderSide(n, css.BorderLeftWidth, css.BorderLeftStyle, css.BorderLeftColor, b.BorderLeft),
	}
	hasBorder := borders.Top.Width > 0 || borders.Right.Width > 0 || borders.Bottom.Width > 0 || borders.Left.Width > 0
	if fill.IsTransparent() && !hasBorder {
		return
	}

	corners := render.Corners{
		TopLeft:     n.BorderWidthProperty(css.BorderTopLeftRadius),
		TopRight:    n.BorderWidthProperty(css.BorderTopRightRadius),
		BottomRight: n.BorderWidthProperty(css.BorderBottomRightRadius),
		BottomLeft:  n.BorderWidthProperty(css.BorderBottomLeftRadius),
	}

	px, py, pw, ph := b.PaddingRect()
	sink.DrawRect(render.Rect{X: px, Y: py, W: pw, H: ph}, fill, borders, corners)
}

func borderSide(n *style.Node, widthID, styleID, colorID css.PropertyId, resolvedWidth float64) render.BorderSide {
	styleName := "none"
	switch n.BorderStyleProperty(styleID) {
	case style.BorderStyleDotted:
		styleName = "dotted"
	case style.BorderStyleDashed:
		styleName = "dashed"
	case style.BorderStyleSolid:
		styleName = "solid"
	case style.BorderStyleDouble:
		styleName = "double"
	case style.BorderStyleGroove:
		styleName = "groove"
	case style.BorderStyleRidge:
		styleName = "ridge"
	case style.BorderStyleInset:
		styleName = "inset"
	case style.BorderStyleOutset:
		styleName = "outset"
	case style.BorderStyleHidden:
		styleName = "hidden"
	}
	return render.BorderSide{Width: resolvedWidth, Color: n.ColorProperty(colorID), Style: styleName}
}
