package layout

import (
	"gocko/css"
	"gocko/css/values"
	"gocko/style"
)

// Options configures one layout pass.
type Options struct {
	ViewportWidth  float64
	ViewportHeight float64
	Fonts          FontProvider
	Images         ImageSizer
}

// Compute runs the box-model pass (spec §4.6 steps 1-5) over a tree already
// produced by Build and CollapseWhitespace, assigning X/Y/Width/Height and
// the four box-model edges to every box in place.
func Compute(root *Box, opts Options) {
	if root == nil {
		return
	}
	info := values.ResolutionInfo{
		RootFontSize:   rootFontSize(root),
		ViewportWidth:  opts.ViewportWidth,
		ViewportHeight: opts.ViewportHeight,
	}
	layoutBlock(root, info, opts, 0, 0, opts.ViewportWidth, true, opts.ViewportHeight, true)
}

func rootFontSize(root *Box) float64 {
	if root.StyledNode != nil {
		return root.StyledNode.FontSizeProperty()
	}
	return 16
}

// edges is the resolved padding/border/margin for one side set.
type edges struct{ top, right, bottom, left float64 }

// resolveEdges runs step 1: padding, border-width (when the matching
// border-style isn't none), and margin, each against the node's own
// font-size and the parent's content width for percentages.
func resolveEdges(n *style.Node, info values.ResolutionInfo, parentContentWidth float64) (padding, border, margin edges) {
	resolve := func(id css.PropertyId) float64 {
		raw := n.LengthProperty(id, info, parentContentWidth, true)
		return n.ResolveLength(raw, info, parentContentWidth, true)
	}

	padding = edges{resolve(css.PaddingTop), resolve(css.PaddingRight), resolve(css.PaddingBottom), resolve(css.PaddingLeft)}

	borderWidth := func(widthID, styleID css.PropertyId) float64 {
		if n.BorderStyleProperty(styleID) == style.BorderStyleNone {
			return 0
		}
		return n.BorderWidthProperty(widthID)
	}
	border = edges{
		borderWidth(css.BorderTopWidth, css.BorderTopStyle),
		borderWidth(css.BorderRightWidth, css.BorderRightStyle),
		borderWidth(css.BorderBottomWidth, css.BorderBottomStyle),
		borderWidth(css.BorderLeftWidth, css.BorderLeftStyle),
	}

	marginLength := func(id css.PropertyId) (float64, bool) {
		raw := n.GetRawProperty(id)
		l, err := values.ParseLength(raw)
		if err != nil || l.IsAuto() {
			return 0, true
		}
		return n.ResolveLength(l, info, parentContentWidth, true), false
	}
	mt, _ := marginLength(css.MarginTop)
	mr, _ := marginLength(css.MarginRight)
	mb, _ := marginLength(css.MarginBottom)
	ml, _ := marginLength(css.MarginLeft)
	margin = edges{mt, mr, mb, ml}
	return
}

// isAutoMargin reports whether the given margin longhand is the auto
// keyword, used by the width-resolution step to decide redistribution.
func isAutoMargin(n *style.Node, id css.PropertyId) bool {
	l, err := values.ParseLength(n.GetRawProperty(id))
	return err == nil && l.IsAuto()
}

func clamp(v, min float64, max float64, hasMax bool) float64 {
	if v < min {
		v = min
	}
	if hasMax && v > max {
		v = max
	}
	return v
}

func resolveMinMax(n *style.Node, info values.ResolutionInfo, basis float64, minID, maxID css.PropertyId) (min float64, max float64, hasMax bool) {
	minRaw := n.GetRawProperty(minID)
	if l, err := values.ParseLength(minRaw); err == nil && !l.IsAuto() && !l.IsNone() {
		min = n.ResolveLength(l, info, basis, true)
	}
	maxRaw := n.GetRawProperty(maxID)
	if l, err := values.ParseLength(maxRaw); err == nil && !l.IsNone() && !l.IsAuto() {
		max = n.ResolveLength(l, info, basis, true)
		hasMax = true
	}
	return
}

// layoutBlock lays out a block-level (or anonymous-block) box whose
// margin-box top-left is the caller's current stacking cursor, returning
// its margin-box height so the caller can place the next sibling.
func layoutBlock(b *Box, info values.ResolutionInfo, opts Options, x, y, parentContentWidth float64, parentWidthKnown bool, parentContentHeight float64, parentHeightKnown bool) float64 {
	if b.Type == TypeAnonymousBlock {
		b.X, b.Y = x, y
		b.Width = parentContentWidth
		b.Height = layoutInlineContext(b, b.Children, info, opts, x, y, parentContentWidth)
		return b.Height
	}

	n := b.StyledNode
	padding, border, margin := resolveEdges(n, info, parentContentWidth)
	b.PaddingTop, b.PaddingRight, b.PaddingBottom, b.PaddingLeft = padding.top, padding.right, padding.bottom, padding.left
	b.BorderTop, b.BorderRight, b.BorderBottom, b.BorderLeft = border.top, border.right, border.bottom, border.left
	b.MarginTop, b.MarginBottom = margin.top, margin.bottom

	edgeWidth := border.left + border.right + padding.left + padding.right

	// Step 2: resolve width, redistributing auto margins.
	widthRaw := n.GetRawProperty(css.Width)
	widthLen, werr := values.ParseLength(widthRaw)
	var contentWidth float64
	autoWidth := werr != nil || widthLen.IsAuto()
	if !autoWidth {
		contentWidth = n.ResolveLength(widthLen, info, parentContentWidth, parentWidthKnown)
	}

	autoLeft := isAutoMargin(n, css.MarginLeft)
	autoRight := isAutoMargin(n, css.MarginRight)

	if autoWidth {
		if autoLeft {
			margin.left = 0
		}
		if autoRight {
			margin.right = 0
		}
		contentWidth = parentContentWidth - edgeWidth - margin.left - margin.right
		if contentWidth < 0 {
			contentWidth = 0
		}
	} else {
		remainder := parentContentWidth - edgeWidth - contentWidth - margin.left - margin.right
		switch {
		case autoLeft && autoRight:
			margin.left = remainder / 2
			margin.right = remainder / 2
		case autoLeft:
			margin.left = remainder
		case autoRight:
			margin.right = remainder
		}
	}

	minW, maxW, hasMaxW := resolveMinMax(n, info, parentContentWidth, css.MinWidth, css.MaxWidth)
	contentWidth = clamp(contentWidth, minW, maxW, hasMaxW)
	b.MarginLeft, b.MarginRight = margin.left, margin.right
	b.Width = contentWidth

	// Step 3: place below the stacking cursor, content origin inset by
	// margin/border/padding.
	b.X = x + margin.left + border.left + padding.left
	b.Y = y + margin.top + border.top + padding.top

	// Step 4: recurse into children, then resolve height.
	var childrenHeight float64
	if len(b.Children) > 0 {
		if childrenAreInline(b.Children) {
			childrenHeight = layoutInlineContext(b, b.Children, info, opts, b.X, b.Y, contentWidth)
		} else {
			cursorY := b.Y
			for _, c := range b.Children {
				h := layoutBlock(c, info, opts, b.X, cursorY, contentWidth, true, 0, false)
				cursorY += h
			}
			childrenHeight = cursorY - b.Y
		}
	}

	heightRaw := n.GetRawProperty(css.Height)
	heightLen, herr := values.ParseLength(heightRaw)
	var contentHeight float64
	if herr == nil && !heightLen.IsAuto() {
		if heightLen.Unit == values.UnitPercent && !parentHeightKnown {
			contentHeight = childrenHeight
		} else {
			contentHeight = n.ResolveLength(heightLen, info, parentContentHeight, parentHeightKnown)
		}
	} else {
		contentHeight = childrenHeight
	}

	minH, maxH, hasMaxH := resolveMinMax(n, info, parentContentHeight, css.MinHeight, css.MaxHeight)
	contentHeight = clamp(contentHeight, minH, maxH, hasMaxH)
	b.Height = contentHeight

	marginBoxHeight := margin.top + border.top + padding.top + contentHeight + padding.bottom + border.bottom + margin.bottom
	return marginBoxHeight
}

func childrenAreInline(children []*Box) bool {
	for _, c := range children {
		if !isInlineLevel(c) {
			return false
		}
	}
	return true
}
