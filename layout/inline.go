package layout

import (
	"strings"

	"gocko/css/values"
	"gocko/style"
)

// layoutInlineContext runs the row-wrapping algorithm (spec §4.6 "Inline
// wrapping") over children, an inline formatting context rooted either at
// an anonymous block or at a block box whose children are all inline-level.
// It may split text boxes mid-run, growing the child list; the final list
// (with any inserted siblings) is written back to owner.Children.
func layoutInlineContext(owner *Box, children []*Box, info values.ResolutionInfo, opts Options, x, y, contentWidth float64) float64 {
	work := make([]*Box, len(children))
	copy(work, children)

	rowY := y
	lastEnd := x
	rowHeight := 0.0
	var out []*Box

	for i := 0; i < len(work); i++ {
		c := work[i]

		if isBreak(c) {
			rowY += rowHeight
			lastEnd = x
			rowHeight = 0
			c.X, c.Y, c.Width, c.Height = x, rowY, 0, 0
			out = append(out, c)
			continue
		}

		w, h := measureInlineUnit(c, info, opts)

		split := false
		if lastEnd+w-x > contentWidth && lastEnd > x {
			if lastEnd-x >= contentWidth {
				rowY += rowHeight
				lastEnd = x
				rowHeight = 0
			} else if c.Type == TypeText {
				avail := contentWidth - (lastEnd - x)
				if idx, ok := latestFittingSpace(c, info, opts, avail); ok {
					left := c.Text[:idx]
					right := strings.TrimLeft(c.Text[idx+1:], " ")
					rightBox := &Box{StyledNode: c.StyledNode, Type: TypeText, Text: right}
					tail := append([]*Box{rightBox}, work[i+1:]...)
					work = append(work[:i+1], tail...)
					c.Text = left
					w, h = measureInlineUnit(c, info, opts)
					split = true
				}
			}
		}

		placeInlineUnit(c, info, opts, lastEnd, rowY)
		lastEnd += w
		if h > rowHeight {
			rowHeight = h
		}
		out = append(out, c)

		if split {
			// The right half of a split text box starts the next row.
			rowY += rowHeight
			lastEnd = x
			rowHeight = 0
		}
	}
	rowY += rowHeight

	owner.Children = out
	return rowY - y
}

func isBreak(b *Box) bool {
	return b.StyledNode != nil && b.StyledNode.Tag() == "br"
}

func fontOf(n *style.Node) (families []string, size float64, weight style.FontWeight, italic bool) {
	return n.FontFamilyProperty(), n.FontSizeProperty(), n.FontWeightProperty(), n.FontStyleProperty() != style.FontStyleNormal
}

// measureInlineUnit computes a box's natural (unwrapped) margin-box size
// without assigning positions, used both for the fits-on-row test and for
// finding a text split point.
func measureInlineUnit(c *Box, info values.ResolutionInfo, opts Options) (w, h float64) {
	if c.Type == TypeText {
		families, size, weight, italic := fontOf(c.StyledNode)
		m := measure(opts.Fonts, families, c.Text, size, weight, italic)
		lines := float64(strings.Count(c.Text, "\n") + 1)
		return m.Width, size * lines
	}

	if c.ImageURL != "" {
		if opts.Images != nil {
			if iw, ih, ok := opts.Images.Size(c.ImageURL); ok {
				return iw, ih
			}
		}
		return 0, 0
	}

	padding, border, margin := resolveEdges(c.StyledNode, info, 0)
	hEdge := padding.left + padding.right + border.left + border.right + margin.left + margin.right
	vEdge := padding.top + padding.bottom + border.top + border.bottom + margin.top + margin.bottom

	var totalW, maxH float64
	for _, child := range c.Children {
		cw, ch := measureInlineUnit(child, info, opts)
		totalW += cw
		if ch > maxH {
			maxH = ch
		}
	}
	return totalW + hEdge, maxH + vEdge
}

// placeInlineUnit assigns c's (and its descendants') final position given
// the row cursor (x, y), recomputing sizes as it goes (cheap relative to a
// page's total text volume, and kept separate from measureInlineUnit to
// avoid threading a position through every recursive call of the
// measurement-only pass).
func placeInlineUnit(c *Box, info values.ResolutionInfo, opts Options, x, y float64) {
	if c.Type == TypeText {
		w, h := measureInlineUnit(c, info, opts)
		c.X, c.Y, c.Width, c.Height = x, y, w, h
		return
	}

	if c.ImageURL != "" {
		w, h := measureInlineUnit(c, info, opts)
		c.X, c.Y, c.Width, c.Height = x, y, w, h
		return
	}

	padding, border, margin := resolveEdges(c.StyledNode, info, 0)
	contentX := x + margin.left + border.left + padding.left
	contentY := y + margin.top + border.top + padding.top

	cursor := contentX
	maxH := 0.0
	for _, child := range c.Children {
		placeInlineUnit(child, info, opts, cursor, contentY)
		cw, ch := measureInlineUnit(child, info, opts)
		cursor += cw
		if ch > maxH {
			maxH = ch
		}
	}

	c.X, c.Y = contentX, contentY
	c.Width = cursor - contentX
	c.Height = maxH
	c.PaddingTop, c.PaddingRight, c.PaddingBottom, c.PaddingLeft = padding.top, padding.right, padding.bottom, padding.left
	c.BorderTop, c.BorderRight, c.BorderBottom, c.BorderLeft = border.top, border.right, border.bottom, border.left
	c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft = margin.top, margin.right, margin.bottom, margin.left
}

// latestFittingSpace finds the rightmost space index in c's text such that
// the prefix up to (not including) it still measures within avail pixels.
func latestFittingSpace(c *Box, info values.ResolutionInfo, opts Options, avail float64) (int, bool) {
	families, size, weight, italic := fontOf(c.StyledNode)
	best := -1
	for i, r := range c.Text {
		if r != ' ' {
			continue
		}
		m := measure(opts.Fonts, families, c.Text[:i], size, weight, italic)
		if m.Width <= avail {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
