package css

import "strings"

// expandShorthand stores a declaration, expanding shorthand property names
// into their constituent longhands. Plain longhands are stored directly.
func expandShorthand(rule *Rule, name, value string, important bool) {
	dest := targetMap(rule, important)

	switch name {
	case "padding":
		expandBox(dest, value, PaddingTop, PaddingRight, PaddingBottom, PaddingLeft)
		return
	case "margin":
		expandBox(dest, value, MarginTop, MarginRight, MarginBottom, MarginLeft)
		return
	case "border-color":
		expandBox(dest, value, BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor)
		return
	case "border-style":
		expandBox(dest, value, BorderTopStyle, BorderRightStyle, BorderBottomStyle, BorderLeftStyle)
		return
	case "border-width":
		expandBox(dest, value, BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth)
		return

	case "border":
		expandBorderSide(dest, value, BorderTopColor, BorderTopStyle, BorderTopWidth)
		expandBorderSide(dest, value, BorderRightColor, BorderRightStyle, BorderRightWidth)
		expandBorderSide(dest, value, BorderBottomColor, BorderBottomStyle, BorderBottomWidth)
		expandBorderSide(dest, value, BorderLeftColor, BorderLeftStyle, BorderLeftWidth)
		return
	case "border-top":
		expandBorderSide(dest, value, BorderTopColor, BorderTopStyle, BorderTopWidth)
		return
	case "border-right":
		expandBorderSide(dest, value, BorderRightColor, BorderRightStyle, BorderRightWidth)
		return
	case "border-bottom":
		expandBorderSide(dest, value, BorderBottomColor, BorderBottomStyle, BorderBottomWidth)
		return
	case "border-left":
		expandBorderSide(dest, value, BorderLeftColor, BorderLeftStyle, BorderLeftWidth)
		return

	case "outline":
		expandBorderSide(dest, value, OutlineColor, OutlineStyle, OutlineWidth)
		return

	case "background":
		expandBackground(dest, value)
		return

	case "border-radius":
		expandBorderRadius(dest, value)
		return

	case "text-decoration":
		expandTextDecoration(dest, value)
		return

	case "flex-flow":
		expandFlexFlow(dest, value)
		return

	case "font":
		expandFont(dest, value)
		return
	}

	if id := PropertyIDFromString(name); id != Unknown {
		dest[id] = value
	}
}

// expandBox applies the 1/2/3/4-value shorthand rotation: 1 value sets all
// four sides, 2 sets vertical/horizontal, 3 sets top/horizontal/bottom, 4
// sets top/right/bottom/left directly.
func expandBox(dest map[PropertyId]string, value string, top, right, bottom, left PropertyId) {
	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		dest[top], dest[right], dest[bottom], dest[left] = parts[0], parts[0], parts[0], parts[0]
	case 2:
		dest[top], dest[bottom] = parts[0], parts[0]
		dest[right], dest[left] = parts[1], parts[1]
	case 3:
		dest[top] = parts[0]
		dest[right], dest[left] = parts[1], parts[1]
		dest[bottom] = parts[2]
	case 4:
		dest[top], dest[right], dest[bottom], dest[left] = parts[0], parts[1], parts[2], parts[3]
	}
}

func isBorderStyleKeyword(s string) bool {
	switch s {
	case "none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset":
		return true
	}
	return false
}

func isBorderWidthKeyword(s string) bool {
	switch s {
	case "thin", "medium", "thick":
		return true
	}
	return false
}

func looksLikeLength(s string) bool {
	if s == "" {
		return false
	}
	r := s[0]
	return r >= '0' && r <= '9' || r == '.' || r == '-'
}

// expandBorderSide classifies 1-3 tokens as color/style/width, in any
// order. More than 3 tokens is invalid: drop all three longhands silently.
func expandBorderSide(dest map[PropertyId]string, value string, color, style, width PropertyId) {
	parts := strings.Fields(value)
	if len(parts) > 3 {
		return
	}

	resolvedColor, resolvedStyle, resolvedWidth := "currentcolor", "none", "medium"
	for _, tok := range parts {
		switch {
		case isBorderStyleKeyword(tok):
			resolvedStyle = tok
		case isBorderWidthKeyword(tok) || looksLikeLength(tok):
			resolvedWidth = tok
		default:
			resolvedColor = tok
		}
	}
	dest[color], dest[style], dest[width] = resolvedColor, resolvedStyle, resolvedWidth
}

// expandBackground recognises only the single-token color form; every
// other background-* longhand is reset to its initial value.
func expandBackground(dest map[PropertyId]string, value string) {
	parts := strings.Fields(value)
	dest[BackgroundImage] = "none"
	dest[BackgroundPosition] = "0% 0%"
	dest[BackgroundSize] = "auto"
	dest[BackgroundRepeat] = "repeat"
	dest[BackgroundAttachment] = "scroll"
	dest[BackgroundOrigin] = "padding-box"
	dest[BackgroundClip] = "border-box"
	if len(parts) == 1 {
		dest[BackgroundColor] = parts[0]
	} else {
		dest[BackgroundColor] = "transparent"
	}
}

// expandBorderRadius supports "a b c d / e f g h"; each per-corner longhand
// stores either "H" or "H / V".
func expandBorderRadius(dest map[PropertyId]string, value string) {
	var horizontal, vertical string
	if idx := strings.Index(value, "/"); idx != -1 {
		horizontal = strings.TrimSpace(value[:idx])
		vertical = strings.TrimSpace(value[idx+1:])
	} else {
		horizontal = value
	}

	hParts := expandCorners(horizontal)
	var vParts [4]string
	if vertical != "" {
		vParts = expandCorners(vertical)
	}

	ids := [4]PropertyId{BorderTopLeftRadius, BorderTopRightRadius, BorderBottomRightRadius, BorderBottomLeftRadius}
	for i, id := range ids {
		if vertical != "" {
			dest[id] = hParts[i] + " / " + vParts[i]
		} else {
			dest[id] = hParts[i]
		}
	}
}

func expandCorners(value string) [4]string {
	parts := strings.Fields(value)
	var out [4]string
	switch len(parts) {
	case 1:
		out = [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		out = [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		out = [4]string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		out = [4]string{parts[0], parts[1], parts[2], parts[3]}
	}
	return out
}

func isTextDecorationLineKeyword(s string) bool {
	switch s {
	case "none", "underline", "overline", "line-through", "blink":
		return true
	}
	return false
}

func isTextDecorationStyleKeyword(s string) bool {
	switch s {
	case "solid", "double", "dotted", "dashed", "wavy":
		return true
	}
	return false
}

// expandTextDecoration accepts one line-keyword and one style-keyword in
// any order; any unrecognised combination drops the whole shorthand.
func expandTextDecoration(dest map[PropertyId]string, value string) {
	parts := strings.Fields(value)
	if len(parts) == 0 || len(parts) > 2 {
		return
	}
	var line, style string
	for _, tok := range parts {
		switch {
		case isTextDecorationLineKeyword(tok) && line == "":
			line = tok
		case isTextDecorationStyleKeyword(tok) && style == "":
			style = tok
		default:
			return // unrecognised token: drop the shorthand entirely
		}
	}
	if line != "" {
		dest[TextDecorationLine] = line
	}
	if style != "" {
		dest[TextDecorationStyle] = style
	}
}

func isFlexDirectionKeyword(s string) bool {
	switch s {
	case "row", "row-reverse", "column", "column-reverse":
		return true
	}
	return false
}

func isFlexWrapKeyword(s string) bool {
	switch s {
	case "nowrap", "wrap", "wrap-reverse":
		return true
	}
	return false
}

// expandFlexFlow accepts a direction keyword and/or a wrap keyword; a
// global keyword (inherit/initial/unset/revert) is only valid alone.
func expandFlexFlow(dest map[PropertyId]string, value string) {
	switch value {
	case "inherit", "initial", "unset", "revert":
		dest[FlexDirection] = value
		dest[FlexWrap] = value
		return
	}
	for _, tok := range strings.Fields(value) {
		switch {
		case isFlexDirectionKeyword(tok):
			dest[FlexDirection] = tok
		case isFlexWrapKeyword(tok):
			dest[FlexWrap] = tok
		}
	}
}

func isFontStyleKeyword(s string) bool {
	switch s {
	case "italic", "oblique":
		return true
	}
	return false
}

func isFontWeightKeyword(s string) bool {
	switch s {
	case "bold", "bolder", "lighter":
		return true
	}
	if looksLikeLength(s) {
		return true
	}
	return false
}

func isFontVariantKeyword(s string) bool { return s == "small-caps" }

// expandFont is a mini font-shorthand parser: optional style/weight/variant
// (any order), a mandatory size[/line-height], then a mandatory family
// list. A sole token is treated as a system-font keyword aliased onto
// font-family; the non-shorthandable font-* longhands are reset.
func expandFont(dest map[PropertyId]string, value string) {
	dest[FontVariant] = "normal"
	dest[FontStyle] = "normal"
	dest[FontWeight] = "normal"

	parts := strings.Fields(value)
	if len(parts) == 0 {
		return
	}
	if len(parts) == 1 {
		dest[FontFamily] = parts[0]
		return
	}

	i := 0
	for i < len(parts)-1 {
		tok := parts[i]
		matched := true
		switch {
		case isFontStyleKeyword(tok) && !looksLikeSizeToken(tok):
			dest[FontStyle] = tok
		case isFontVariantKeyword(tok):
			dest[FontVariant] = tok
		case tok == "bold" || tok == "bolder" || tok == "lighter":
			dest[FontWeight] = tok
		default:
			matched = false
		}
		if !matched {
			break
		}
		i++
	}

	if i >= len(parts) {
		return
	}
	sizeToken := parts[i]
	if idx := strings.Index(sizeToken, "/"); idx != -1 {
		dest[FontSize] = sizeToken[:idx]
		dest[LineHeight] = sizeToken[idx+1:]
	} else {
		dest[FontSize] = sizeToken
	}
	i++

	if i < len(parts) {
		dest[FontFamily] = strings.Join(parts[i:], " ")
	}
}

func looksLikeSizeToken(s string) bool { return looksLikeLength(s) }
