package style

import (
	"strconv"
	"strings"

	"gocko/css"
	"gocko/css/values"
	"gocko/dom"
)

// Display is the computed box type a node generates.
type Display int

const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
)

// Float is the computed float placement.
type Float int

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
	FloatInlineStart
	FloatInlineEnd
)

// FontStyle is the computed font-style.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// FontWeight is a resolved numeric font-weight (1..1000); Normal is 400,
// Bold is 700, per https://drafts.csswg.org/css-fonts-4/#font-weight-prop.
type FontWeight struct{ Value int }

func NormalWeight() FontWeight { return FontWeight{400} }
func BoldWeight() FontWeight   { return FontWeight{700} }

// TextAlign is the computed text-align.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// TextTransform is the computed text-transform.
type TextTransform int

const (
	TextTransformNone TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
	TextTransformFullWidth
	TextTransformFullSizeKana
)

// TextDecorationLine is one line drawn by text-decoration-line; the
// property can list several.
type TextDecorationLine int

const (
	TextDecorationLineNone TextDecorationLine = iota
	TextDecorationLineUnderline
	TextDecorationLineOverline
	TextDecorationLineThrough
	TextDecorationLineBlink
)

// WhiteSpace is the computed white-space.
type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNowrap
	WhiteSpacePreWrap
	WhiteSpaceBreakSpaces
	WhiteSpacePreLine
)

// BorderStyle is the computed border-*-style.
type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

// DisplayProperty computes the node's display box type. Text nodes always
// generate an inline box. https://developer.mozilla.org/en-US/docs/Web/CSS/float
// documents the float<->display interaction applied for "inline".
func (n *Node) DisplayProperty() Display {
	if n.DOM.Type == dom.NodeText {
		return DisplayInline
	}

	switch n.GetRawProperty(css.Display) {
	case "none":
		return DisplayNone
	case "inline":
		if n.FloatProperty() == FloatNone {
			return DisplayInline
		}
		return DisplayBlock
	case "block":
		return DisplayBlock
	default:
		return DisplayBlock
	}
}

func (n *Node) FloatProperty() Float {
	switch n.GetRawProperty(css.Float) {
	case "none":
		return FloatNone
	case "left":
		return FloatLeft
	case "right":
		return FloatRight
	case "inline-start":
		return FloatInlineStart
	case "inline-end":
		return FloatInlineEnd
	default:
		return FloatNone
	}
}

func (n *Node) FontStyleProperty() FontStyle {
	switch n.GetRawProperty(css.FontStyle) {
	case "italic":
		return FontStyleItalic
	case "oblique":
		return FontStyleOblique
	default:
		return FontStyleNormal
	}
}

func (n *Node) TextAlignProperty() TextAlign {
	switch n.GetRawProperty(css.TextAlign) {
	case "right":
		return TextAlignRight
	case "center":
		return TextAlignCenter
	case "justify":
		return TextAlignJustify
	default:
		return TextAlignLeft
	}
}

func (n *Node) TextTransformProperty() TextTransform {
	switch n.GetRawProperty(css.TextTransform) {
	case "capitalize":
		return TextTransformCapitalize
	case "uppercase":
		return TextTransformUppercase
	case "lowercase":
		return TextTransformLowercase
	case "full-width":
		return TextTransformFullWidth
	case "full-size-kana":
		return TextTransformFullSizeKana
	default:
		return TextTransformNone
	}
}

func (n *Node) WhiteSpaceProperty() WhiteSpace {
	switch n.GetRawProperty(css.WhiteSpace) {
	case "pre":
		return WhiteSpacePre
	case "nowrap":
		return WhiteSpaceNowrap
	case "pre-wrap":
		return WhiteSpacePreWrap
	case "break-spaces":
		return WhiteSpaceBreakSpaces
	case "pre-line":
		return WhiteSpacePreLine
	default:
		return WhiteSpaceNormal
	}
}

// TextDecorationLineProperty parses the (possibly multi-token) line list;
// an unrecognised token empties the whole list rather than partially apply.
func (n *Node) TextDecorationLineProperty() []TextDecorationLine {
	raw := n.GetRawProperty(css.TextDecorationLine)
	var lines []TextDecorationLine
	for _, tok := range strings.Fields(raw) {
		switch tok {
		case "none":
			lines = append(lines, TextDecorationLineNone)
		case "underline":
			lines = append(lines, TextDecorationLineUnderline)
		case "overline":
			lines = append(lines, TextDecorationLineOverline)
		case "line-through":
			lines = append(lines, TextDecorationLineThrough)
		case "blink":
			lines = append(lines, TextDecorationLineBlink)
		default:
			return nil
		}
	}
	return lines
}

// FontFamilyProperty splits the (possibly comma-separated, possibly quoted)
// font-family value into an ordered family-name list for the font lookup
// to try in turn.
func (n *Node) FontFamilyProperty() []string {
	raw := n.GetRawProperty(css.FontFamily)
	parts := strings.Split(raw, ",")
	families := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"'`)
		if p != "" {
			families = append(families, p)
		}
	}
	return families
}

func (n *Node) BorderStyleProperty(id css.PropertyId) BorderStyle {
	switch n.GetRawProperty(id) {
	case "hidden":
		return BorderStyleHidden
	case "dotted":
		return BorderStyleDotted
	case "dashed":
		return BorderStyleDashed
	case "solid":
		return BorderStyleSolid
	case "double":
		return BorderStyleDouble
	case "groove":
		return BorderStyleGroove
	case "ridge":
		return BorderStyleRidge
	case "inset":
		return BorderStyleInset
	case "outset":
		return BorderStyleOutset
	default:
		return BorderStyleNone
	}
}

// ColorProperty resolves a color-valued property, following currentcolor
// back to the computed Color.
func (n *Node) ColorProperty(id css.PropertyId) values.Color {
	raw := n.GetRawProperty(id)
	if raw == "currentcolor" {
		raw = n.GetRawProperty(css.Color)
	}
	c, _ := values.ParseColor(raw)
	return c
}

const defaultFontSize = 16.0

var borderWidthKeywords = map[string]float64{"thin": 3, "medium": 5, "thick": 7}

// BorderWidthProperty resolves a border-width longhand: thin/medium/thick
// keywords, or a Length resolved against the node's own font-size.
func (n *Node) BorderWidthProperty(id css.PropertyId) float64 {
	raw := n.GetRawProperty(id)
	if px, ok := borderWidthKeywords[raw]; ok {
		return px
	}
	length, err := values.ParseLength(raw)
	if err != nil {
		return borderWidthKeywords["medium"]
	}
	info := values.ResolutionInfo{RootFontSize: n.rootFontSizeOrDefault()}
	return length.Resolve(info, n.FontSizeProperty(), 0, false)
}

// https://drafts.csswg.org/css-fonts-4/#absolute-size-mapping
var fontSizeAbsoluteKeywords = map[string]float64{
	"xx-small": 3.0 / 5, "x-small": 3.0 / 4, "small": 8.0 / 9, "medium": 1,
	"large": 6.0 / 5, "x-large": 3.0 / 2, "xx-large": 2, "xxx-large": 3,
}

// FontSizeProperty resolves font-size with the ancestor-walk the cascading
// `em` unit needs: find the nearest ancestor (including self) whose
// declaration is not inherit/unset, then resolve that value against *that
// ancestor's parent's* font-size (SPEC_FULL §9 open question 3).
func (n *Node) FontSizeProperty() float64 {
	owner, raw := n.closestFontSizeOwner()
	if owner == nil {
		return defaultFontSize
	}

	if ratio, ok := fontSizeAbsoluteKeywords[raw]; ok {
		return ratio * defaultFontSize
	}

	parentOrDefault := func() float64 {
		if owner.Parent == nil {
			return defaultFontSize
		}
		return owner.Parent.FontSizeProperty()
	}

	switch raw {
	case "larger":
		return parentOrDefault() * 1.2
	case "smaller":
		return parentOrDefault() / 1.2
	}

	length, err := values.ParseLength(raw)
	if err != nil {
		return defaultFontSize
	}
	if length.Unit == values.UnitRem {
		return length.Value * n.rootFontSizeOrDefault()
	}
	info := values.ResolutionInfo{RootFontSize: n.rootFontSizeOrDefault()}
	return length.Resolve(info, parentOrDefault(), 0, false)
}

// closestFontSizeOwner finds the nearest ancestor-or-self with a concrete
// (non inherit/unset) font-size declaration, returning its raw value.
func (n *Node) closestFontSizeOwner() (*Node, string) {
	for cur := n; cur != nil; cur = cur.Parent {
		for i := len(cur.properties) - 1; i >= 0; i-- {
			if cur.properties[i].id != css.FontSize {
				continue
			}
			v := cur.properties[i].value
			if v != "inherit" && v != "unset" {
				return cur, v
			}
			break
		}
	}
	return nil, ""
}

func (n *Node) rootFontSizeOrDefault() float64 {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	if root == n {
		return defaultFontSize
	}
	return root.FontSizeProperty()
}

// FontWeightProperty resolves normal/bold/numeric/bolder/lighter, the last
// two depending on the parent's own resolved weight via a three-bucket step
// function (https://drafts.csswg.org/css-fonts-4/#relative-weights).
func (n *Node) FontWeightProperty() FontWeight {
	raw := n.GetRawProperty(css.FontWeight)

	parentWeight := func() FontWeight {
		if n.Parent == nil {
			return NormalWeight()
		}
		return n.Parent.FontWeightProperty()
	}

	switch raw {
	case "normal":
		return NormalWeight()
	case "bold":
		return BoldWeight()
	case "bolder":
		pw := parentWeight()
		switch {
		case pw.Value < 350:
			return NormalWeight()
		case pw.Value < 550:
			return BoldWeight()
		case pw.Value < 900:
			return FontWeight{900}
		default:
			return pw
		}
	case "lighter":
		pw := parentWeight()
		switch {
		case pw.Value < 100:
			return pw
		case pw.Value < 550:
			return FontWeight{100}
		case pw.Value < 750:
			return NormalWeight()
		default:
			return BoldWeight()
		}
	}

	weight, err := strconv.Atoi(raw)
	if err != nil || weight < 1 || weight > 1000 {
		return NormalWeight()
	}
	return FontWeight{weight}
}

// LengthProperty parses a plain length-valued property (margins,
// padding, width/height, ...) into an unresolved Length, or Zero when the
// value does not parse. It does not use info, percentBasis or percentKnown;
// resolving to pixels is left to the caller.
func (n *Node) LengthProperty(id css.PropertyId, info values.ResolutionInfo, percentBasis float64, percentKnown bool) values.Length {
	raw := n.GetRawProperty(id)
	length, err := values.ParseLength(raw)
	if err != nil {
		return values.Zero()
	}
	return length
}

// ResolveLength resolves a Length value to pixels using this node's
// font-size as the em/ex/ch basis.
func (n *Node) ResolveLength(l values.Length, info values.ResolutionInfo, percentBasis float64, percentKnown bool) float64 {
	return l.Resolve(info, n.FontSizeProperty(), percentBasis, percentKnown)
}
