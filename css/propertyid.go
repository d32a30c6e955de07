// Package css implements the stylesheet model: parsing CSS text into rules,
// the closed PropertyId enum with its CSS 2.2 inheritance table, and the
// shorthand-expansion rules that must run at parse time.
package css

// PropertyId is a closed enum over every longhand property the engine
// recognises, plus Unknown for anything else.
type PropertyId int

const (
	Unknown PropertyId = iota
	BackgroundAttachment
	BackgroundClip
	BackgroundColor
	BackgroundImage
	BackgroundOrigin
	BackgroundPosition
	BackgroundRepeat
	BackgroundSize
	BorderBottomColor
	BorderBottomLeftRadius
	BorderBottomRightRadius
	BorderBottomStyle
	BorderBottomWidth
	BorderCollapse
	BorderLeftColor
	BorderLeftStyle
	BorderLeftWidth
	BorderRightColor
	BorderRightStyle
	BorderRightWidth
	BorderSpacing
	BorderTopColor
	BorderTopLeftRadius
	BorderTopRightRadius
	BorderTopStyle
	BorderTopWidth
	CaptionSide
	Color
	Cursor
	Direction
	Display
	Float
	FontFamily
	FontSize
	FontStyle
	FontVariant
	FontWeight
	Height
	LetterSpacing
	LineHeight
	ListStyle
	ListStyleImage
	ListStylePosition
	ListStyleType
	MarginBottom
	MarginLeft
	MarginRight
	MarginTop
	MaxHeight
	MaxWidth
	MinHeight
	MinWidth
	Orphans
	OutlineColor
	OutlineStyle
	OutlineWidth
	PaddingBottom
	PaddingLeft
	PaddingRight
	PaddingTop
	Quotes
	TextAlign
	TextDecorationColor
	TextDecorationLine
	TextDecorationStyle
	TextIndent
	TextTransform
	Visibility
	WhiteSpace
	Widows
	Width
	WordSpacing
	FlexBasis
	FlexDirection
	FlexGrow
	FlexShrink
	FlexWrap
)

var propertyNames = map[string]PropertyId{
	"background-attachment":     BackgroundAttachment,
	"background-clip":           BackgroundClip,
	"background-color":          BackgroundColor,
	"background-image":          BackgroundImage,
	"background-origin":         BackgroundOrigin,
	"background-position":       BackgroundPosition,
	"background-repeat":         BackgroundRepeat,
	"background-size":           BackgroundSize,
	"border-bottom-color":       BorderBottomColor,
	"border-bottom-left-radius": BorderBottomLeftRadius,
	"border-bottom-right-radius": BorderBottomRightRadius,
	"border-bottom-style":       BorderBottomStyle,
	"border-bottom-width":       BorderBottomWidth,
	"border-collapse":           BorderCollapse,
	"border-left-color":         BorderLeftColor,
	"border-left-style":         BorderLeftStyle,
	"border-left-width":         BorderLeftWidth,
	"border-right-color":        BorderRightColor,
	"border-right-style":        BorderRightStyle,
	"border-right-width":        BorderRightWidth,
	"border-spacing":            BorderSpacing,
	"border-top-color":          BorderTopColor,
	"border-top-left-radius":    BorderTopLeftRadius,
	"border-top-right-radius":   BorderTopRightRadius,
	"border-top-style":          BorderTopStyle,
	"border-top-width":          BorderTopWidth,
	"caption-side":              CaptionSide,
	"color":                     Color,
	"cursor":                    Cursor,
	"direction":                 Direction,
	"display":                   Display,
	"float":                     Float,
	"font-family":               FontFamily,
	"font-size":                 FontSize,
	"font-style":                FontStyle,
	"font-variant":              FontVariant,
	"font-weight":               FontWeight,
	"height":                    Height,
	"letter-spacing":            LetterSpacing,
	"line-height":               LineHeight,
	"list-style":                ListStyle,
	"list-style-image":          ListStyleImage,
	"list-style-position":       ListStylePosition,
	"list-style-type":           ListStyleType,
	"margin-bottom":             MarginBottom,
	"margin-left":               MarginLeft,
	"margin-right":              MarginRight,
	"margin-top":                MarginTop,
	"max-height":                MaxHeight,
	"max-width":                 MaxWidth,
	"min-height":                MinHeight,
	"min-width":                 MinWidth,
	"orphans":                   Orphans,
	"outline-color":             OutlineColor,
	"outline-style":             OutlineStyle,
	"outline-width":             OutlineWidth,
	"padding-bottom":            PaddingBottom,
	"padding-left":              PaddingLeft,
	"padding-right":             PaddingRight,
	"padding-top":               PaddingTop,
	"quotes":                    Quotes,
	"text-align":                TextAlign,
	"text-decoration-color":     TextDecorationColor,
	"text-decoration-line":      TextDecorationLine,
	"text-decoration-style":     TextDecorationStyle,
	"text-indent":               TextIndent,
	"text-transform":            TextTransform,
	"visibility":                Visibility,
	"white-space":               WhiteSpace,
	"widows":                    Widows,
	"width":                     Width,
	"word-spacing":              WordSpacing,
	"flex-basis":                FlexBasis,
	"flex-direction":            FlexDirection,
	"flex-grow":                 FlexGrow,
	"flex-shrink":               FlexShrink,
	"flex-wrap":                 FlexWrap,
}

var propertyStrings = func() map[PropertyId]string {
	m := make(map[PropertyId]string, len(propertyNames))
	for name, id := range propertyNames {
		m[id] = name
	}
	return m
}()

// PropertyIDFromString resolves a declaration name to its PropertyId,
// Unknown if unrecognised.
func PropertyIDFromString(name string) PropertyId {
	if id, ok := propertyNames[name]; ok {
		return id
	}
	return Unknown
}

// String renders the property's canonical CSS name.
func (id PropertyId) String() string {
	if s, ok := propertyStrings[id]; ok {
		return s
	}
	return "unknown"
}

// https://www.w3.org/TR/CSS22/propidx.html
var inheritedProperties = map[PropertyId]bool{
	BorderCollapse: true, BorderSpacing: true, CaptionSide: true, Color: true,
	Cursor: true, Direction: true, FontFamily: true, FontSize: true,
	FontStyle: true, FontVariant: true, FontWeight: true, LetterSpacing: true,
	LineHeight: true, ListStyle: true, ListStyleImage: true,
	ListStylePosition: true, ListStyleType: true, Orphans: true, Quotes: true,
	TextAlign: true, TextIndent: true, TextTransform: true, Visibility: true,
	WhiteSpace: true, Widows: true, WordSpacing: true,
}

// IsInherited reports whether id is in the CSS 2.2 inheritance table.
func (id PropertyId) IsInherited() bool { return inheritedProperties[id] }

// https://www.w3.org/TR/css-cascade/#initial-values
var initialValues = map[PropertyId]string{
	BackgroundColor:        "transparent",
	Color:                  "canvastext",
	FlexBasis:              "auto",
	FlexDirection:          "row",
	FlexGrow:               "0",
	FlexShrink:             "1",
	FlexWrap:               "nowrap",
	FontSize:               "medium",
	FontFamily:             "sans-serif",
	FontStyle:              "normal",
	FontWeight:             "normal",
	TextDecorationColor:    "currentcolor",
	TextDecorationLine:     "none",
	TextDecorationStyle:    "solid",
	TextTransform:          "none",
	BorderBottomColor:      "currentcolor",
	BorderLeftColor:        "currentcolor",
	BorderRightColor:       "currentcolor",
	BorderTopColor:         "currentcolor",
	BorderBottomLeftRadius: "0",
	BorderBottomRightRadius: "0",
	BorderTopLeftRadius:    "0",
	BorderTopRightRadius:   "0",
	BorderBottomStyle:      "none",
	BorderLeftStyle:        "none",
	BorderRightStyle:       "none",
	BorderTopStyle:         "none",
	BorderBottomWidth:      "medium",
	BorderLeftWidth:        "medium",
	BorderRightWidth:       "medium",
	BorderTopWidth:         "medium",
	OutlineColor:           "currentcolor",
	OutlineStyle:           "none",
	OutlineWidth:           "medium",
	PaddingBottom:          "0",
	PaddingLeft:            "0",
	PaddingRight:           "0",
	PaddingTop:             "0",
	MarginBottom:           "0",
	MarginLeft:             "0",
	MarginRight:            "0",
	MarginTop:              "0",
	Display:                "inline",
	Float:                  "none",
	Height:                 "auto",
	MaxHeight:              "none",
	MinHeight:              "auto",
	Width:                  "auto",
	MaxWidth:               "none",
	MinWidth:               "auto",
	WhiteSpace:             "normal",
}

// InitialValue returns the property's built-in initial value string, or ""
// for properties this engine does not assign a specific initial value to
// (they fall back to a zero Length/Color at resolve time).
func (id PropertyId) InitialValue() string {
	return initialValues[id]
}
