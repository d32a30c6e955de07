// Package mediaquery parses and evaluates @media query conditions.
package mediaquery

import (
	"strconv"
	"strings"
)

// Kind discriminates the MediaQuery variant.
type Kind int

const (
	KindTrue Kind = iota
	KindFalse
	KindAnd
	KindType
	KindWidth
	KindHeight
	KindPrefersColorScheme
	KindPrefersReducedMotion
	KindHoverType
	KindOrientation
)

// MediaType is the @media media-type atom.
type MediaType int

const (
	Screen MediaType = iota
	Print
)

// ColorScheme is the prefers-color-scheme value.
type ColorScheme int

const (
	Light ColorScheme = iota
	Dark
)

// Hover is the hover feature value.
type Hover int

const (
	HoverNone Hover = iota
	HoverHover
)

// Orientation is the orientation feature value.
type Orientation int

const (
	Landscape Orientation = iota
	Portrait
)

// Query is a MediaQuery: a tagged union over every recognised condition.
// Only the field(s) matching Kind are meaningful.
type Query struct {
	Kind Kind

	And []Query

	Type MediaType

	WidthMin, WidthMax   int
	HeightMin, HeightMax int

	ColorScheme ColorScheme
	Hover       Hover
	Orientation Orientation
}

// Context is the environment a Query is evaluated against.
type Context struct {
	WindowWidth  int
	WindowHeight int
	ColorScheme  ColorScheme
	Hover        Hover
	MediaType    MediaType
	ReduceMotion bool
}

// DeriveOrientation computes the orientation implied by window dimensions,
// mirroring the context default (portrait when height >= width).
func (c Context) DeriveOrientation() Orientation {
	if c.WindowHeight >= c.WindowWidth {
		return Portrait
	}
	return Landscape
}

const noMax = int(^uint(0) >> 1)

// Evaluate reports whether q holds under ctx.
func (q Query) Evaluate(ctx Context) bool {
	switch q.Kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindAnd:
		for _, sub := range q.And {
			if !sub.Evaluate(ctx) {
				return false
			}
		}
		return true
	case KindType:
		return ctx.MediaType == q.Type
	case KindWidth:
		return q.WidthMin <= ctx.WindowWidth && ctx.WindowWidth <= q.WidthMax
	case KindHeight:
		return q.HeightMin <= ctx.WindowHeight && ctx.WindowHeight <= q.HeightMax
	case KindPrefersColorScheme:
		return ctx.ColorScheme == q.ColorScheme
	case KindPrefersReducedMotion:
		return ctx.ReduceMotion
	case KindHoverType:
		return ctx.Hover == q.Hover
	case KindOrientation:
		return ctx.DeriveOrientation() == q.Orientation
	default:
		return false
	}
}

// Parse parses an @media condition. Unrecognised queries parse to a
// KindFalse query (never matching) rather than an error, per the spec's
// fail-closed rule for media queries.
func Parse(s string) Query {
	s = strings.TrimSpace(s)
	if strings.Contains(s, " and ") {
		return parseAnd(s)
	}
	q, ok := parseAtom(s)
	if !ok {
		return Query{Kind: KindFalse}
	}
	return q
}

func parseAnd(s string) Query {
	parts := strings.Split(s, " and ")
	queries := make([]Query, 0, len(parts))
	for _, part := range parts {
		q, ok := parseAtom(strings.TrimSpace(part))
		if !ok {
			return Query{Kind: KindFalse}
		}
		queries = append(queries, q)
	}
	return Query{Kind: KindAnd, And: queries}
}

func parseAtom(s string) (Query, bool) {
	switch s {
	case "all", "only all":
		return Query{Kind: KindTrue}, true
	case "print", "only print":
		return Query{Kind: KindType, Type: Print}, true
	case "screen", "only screen":
		return Query{Kind: KindType, Type: Screen}, true
	}

	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Query{}, false
	}
	s = strings.TrimSpace(s[1 : len(s)-1])

	sep := strings.IndexAny(s, " :")
	if sep < 0 {
		return Query{}, false
	}
	feature := s[:sep]
	value := strings.TrimLeft(strings.TrimSpace(s[sep:]), " :")
	value = strings.TrimSpace(value)

	switch {
	case feature == "width" || feature == "min-width" || feature == "max-width":
		return parseLengthFeature(KindWidth, "width", feature, value)
	case feature == "height" || feature == "min-height" || feature == "max-height":
		return parseLengthFeature(KindHeight, "height", feature, value)
	case feature == "prefers-color-scheme":
		switch value {
		case "light":
			return Query{Kind: KindPrefersColorScheme, ColorScheme: Light}, true
		case "dark":
			return Query{Kind: KindPrefersColorScheme, ColorScheme: Dark}, true
		}
	case feature == "prefers-reduced-motion":
		switch value {
		case "reduce":
			return Query{Kind: KindPrefersReducedMotion}, true
		case "no-preference":
			return Query{Kind: KindFalse}, true
		}
	case feature == "hover":
		switch value {
		case "hover":
			return Query{Kind: KindHoverType, Hover: HoverHover}, true
		case "none":
			return Query{Kind: KindHoverType, Hover: HoverNone}, true
		}
	case feature == "orientation":
		switch value {
		case "landscape":
			return Query{Kind: KindOrientation, Orientation: Landscape}, true
		case "portrait":
			return Query{Kind: KindOrientation, Orientation: Portrait}, true
		}
	}
	return Query{}, false
}

func parseLengthFeature(kind Kind, suffix, feature, valueStr string) (Query, bool) {
	prefix := strings.TrimSuffix(feature, suffix)

	numEnd := len(valueStr)
	for i, r := range valueStr {
		if !(r >= '0' && r <= '9' || r == '.' || r == '-') {
			numEnd = i
			break
		}
	}
	numPart := valueStr[:numEnd]
	unit := strings.TrimSpace(valueStr[numEnd:])

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return Query{}, false
	}
	if value != 0 && unit == "" {
		return Query{}, false
	}

	if unit == "em" || unit == "rem" {
		const defaultFontSize = 16
		value *= defaultFontSize
		unit = "px"
	}
	if value != 0 && unit != "px" {
		return Query{}, false
	}

	v := int(value)
	switch prefix {
	case "min-":
		if kind == KindWidth {
			return Query{Kind: kind, WidthMin: v, WidthMax: noMax}, true
		}
		return Query{Kind: kind, HeightMin: v, HeightMax: noMax}, true
	case "max-":
		if kind == KindWidth {
			return Query{Kind: kind, WidthMin: 0, WidthMax: v}, true
		}
		return Query{Kind: kind, HeightMin: 0, HeightMax: v}, true
	default:
		if kind == KindWidth {
			return Query{Kind: kind, WidthMin: v, WidthMax: v}, true
		}
		return Query{Kind: kind, HeightMin: v, HeightMax: v}, true
	}
}
