// Package render defines the abstract drawing sink the painter emits
// commands to, so the rendering pipeline can be exercised and verified
// without a graphical backend.
package render

import "gocko/css/values"

// Rect is an axis-aligned box in device pixels.
type Rect struct {
	X, Y, W, H float64
}

// Point is a device-pixel coordinate.
type Point struct {
	X, Y float64
}

// BorderSide describes one edge of a box's border.
type BorderSide struct {
	Width float64
	Color values.Color
	Style string // "none", "solid", "dashed", ... mirrors style.BorderStyle's names
}

// Corners holds the four border-radius values, clockwise from top-left.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Borders holds all four sides, clockwise from top.
type Borders struct {
	Top, Right, Bottom, Left BorderSide
}

// TextStyle carries the decorations draw_text needs beyond font/size/color.
type TextStyle struct {
	Italic        bool
	Bold          bool
	Underline     bool
	Overline      bool
	Strikethrough bool
}

// Sink is the drawing command set a painter emits to. Implementations are
// expected to be cheap to construct per navigation (e.g. a command
// recorder for tests, or a real GPU/canvas backend).
type Sink interface {
	SetViewportSize(w, h float64)
	SetScale(s float64)
	AddTranslation(dx, dy float64)
	Clear(c values.Color)
	DrawRect(rect Rect, fill values.Color, borders Borders, corners Corners)
	DrawText(pos Point, text string, fontFamilies []string, size float64, style TextStyle, color values.Color)
	DrawPixels(rect Rect, rgba []byte)
}
