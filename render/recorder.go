package render

import "gocko/css/values"

// CommandKind discriminates a recorded Command.
type CommandKind int

const (
	CmdSetViewportSize CommandKind = iota
	CmdSetScale
	CmdAddTranslation
	CmdClear
	CmdDrawRect
	CmdDrawText
	CmdDrawPixels
)

// Command is one recorded drawing call. Only the fields relevant to Kind
// are meaningful; this is intentionally a flat, comparable struct (modulo
// the FontFamilies and RGBA slices) so tests can assert on a recorded
// command sequence.
type Command struct {
	Kind CommandKind

	W, H float64
	Dx, Dy float64
	Scale float64

	Color values.Color

	Rect    Rect
	Borders Borders
	Corners Corners

	Pos          Point
	Text         string
	FontFamilies []string
	Size         float64
	TextStyle    TextStyle

	RGBA []byte
}

// Recorder is a Sink that appends every call to Commands, replayable and
// equality-testable so rendering can be verified headlessly.
type Recorder struct {
	Commands []Command
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) SetViewportSize(w, h float64) {
	r.Commands = append(r.Commands, Command{Kind: CmdSetViewportSize, W: w, H: h})
}

func (r *Recorder) SetScale(s float64) {
	r.Commands = append(r.Commands, Command{Kind: CmdSetScale, Scale: s})
}

func (r *Recorder) AddTranslation(dx, dy float64) {
	r.Commands = append(r.Commands, Command{Kind: CmdAddTranslation, Dx: dx, Dy: dy})
}

func (r *Recorder) Clear(c values.Color) {
	r.Commands = append(r.Commands, Command{Kind: CmdClear, Color: c})
}

func (r *Recorder) DrawRect(rect Rect, fill values.Color, borders Borders, corners Corners) {
	r.Commands = append(r.Commands, Command{Kind: CmdDrawRect, Rect: rect, Color: fill, Borders: borders, Corners: corners})
}

func (r *Recorder) DrawText(pos Point, text string, fontFamilies []string, size float64, style TextStyle, color values.Color) {
	r.Commands = append(r.Commands, Command{
		Kind: CmdDrawText, Pos: pos, Text: text, FontFamilies: fontFamilies,
		Size: size, TextStyle: style, Color: color,
	})
}

func (r *Recorder) DrawPixels(rect Rect, rgba []byte) {
	r.Commands = append(r.Commands, Command{Kind: CmdDrawPixels, Rect: rect, RGBA: rgba})
}
