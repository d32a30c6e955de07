package layout

import "gocko/style"

// Metrics is a measured run of text: its advance width and line height, in
// device pixels, for one font/size/weight/style combination.
type Metrics struct {
	Width  float64
	Height float64
}

// Font measures text for one concrete family at one size/weight.
type Font interface {
	Measure(text string, sizePx float64, weight style.FontWeight, italic bool) Metrics
}

// FontProvider resolves a CSS font-family list to the first available Font.
type FontProvider interface {
	// Lookup returns the first matching Font for the family list, in order,
	// or ok=false if none of them are available.
	Lookup(families []string) (Font, bool)
}

// ImageSizer resolves an already-fetched image's intrinsic pixel size.
// Implementations are expected to consult a decode cache keyed by URL; a nil
// ImageSizer is valid and makes every image report unknown size.
type ImageSizer interface {
	Size(url string) (width, height float64, ok bool)
}

// monospaceEstimator is the layout engine's font-independent fallback: a
// fixed-width estimator used whenever no FontProvider is supplied or no
// requested family resolves. Per-glyph advance is ceil(size/2), matching a
// typical monospace aspect ratio closely enough to produce stable,
// deterministic layout without a real font backend.
type monospaceEstimator struct{}

func (monospaceEstimator) Measure(text string, sizePx float64, weight style.FontWeight, italic bool) Metrics {
	advance := estimateGlyphAdvance(sizePx)
	n := float64(len([]rune(text)))
	return Metrics{Width: n * advance, Height: sizePx * 1.2}
}

func estimateGlyphAdvance(sizePx float64) float64 {
	// ceil(size/2)
	half := sizePx / 2
	if half != float64(int64(half)) {
		half = float64(int64(half)) + 1
	}
	if half < 1 {
		half = 1
	}
	return half
}

// NoFonts is a FontProvider that never resolves a real font, forcing every
// measurement through the monospace estimator. Useful for tests and for any
// run where no font backend has been wired in.
type NoFonts struct{}

func (NoFonts) Lookup(families []string) (Font, bool) { return nil, false }

// measure resolves families against fonts (falling back to the monospace
// estimator when fonts is nil or nothing matches) and measures text.
func measure(fonts FontProvider, families []string, text string, sizePx float64, weight style.FontWeight, italic bool) Metrics {
	if fonts != nil {
		if f, ok := fonts.Lookup(families); ok {
			return f.Measure(text, sizePx, weight, italic)
		}
	}
	return monospaceEstimator{}.Measure(text, sizePx, weight, italic)
}
