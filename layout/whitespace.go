package layout

import (
	"strings"
	"unicode"

	"gocko/style"
)

// CollapseWhitespace runs the whitespace-collapsing pass over the whole
// layout tree, then applies text-transform to what survives, then prunes
// text boxes that collapsed to empty and anonymous blocks left childless by
// that pruning. It is idempotent: running it twice produces the same tree.
func CollapseWhitespace(root *Box) *Box {
	if root == nil {
		return nil
	}
	var runs [][]*Box
	collectRuns(root, &runs)
	for _, run := range runs {
		collapseRun(run)
		applyTextTransform(run)
	}
	return pruneEmpty(root)
}

// collectRuns splits b's descendants into runs: maximal sequences of
// inline-level, white-space:normal text boxes, ended by any block-level box
// (whose own children start a fresh, independently scanned run set) or any
// box whose resolved white-space is not "normal" (whose text is left
// untouched entirely, preserved verbatim).
func collectRuns(b *Box, runs *[][]*Box) {
	var current []*Box
	var walk func(*Box)
	walk = func(n *Box) {
		if n.Type == TypeBlock || n.Type == TypeAnonymousBlock {
			if len(current) > 0 {
				*runs = append(*runs, current)
				current = nil
			}
			collectRuns(n, runs)
			return
		}
		if n.StyledNode != nil && n.StyledNode.WhiteSpaceProperty() != style.WhiteSpaceNormal {
			if len(current) > 0 {
				*runs = append(*runs, current)
				current = nil
			}
			return
		}
		if n.Type == TypeText {
			current = append(current, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range b.Children {
		walk(c)
	}
	if len(current) > 0 {
		*runs = append(*runs, current)
	}
}

func isWhitespaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// collapseRun applies the run-based collapsing rules across box boundaries,
// mutating each box's Text in place. A box with no whitespace keeps its
// original string (borrowed from the DOM) unless it needs a leading
// separator space; a box containing any whitespace is rebuilt into a new
// string, even when the result equals the original.
func collapseRun(run []*Box) {
	pendingSpace := false
	runHasContent := false

	for _, box := range run {
		text := box.Text
		hasWS := strings.ContainsAny(text, " \t\n\r\f\v")

		if !hasWS {
			if pendingSpace && runHasContent && text != "" {
				box.Text = " " + text
			}
			if text != "" {
				runHasContent = true
			}
			pendingSpace = false
			continue
		}

		var sb strings.Builder
		sb.Grow(len(text))
		for _, r := range text {
			if isWhitespaceRune(r) {
				pendingSpace = true
				continue
			}
			if pendingSpace && runHasContent {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
			runHasContent = true
			pendingSpace = false
		}
		box.Text = sb.String()
	}
}

// applyTextTransform rewrites each box's (already whitespace-collapsed)
// text per its resolved text-transform. full-width/full-size-kana are
// acknowledged but left unimplemented, matching the values the property
// resolver itself recognises but the rest of the engine does not act on.
func applyTextTransform(run []*Box) {
	prevEndedWord := true
	for _, box := range run {
		if box.StyledNode == nil {
			prevEndedWord = prevEndedWord && box.Text == ""
			continue
		}
		switch box.StyledNode.TextTransformProperty() {
		case style.TextTransformUppercase:
			box.Text = strings.ToUpper(box.Text)
		case style.TextTransformLowercase:
			box.Text = strings.ToLower(box.Text)
		case style.TextTransformCapitalize:
			box.Text, prevEndedWord = capitalizeWords(box.Text, prevEndedWord)
		default:
			if box.Text != "" {
				prevEndedWord = !unicode.IsLetter(rune(box.Text[len(box.Text)-1]))
			}
		}
	}
}

// capitalizeWords uppercases the first letter following a non-letter
// boundary, carrying whether the run is mid-word across box boundaries via
// atWordStart.
func capitalizeWords(s string, atWordStart bool) (string, bool) {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if atWordStart {
				runes[i] = unicode.ToUpper(r)
			}
			atWordStart = false
		} else {
			atWordStart = true
		}
	}
	return string(runes), atWordStart
}

func pruneEmpty(b *Box) *Box {
	if b == nil {
		return nil
	}
	if b.Type == TypeText && b.Text == "" {
		return nil
	}
	var kept []*Box
	for _, c := range b.Children {
		if pc := pruneEmpty(c); pc != nil {
			kept = append(kept, pc)
		}
	}
	b.Children = kept
	if b.Type == TypeAnonymousBlock && len(b.Children) == 0 {
		return nil
	}
	return b
}
