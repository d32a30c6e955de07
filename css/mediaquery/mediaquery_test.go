package mediaquery

import "testing"

func TestParseSimpleAtoms(t *testing.T) {
	cases := map[string]Kind{
		"all":    KindTrue,
		"screen": KindType,
		"print":  KindType,
	}
	for s, want := range cases {
		if got := Parse(s).Kind; got != want {
			t.Errorf("Parse(%q).Kind = %v, want %v", s, got, want)
		}
	}
}

func TestParseMinWidthEvaluates(t *testing.T) {
	q := Parse("(min-width: 600px)")
	if q.Kind != KindWidth {
		t.Fatalf("expected KindWidth, got %v", q.Kind)
	}
	if !q.Evaluate(Context{WindowWidth: 800}) {
		t.Error("expected 800px window to satisfy min-width: 600px")
	}
	if q.Evaluate(Context{WindowWidth: 400}) {
		t.Error("expected 400px window to fail min-width: 600px")
	}
}

func TestParseEmWidthConvertsAt16px(t *testing.T) {
	q := Parse("(min-width: 10em)")
	if q.WidthMin != 160 {
		t.Errorf("WidthMin = %d, want 160", q.WidthMin)
	}
}

func TestParseAndRequiresAllOperands(t *testing.T) {
	q := Parse("(min-width: 600px) and (prefers-color-scheme: dark)")
	ctx := Context{WindowWidth: 800, ColorScheme: Light}
	if q.Evaluate(ctx) {
		t.Error("expected And to fail when one operand fails")
	}
	ctx.ColorScheme = Dark
	if !q.Evaluate(ctx) {
		t.Error("expected And to hold when both operands hold")
	}
}

func TestParseUnrecognisedQueryIsFalse(t *testing.T) {
	q := Parse("(grid)")
	if q.Kind != KindFalse {
		t.Errorf("expected unrecognised query to parse as KindFalse, got %v", q.Kind)
	}
	if q.Evaluate(Context{}) {
		t.Error("KindFalse must never evaluate true")
	}
}

func TestOrientationDerivedFromDimensions(t *testing.T) {
	ctx := Context{WindowWidth: 400, WindowHeight: 800}
	if ctx.DeriveOrientation() != Portrait {
		t.Error("expected portrait when height >= width")
	}
	ctx = Context{WindowWidth: 800, WindowHeight: 400}
	if ctx.DeriveOrientation() != Landscape {
		t.Error("expected landscape when width > height")
	}
}
