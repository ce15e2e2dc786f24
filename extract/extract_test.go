package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// makeText builds a positioned fragment as the parser would emit it
func makeText(s string, x, y, w, fontSize float64, font string) pdf.Text {
	return pdf.Text{
		S:        s,
		X:        x,
		Y:        y,
		W:        w,
		FontSize: fontSize,
		Font:     font,
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.LineTolerance != 0.5 {
		t.Errorf("Expected LineTolerance=0.5, got %f", config.LineTolerance)
	}
	if config.GapSpacingRatio != 0.3 {
		t.Errorf("Expected GapSpacingRatio=0.3, got %f", config.GapSpacingRatio)
	}
	if config.FallbackPageHeight != 792.0 {
		t.Errorf("Expected FallbackPageHeight=792, got %f", config.FallbackPageHeight)
	}
}

func TestGroupLines(t *testing.T) {
	// Two visual lines, fragments deliberately out of order.
	texts := []pdf.Text{
		makeText("second", 72, 680, 42, 12, "Helvetica"),
		makeText("line.", 120, 680.4, 30, 12, "Helvetica"),
		makeText("The first", 72, 700, 55, 12, "Helvetica"),
		makeText("line of text.", 132, 699.7, 70, 12, "Helvetica"),
	}

	lines := New().groupLines(texts)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Higher Y first: top of the page leads.
	if lines[0][0].S != "The first" {
		t.Errorf("expected the top line first, got %q", lines[0][0].S)
	}
	if len(lines[0]) != 2 || len(lines[1]) != 2 {
		t.Errorf("expected 2 fragments per line, got %d and %d", len(lines[0]), len(lines[1]))
	}
}

func TestGroupLines_XOrderWithinLine(t *testing.T) {
	texts := []pdf.Text{
		makeText("tail", 140, 700, 25, 12, "Helvetica"),
		makeText("head", 72, 700, 30, 12, "Helvetica"),
	}

	lines := New().groupLines(texts)

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0][0].S != "head" || lines[0][1].S != "tail" {
		t.Errorf("expected left-to-right order, got %q then %q", lines[0][0].S, lines[0][1].S)
	}
}

func TestAssembleRun(t *testing.T) {
	// "2.1 Prior Work" emitted as three fragments on one baseline.
	line := []pdf.Text{
		makeText("2.1", 72, 680, 20, 18, "Helvetica-Bold"),
		makeText("Prior", 100, 680, 38, 18, "Helvetica-Bold"),
		makeText("Work", 145, 680, 40, 18, "Helvetica-Bold"),
	}

	run := New().assembleRun(line, 3, 792)

	if run.Text != "2.1 Prior Work" {
		t.Errorf("expected %q, got %q", "2.1 Prior Work", run.Text)
	}
	if run.Page != 3 {
		t.Errorf("expected page 3, got %d", run.Page)
	}
	if run.FontSize != 18 {
		t.Errorf("expected font size 18, got %f", run.FontSize)
	}
	if !run.Bold {
		t.Error("expected bold from the font name")
	}
	if run.X != 72 {
		t.Errorf("expected left edge 72, got %f", run.X)
	}
	if want := (145.0 + 40.0) - 72.0; run.Width != want {
		t.Errorf("expected width %f, got %f", want, run.Width)
	}
}

func TestAssembleRun_TopOriginConversion(t *testing.T) {
	// Baseline Y=680 on a 792pt page with an 18pt face: the top offset is
	// measured down from the page top.
	line := []pdf.Text{
		makeText("Heading", 72, 680, 60, 18, "Helvetica"),
	}

	run := New().assembleRun(line, 1, 792)

	if want := 792.0 - 680.0 - 18.0; run.YTop != want {
		t.Errorf("expected YTop %f, got %f", want, run.YTop)
	}
	if run.PageHeight != 792 {
		t.Errorf("expected page height carried through, got %f", run.PageHeight)
	}
}

func TestAssembleRun_NegativeYTopClamped(t *testing.T) {
	line := []pdf.Text{
		makeText("Overflow", 72, 790, 60, 18, "Helvetica"),
	}

	run := New().assembleRun(line, 1, 792)

	if run.YTop != 0 {
		t.Errorf("expected YTop clamped to 0, got %f", run.YTop)
	}
}

func TestAssembleRun_AdjacentFragmentsNoSpace(t *testing.T) {
	// Per-character emission: fragments that abut join without spaces.
	line := []pdf.Text{
		makeText("I", 72, 700, 4, 12, "Times-Roman"),
		makeText("n", 76, 700, 7, 12, "Times-Roman"),
		makeText("t", 83, 700, 5, 12, "Times-Roman"),
		makeText("r", 88, 700, 5, 12, "Times-Roman"),
		makeText("o", 93, 700, 7, 12, "Times-Roman"),
	}

	run := New().assembleRun(line, 1, 792)

	if run.Text != "Intro" {
		t.Errorf("expected %q, got %q", "Intro", run.Text)
	}
}

func TestAssembleRun_NFKCNormalization(t *testing.T) {
	// The "fi" ligature decomposes so heading text compares cleanly.
	line := []pdf.Text{
		makeText("Deﬁnitions", 72, 700, 70, 14, "Times-Roman"),
	}

	run := New().assembleRun(line, 1, 792)

	if run.Text != "Definitions" {
		t.Errorf("expected normalized %q, got %q", "Definitions", run.Text)
	}
}

func TestFontStyleDetection(t *testing.T) {
	boldTests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"ABCDEF+TimesNewRomanPS-BoldMT", true},
		{"Roboto-Black", true},
		{"SourceSansPro-Semibold", true},
		{"Helvetica", false},
		{"Times-Roman", false},
		{"", false},
	}
	for _, tt := range boldTests {
		if got := IsBoldFont(tt.font); got != tt.want {
			t.Errorf("IsBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}

	italicTests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Oblique", true},
		{"Times-Italic", true},
		{"TimesNewRomanPS-ItalicMT", true},
		{"Helvetica", false},
		{"", false},
	}
	for _, tt := range italicTests {
		if got := IsItalicFont(tt.font); got != tt.want {
			t.Errorf("IsItalicFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}
