package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// makeBandRun creates a run at an explicit vertical position
func makeBandRun(text string, page int, yTop, pageHeight float64) model.TextRun {
	return model.TextRun{
		Text:       text,
		FontSize:   10,
		Page:       page,
		YTop:       yTop,
		PageHeight: pageHeight,
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Confidential   Draft", "confidential draft"},
		{"  PAGE HEADER  ", "page header"},
		{"Already normal", "already normal"},
		{"Tabs\tand\nnewlines", "tabs and newlines"},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNoiseDetector_RepeatingFooter(t *testing.T) {
	var runs []model.TextRun
	for page := 1; page <= 8; page++ {
		runs = append(runs,
			makeBandRun("Confidential Draft", page, 760, 792),
			makeBandRun("ordinary body text", page, 400, 792),
		)
	}

	mask := NewNoiseDetector().Detect(runs, 8)

	if !mask.IsNoise(makeBandRun("Confidential Draft", 5, 760, 792)) {
		t.Error("repeating footer should be noise")
	}
	if mask.IsNoise(makeBandRun("ordinary body text", 5, 400, 792)) {
		t.Error("mid-page body text should not be noise")
	}
	if !mask.Contains("confidential draft") {
		t.Error("mask should contain the normalized footer string")
	}
	if got := mask.Texts(); len(got) != 1 || got[0] != "confidential draft" {
		t.Errorf("unexpected masked strings: %v", got)
	}
}

func TestNoiseDetector_CaseAndWhitespaceInsensitive(t *testing.T) {
	runs := []model.TextRun{
		makeBandRun("Annual  Report", 1, 20, 792),
		makeBandRun("ANNUAL REPORT", 2, 22, 792),
		makeBandRun("annual report", 3, 21, 792),
	}

	mask := NewNoiseDetector().Detect(runs, 10)

	if !mask.IsNoise(makeBandRun("Annual Report", 7, 20, 792)) {
		t.Error("case and whitespace variants should count as the same string")
	}
}

func TestNoiseDetector_BelowThreshold(t *testing.T) {
	// Two pages out of ten is not enough repetition.
	runs := []model.TextRun{
		makeBandRun("Rare Header", 1, 20, 792),
		makeBandRun("Rare Header", 2, 20, 792),
	}

	mask := NewNoiseDetector().Detect(runs, 10)

	if mask.IsNoise(makeBandRun("Rare Header", 1, 20, 792)) {
		t.Error("two occurrences should not reach the threshold")
	}
}

func TestNoiseDetector_ShortDocumentMajority(t *testing.T) {
	// Four-page document: the majority rule needs 3 pages.
	threePages := []model.TextRun{
		makeBandRun("Draft Copy", 1, 770, 792),
		makeBandRun("Draft Copy", 2, 770, 792),
		makeBandRun("Draft Copy", 3, 770, 792),
	}
	mask := NewNoiseDetector().Detect(threePages, 4)
	if !mask.IsNoise(makeBandRun("Draft Copy", 4, 770, 792)) {
		t.Error("3 of 4 pages is a majority; expected noise")
	}

	twoPages := []model.TextRun{
		makeBandRun("Draft Copy", 1, 770, 792),
		makeBandRun("Draft Copy", 2, 770, 792),
	}
	mask = NewNoiseDetector().Detect(twoPages, 4)
	if mask.IsNoise(makeBandRun("Draft Copy", 1, 770, 792)) {
		t.Error("2 of 4 pages is not a majority; expected no noise")
	}
}

func TestNoiseDetector_DriftingFooter(t *testing.T) {
	// The footer sits in the band on three pages but drifts toward the
	// middle on page 4; the drifted occurrence is still masked.
	runs := []model.TextRun{
		makeBandRun("Company Confidential", 1, 760, 792),
		makeBandRun("Company Confidential", 2, 765, 792),
		makeBandRun("Company Confidential", 3, 758, 792),
		makeBandRun("Company Confidential", 4, 600, 792),
	}

	mask := NewNoiseDetector().Detect(runs, 10)

	if !mask.IsNoise(makeBandRun("Company Confidential", 4, 600, 792)) {
		t.Error("drifted occurrence of a masked string should still be noise")
	}
}

func TestNoiseDetector_MidPageRepetitionIgnored(t *testing.T) {
	// Repetition outside the margin bands never creates a mask entry.
	var runs []model.TextRun
	for page := 1; page <= 6; page++ {
		runs = append(runs, makeBandRun("Standard disclaimer text", page, 400, 792))
	}

	mask := NewNoiseDetector().Detect(runs, 6)

	if mask.IsNoise(makeBandRun("Standard disclaimer text", 1, 400, 792)) {
		t.Error("mid-page repetition should not be masked")
	}
}

func TestNoiseDetector_ShortStringsSkipped(t *testing.T) {
	// Page numbers and stray fragments below the length floor are not
	// band candidates.
	var runs []model.TextRun
	for page := 1; page <= 6; page++ {
		runs = append(runs, makeBandRun("iv", page, 770, 792))
	}

	mask := NewNoiseDetector().Detect(runs, 6)

	if mask.IsNoise(makeBandRun("iv", 1, 770, 792)) {
		t.Error("strings below the length floor should not be masked")
	}
}

func TestNoiseDetector_SinglePageDocument(t *testing.T) {
	runs := []model.TextRun{
		makeBandRun("Header", 1, 20, 792),
	}

	mask := NewNoiseDetector().Detect(runs, 1)

	if mask.Len() != 0 {
		t.Errorf("single-page document should produce an empty mask, got %d entries", mask.Len())
	}
}

func TestNoiseMask_NilSafe(t *testing.T) {
	var mask *NoiseMask
	if mask.IsNoise(makeBandRun("anything", 1, 20, 792)) {
		t.Error("nil mask should report nothing as noise")
	}
	if mask.Len() != 0 {
		t.Error("nil mask should have zero length")
	}
}
