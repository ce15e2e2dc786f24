package layout

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// TitleConfig holds configuration for title detection
type TitleConfig struct {
	// MaxPages is how many leading pages are searched for the title
	// Default: 2
	MaxPages int

	// MaxLength is the maximum title length in runes; longer titles are
	// truncated with an ellipsis
	// Default: 150
	MaxLength int

	// SizeEpsilon is the font-size tolerance when comparing runs against
	// the maximum size
	// Default: 0.5 points
	SizeEpsilon float64

	// LineGapFactor bounds the vertical gap, as a multiple of font size,
	// for adjacent max-size lines to merge into a multi-line title
	// Default: 3.0
	LineGapFactor float64
}

// DefaultTitleConfig returns sensible default configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxPages:      2,
		MaxLength:     150,
		SizeEpsilon:   0.5,
		LineGapFactor: 3.0,
	}
}

// TitleResult is the outcome of title detection. Consumed lists the runs
// absorbed into the title; they are excluded from heading candidacy.
type TitleResult struct {
	Title    string
	Consumed []model.TextRun
}

// Found reports whether a title was detected
func (r TitleResult) Found() bool {
	return r.Title != ""
}

// TitleDetector selects the document title: the largest non-noise text on
// the first pages, with vertically adjacent lines of the same size merged
// into a single multi-line title.
type TitleDetector struct {
	config TitleConfig
}

// NewTitleDetector creates a title detector with default configuration
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{config: DefaultTitleConfig()}
}

// NewTitleDetectorWithConfig creates a title detector with custom configuration
func NewTitleDetectorWithConfig(config TitleConfig) *TitleDetector {
	return &TitleDetector{config: config}
}

// Detect finds the title among the given line-level runs. Only non-noise
// runs on the first MaxPages pages are considered; the maximum font size
// wins, with ties broken by earliest page and then topmost position.
//
// Two classes of runs never qualify: text opening with a numbering or
// chapter marker (a numbered section is structure, not a title; it stays
// available to the heading classifier), and, when the document has
// distinct heading sizes at all, text at or below the body size. Documents
// set in a single size fall back to the raw maximum.
//
// When no candidate exists the result is empty; substituting a default
// (such as the source filename) is the caller's decision.
func (d *TitleDetector) Detect(runs []model.TextRun, mask *NoiseMask, profile *FontProfile) TitleResult {
	var candidates []model.TextRun
	for _, run := range runs {
		if run.Page > d.config.MaxPages || run.IsEmpty() || mask.IsNoise(run) {
			continue
		}
		if matchesNumberingPattern(run.Text) {
			continue
		}
		if !profile.Degenerate() && !profile.AboveBody(run.FontSize) {
			continue
		}
		candidates = append(candidates, run)
	}
	if len(candidates) == 0 {
		return TitleResult{}
	}

	maxSize := candidates[0].FontSize
	for _, run := range candidates[1:] {
		if run.FontSize > maxSize {
			maxSize = run.FontSize
		}
	}

	// Earliest page holding a max-size run; ties below it break by the
	// input's top-to-bottom order.
	page := 0
	for _, run := range candidates {
		if d.sameSize(run.FontSize, maxSize) && (page == 0 || run.Page < page) {
			page = run.Page
		}
	}

	var lines []model.TextRun
	for _, run := range candidates {
		if run.Page == page && d.sameSize(run.FontSize, maxSize) {
			lines = append(lines, run)
		}
	}

	// Grow the title downward from the topmost max-size line while the
	// next one stays within the allowed gap. A stray same-size run far
	// down the page is not part of the title.
	consumed := []model.TextRun{lines[0]}
	parts := []string{lines[0].Text}
	for i := 1; i < len(lines); i++ {
		prev := consumed[len(consumed)-1]
		gap := lines[i].YTop - prev.YTop
		if gap > maxSize*d.config.LineGapFactor {
			break
		}
		consumed = append(consumed, lines[i])
		parts = append(parts, lines[i].Text)
	}

	title := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	title = d.truncate(title)

	return TitleResult{Title: title, Consumed: consumed}
}

// sameSize compares two font sizes within the configured epsilon
func (d *TitleDetector) sameSize(a, b float64) bool {
	return absFloat(a-b) <= d.config.SizeEpsilon
}

// truncate caps the title length, appending an ellipsis when cut
func (d *TitleDetector) truncate(title string) string {
	max := d.config.MaxLength
	if max <= 0 {
		return title
	}
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max-3]) + "..."
}
