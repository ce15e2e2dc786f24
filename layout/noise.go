package layout

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/tsawler/outliner/model"
)

// NoiseConfig holds configuration for header/footer detection
type NoiseConfig struct {
	// MarginFraction is the fraction of the page height, measured from the
	// top and from the bottom, treated as the header and footer bands
	// Default: 0.10
	MarginFraction float64

	// MinPages is the minimum number of distinct pages a banded string
	// must repeat on to count as noise
	// Default: 3
	MinPages int

	// ShortDocPages is the page count below which the majority rule is
	// used instead of MinPages: the string must appear on more than half
	// of the document's pages
	// Default: 6
	ShortDocPages int

	// MinTextLength is the minimum normalized length for a band string to
	// be considered; shorter strings are usually stray fragments
	// Default: 4
	MinTextLength int
}

// DefaultNoiseConfig returns sensible default configuration
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		MarginFraction: 0.10,
		MinPages:       3,
		ShortDocPages:  6,
		MinTextLength:  4,
	}
}

// NoiseMask records the text content identified as repeating header/footer
// noise. A run is noise when its normalized text matches a masked string,
// wherever on the page that occurrence sits: a footer that drifts out of
// the margin band on some pages is still suppressed there.
//
// The mask is built once per document and is immutable afterwards.
type NoiseMask struct {
	texts map[string]struct{}
}

// IsNoise reports whether a run's content is masked header/footer noise
func (m *NoiseMask) IsNoise(run model.TextRun) bool {
	if m == nil || len(m.texts) == 0 {
		return false
	}
	_, ok := m.texts[NormalizeText(run.Text)]
	return ok
}

// Contains reports whether a normalized string is masked
func (m *NoiseMask) Contains(normalized string) bool {
	if m == nil {
		return false
	}
	_, ok := m.texts[normalized]
	return ok
}

// Len returns the number of distinct masked strings
func (m *NoiseMask) Len() int {
	if m == nil {
		return 0
	}
	return len(m.texts)
}

// Texts returns the masked strings in unspecified order
func (m *NoiseMask) Texts() []string {
	if m == nil {
		return nil
	}
	texts := make([]string, 0, len(m.texts))
	for t := range m.texts {
		texts = append(texts, t)
	}
	return texts
}

var foldCaser = cases.Fold()

// NormalizeText case-folds a string and collapses internal whitespace,
// producing the comparison key used for repetition counting
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(foldCaser.String(s)), " ")
}

// NoiseDetector finds text that recurs in the top or bottom margin band
// across pages. Running headers and footers are positionally stable and
// textually repeated; font-size analysis alone would misclassify a bold
// repeated footer as a heading.
type NoiseDetector struct {
	config NoiseConfig
}

// NewNoiseDetector creates a noise detector with default configuration
func NewNoiseDetector() *NoiseDetector {
	return &NoiseDetector{config: DefaultNoiseConfig()}
}

// NewNoiseDetectorWithConfig creates a noise detector with custom configuration
func NewNoiseDetectorWithConfig(config NoiseConfig) *NoiseDetector {
	return &NoiseDetector{config: config}
}

// Detect scans the margin bands of every page, counts the distinct pages
// each normalized band string appears on, and masks strings that meet the
// repetition threshold: MinPages for normal documents, a strict majority
// of pages for documents shorter than ShortDocPages.
func (d *NoiseDetector) Detect(runs []model.TextRun, pageCount int) *NoiseMask {
	mask := &NoiseMask{texts: make(map[string]struct{})}
	if pageCount <= 1 {
		return mask
	}

	// Distinct pages per banded normalized string
	bandPages := make(map[string]map[int]struct{})

	for _, run := range runs {
		if !d.inBand(run) {
			continue
		}
		normalized := NormalizeText(run.Text)
		if len([]rune(normalized)) < d.config.MinTextLength {
			continue
		}
		pages, ok := bandPages[normalized]
		if !ok {
			pages = make(map[int]struct{})
			bandPages[normalized] = pages
		}
		pages[run.Page] = struct{}{}
	}

	threshold := d.config.MinPages
	if pageCount < d.config.ShortDocPages {
		threshold = pageCount/2 + 1
	}

	for normalized, pages := range bandPages {
		if len(pages) >= threshold {
			mask.texts[normalized] = struct{}{}
		}
	}

	return mask
}

// inBand reports whether a run sits in the top or bottom margin band
func (d *NoiseDetector) inBand(run model.TextRun) bool {
	if run.PageHeight <= 0 {
		return false
	}
	margin := run.PageHeight * d.config.MarginFraction
	return run.YTop < margin || run.YTop > run.PageHeight-margin
}
