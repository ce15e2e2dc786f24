package layout

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// FontProfile is the document-scoped font-size statistic: an occurrence
// histogram, the inferred body-text size, and the ranked heading-candidate
// sizes. It is built once per document and never mutated afterwards.
type FontProfile struct {
	// Counts maps bucketed font size to the number of characters set at
	// that size across the whole document
	Counts map[float64]int

	// BodySize is the dominant font size, assumed to be paragraph text.
	// Zero when the document has no runs.
	BodySize float64

	// Tiers are the distinct sizes strictly greater than BodySize, sorted
	// descending and truncated to the configured maximum. Tiers[0] maps to
	// H1, Tiers[1] to H2, Tiers[2] to H3.
	Tiers []float64

	// SizeEpsilon is the bucketing epsilon the profile was built with
	SizeEpsilon float64
}

// FontProfilerConfig holds configuration for font profiling
type FontProfilerConfig struct {
	// SizeEpsilon groups font sizes within this distance into one bucket,
	// absorbing rendering noise
	// Default: 0.5 points
	SizeEpsilon float64

	// MaxTiers is the maximum number of heading size tiers to retain
	// Default: 3 (H1, H2, H3)
	MaxTiers int
}

// DefaultFontProfilerConfig returns sensible default configuration
func DefaultFontProfilerConfig() FontProfilerConfig {
	return FontProfilerConfig{
		SizeEpsilon: 0.5,
		MaxTiers:    3,
	}
}

// FontProfiler builds a FontProfile from the document's run sequence
type FontProfiler struct {
	config FontProfilerConfig
}

// NewFontProfiler creates a font profiler with default configuration
func NewFontProfiler() *FontProfiler {
	return &FontProfiler{config: DefaultFontProfilerConfig()}
}

// NewFontProfilerWithConfig creates a font profiler with custom configuration
func NewFontProfilerWithConfig(config FontProfilerConfig) *FontProfiler {
	return &FontProfiler{config: config}
}

// Profile tallies character counts per bucketed font size and derives the
// body size and heading tiers. Character weighting (rather than run
// counting) keeps many short runs from outvoting the paragraph text.
//
// A document with zero runs or a single font size yields a degenerate
// profile with no tiers; that is a valid result, not an error.
func (f *FontProfiler) Profile(runs []model.TextRun) *FontProfile {
	profile := &FontProfile{
		Counts:      make(map[float64]int),
		SizeEpsilon: f.config.SizeEpsilon,
	}

	for _, run := range runs {
		if run.IsEmpty() || run.FontSize <= 0 {
			continue
		}
		profile.Counts[f.bucket(run.FontSize)] += len([]rune(run.Text))
	}

	if len(profile.Counts) == 0 {
		return profile
	}

	// Body size: the heaviest bucket. Ties break toward the smaller size,
	// so a heading size never wins over equally weighted paragraph text.
	maxCount := -1
	for size, count := range profile.Counts {
		if count > maxCount || (count == maxCount && size < profile.BodySize) {
			maxCount = count
			profile.BodySize = size
		}
	}

	// Candidate heading tiers: distinct sizes above body, largest first
	for size := range profile.Counts {
		if size > profile.BodySize {
			profile.Tiers = append(profile.Tiers, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(profile.Tiers)))
	if len(profile.Tiers) > f.config.MaxTiers {
		profile.Tiers = profile.Tiers[:f.config.MaxTiers]
	}

	return profile
}

// bucket snaps a font size to its epsilon-sized bucket
func (f *FontProfiler) bucket(size float64) float64 {
	eps := f.config.SizeEpsilon
	if eps <= 0 {
		return size
	}
	return math.Round(size/eps) * eps
}

// Bucket snaps a font size to the profile's epsilon grid
func (p *FontProfile) Bucket(size float64) float64 {
	if p.SizeEpsilon <= 0 {
		return size
	}
	return math.Round(size/p.SizeEpsilon) * p.SizeEpsilon
}

// Degenerate returns true if the profile carries no heading tiers, either
// because the document is empty or because it uses a single font size
func (p *FontProfile) Degenerate() bool {
	return p == nil || len(p.Tiers) == 0
}

// TierLevel maps a font size to its heading level. The second return is
// false when the size does not fall on one of the retained tiers.
func (p *FontProfile) TierLevel(size float64) (model.Level, bool) {
	if p == nil {
		return model.LevelUnknown, false
	}
	bucketed := p.Bucket(size)
	for i, tier := range p.Tiers {
		if bucketed == tier {
			return model.LevelH1 + model.Level(i), true
		}
	}
	return model.LevelUnknown, false
}

// AboveBody returns true if the size is strictly larger than the body size
// after bucketing. Always false for a profile with no runs.
func (p *FontProfile) AboveBody(size float64) bool {
	if p == nil || p.BodySize <= 0 {
		return false
	}
	return p.Bucket(size) > p.BodySize
}
