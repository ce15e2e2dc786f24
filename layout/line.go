package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// MergeConfig holds configuration for run merging
type MergeConfig struct {
	// VerticalTolerance is the maximum YTop difference for two runs to be
	// considered part of the same visual line, as a fraction of font size
	// Default: 0.5
	VerticalTolerance float64

	// SizeEpsilon is the maximum font-size difference for two runs to be
	// merged (absorbs rendering noise)
	// Default: 0.5 points
	SizeEpsilon float64

	// GapSpacingRatio is the horizontal gap, as a fraction of font size,
	// above which a space is inserted between merged fragments
	// Default: 0.3
	GapSpacingRatio float64
}

// DefaultMergeConfig returns sensible default configuration
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		VerticalTolerance: 0.5,
		SizeEpsilon:       0.5,
		GapSpacingRatio:   0.3,
	}
}

// RunMerger merges fragment-level text runs into visual lines.
//
// Extractors frequently emit one run per text-show operation, so a single
// printed heading can arrive split into several fragments at (almost) the
// same vertical position. Merging vertically adjacent, same-size, same-page
// fragments before classification keeps split headings from being
// under-counted. Input that is already line-level passes through unchanged,
// since distinct lines sit farther apart than the vertical tolerance.
type RunMerger struct {
	config MergeConfig
}

// NewRunMerger creates a run merger with default configuration
func NewRunMerger() *RunMerger {
	return &RunMerger{config: DefaultMergeConfig()}
}

// NewRunMergerWithConfig creates a run merger with custom configuration
func NewRunMergerWithConfig(config MergeConfig) *RunMerger {
	return &RunMerger{config: config}
}

// Merge collapses vertically adjacent, same-size runs on the same page into
// single line-level runs. Run order within the result follows the input's
// page order and top-to-bottom position.
func (m *RunMerger) Merge(runs []model.TextRun) []model.TextRun {
	if len(runs) == 0 {
		return nil
	}

	var merged []model.TextRun
	var group []model.TextRun

	flush := func() {
		if len(group) > 0 {
			merged = append(merged, m.assemble(group))
			group = nil
		}
	}

	for _, run := range runs {
		if run.IsEmpty() {
			continue
		}
		if len(group) == 0 {
			group = append(group, run)
			continue
		}

		last := group[len(group)-1]
		sameLine := run.Page == last.Page &&
			absFloat(run.FontSize-last.FontSize) <= m.config.SizeEpsilon &&
			absFloat(run.YTop-last.YTop) <= m.tolerance(last)

		if sameLine {
			group = append(group, run)
		} else {
			flush()
			group = append(group, run)
		}
	}
	flush()

	return merged
}

// tolerance returns the vertical merge tolerance for a run, in points
func (m *RunMerger) tolerance(run model.TextRun) float64 {
	size := run.FontSize
	if size <= 0 {
		size = 12.0
	}
	return size * m.config.VerticalTolerance
}

// assemble builds one line-level run from a group of same-line fragments
func (m *RunMerger) assemble(group []model.TextRun) model.TextRun {
	if len(group) == 1 {
		return group[0]
	}

	// Left-to-right order for text assembly
	sorted := make([]model.TextRun, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var sb strings.Builder
	var lastEnd float64
	for i, frag := range sorted {
		if i > 0 {
			gap := frag.X - lastEnd
			if gap > frag.FontSize*m.config.GapSpacingRatio {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(frag.Text)
		lastEnd = frag.X + frag.Width
	}

	line := sorted[0]
	line.Text = strings.Join(strings.Fields(sb.String()), " ")
	line.Width = (sorted[len(sorted)-1].X + sorted[len(sorted)-1].Width) - sorted[0].X

	// Topmost position and strongest style of the group
	for _, frag := range sorted[1:] {
		if frag.YTop < line.YTop {
			line.YTop = frag.YTop
		}
		line.Bold = line.Bold || frag.Bold
		line.Italic = line.Italic || frag.Italic
	}

	return line
}

// absFloat returns the absolute value of a float64
func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
