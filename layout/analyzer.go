package layout

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// AnalyzerConfig bundles the configuration of every pipeline stage
type AnalyzerConfig struct {
	Merge      MergeConfig
	Profiler   FontProfilerConfig
	Noise      NoiseConfig
	Title      TitleConfig
	Classifier ClassifierConfig
}

// DefaultAnalyzerConfig returns the default configuration for all stages
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Merge:      DefaultMergeConfig(),
		Profiler:   DefaultFontProfilerConfig(),
		Noise:      DefaultNoiseConfig(),
		Title:      DefaultTitleConfig(),
		Classifier: DefaultClassifierConfig(),
	}
}

// Analyzer runs the full heading-inference pipeline over one document.
// It holds no per-document state: the profile and noise mask derived
// during Analyze are local values, so one Analyzer may serve concurrent
// documents, or callers may create one per document. Both are safe.
type Analyzer struct {
	config     AnalyzerConfig
	merger     *RunMerger
	profiler   *FontProfiler
	noise      *NoiseDetector
	title      *TitleDetector
	classifier *Classifier
	builder    *Builder
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config:     config,
		merger:     NewRunMergerWithConfig(config.Merge),
		profiler:   NewFontProfilerWithConfig(config.Profiler),
		noise:      NewNoiseDetectorWithConfig(config.Noise),
		title:      NewTitleDetectorWithConfig(config.Title),
		classifier: NewClassifierWithConfig(config.Classifier),
		builder:    NewBuilder(),
	}
}

// runKey identifies a merged run for title exclusion
type runKey struct {
	page int
	yTop float64
	text string
}

// Analyze executes merge, profile, noise detection, title detection,
// classification and outline assembly over the document's runs. It never
// fails: an empty or structureless document yields an outline with no
// entries and possibly no title.
func (a *Analyzer) Analyze(doc *model.Document) *model.Outline {
	if doc == nil || len(doc.Runs) == 0 {
		return &model.Outline{}
	}

	runs := a.merger.Merge(doc.Runs)
	profile := a.profiler.Profile(runs)
	mask := a.noise.Detect(runs, doc.PageCount)
	titleResult := a.title.Detect(runs, mask, profile)

	consumed := make(map[runKey]struct{}, len(titleResult.Consumed))
	for _, run := range titleResult.Consumed {
		consumed[runKey{run.Page, run.YTop, run.Text}] = struct{}{}
	}

	var candidates []HeadingCandidate
	for _, run := range runs {
		if mask.IsNoise(run) {
			continue
		}
		if _, ok := consumed[runKey{run.Page, run.YTop, run.Text}]; ok {
			continue
		}
		// A heading that merely restates the title near the front of the
		// document is the title, not structure.
		if run.Page <= a.config.Title.MaxPages && titleResult.Found() &&
			strings.EqualFold(strings.TrimSpace(run.Text), strings.TrimSpace(titleResult.Title)) {
			continue
		}
		if candidate, ok := a.classifier.Classify(run, profile); ok {
			candidates = append(candidates, candidate)
		}
	}

	return a.builder.Build(titleResult.Title, candidates)
}
