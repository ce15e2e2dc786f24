// Package layout implements the heading-inference core: the analysis that
// turns per-page text runs with font metrics into a ranked, leveled outline.
//
// The pipeline runs in six stages, each a pure function over the immutable
// run sequence:
//
//   - [RunMerger] - merges fragment-level runs into visual lines
//   - [FontProfiler] - builds the document font-size histogram and the
//     H1-H3 size tiers
//   - [NoiseDetector] - finds repeating header/footer text and produces a
//     [NoiseMask]
//   - [TitleDetector] - selects the document title from the largest
//     non-noise text on the first two pages
//   - [Classifier] - decides, per run, whether it is a heading and at what
//     level, using an ordered cascade of [Rule] values
//   - [Builder] - orders and deduplicates accepted headings into the final
//     outline
//
// # Configuration
//
// Each stage can be configured independently:
//
//	profiler := layout.NewFontProfilerWithConfig(layout.FontProfilerConfig{
//	    SizeEpsilon: 0.25,
//	    MaxTiers:    3,
//	})
//
// # Error handling
//
// No stage returns an error. Sparse or degenerate input (no runs, a single
// font size, no title candidate, no accepted headings) produces a valid,
// possibly empty, result rather than a failure.
//
// The derived values ([FontProfile], [NoiseMask]) are document-scoped and
// immutable once built, so independent documents can be processed in
// parallel with one pipeline instance each.
package layout
