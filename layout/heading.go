package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// HeadingCandidate is a run promoted to heading status
type HeadingCandidate struct {
	// Level is the assigned heading level (H1, H2 or H3)
	Level model.Level

	// Run is the source run, kept for page and position ordering
	Run model.TextRun

	// Confidence is a score from 0-1 indicating classification confidence
	Confidence float64

	// Rule is the name of the rule that produced the classification
	Rule string
}

// Rule is one typed classification rule in the cascade. Apply returns the
// level and confidence for a match, or ok=false when the rule does not
// apply to the run. Rules are pure: the shared profile is read-only.
type Rule interface {
	// Name identifies the rule in results and logs
	Name() string

	// Apply evaluates the rule against a single run
	Apply(run model.TextRun, profile *FontProfile) (level model.Level, confidence float64, ok bool)
}

// ClassifierConfig holds configuration for heading classification
type ClassifierConfig struct {
	// MinTextLength and MaxTextLength bound the rune length of heading
	// candidates; anything outside is rejected before the rules run
	// Defaults: 3 and 200
	MinTextLength int
	MaxTextLength int

	// MaxKeywordWords is the word-count cap for the keyword rule, so a
	// keyword buried in a body sentence cannot match
	// Default: 6
	MaxKeywordWords int

	// MaxCapsWords is the word-count cap for the all-caps rule
	// Default: 8
	MaxCapsWords int

	// Keywords are section names that classify as H1 on an exact
	// case-insensitive match
	Keywords []string
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MinTextLength:   3,
		MaxTextLength:   200,
		MaxKeywordWords: 6,
		MaxCapsWords:    8,
		Keywords: []string{
			"abstract",
			"acknowledgements",
			"acknowledgments",
			"appendix",
			"bibliography",
			"conclusion",
			"conclusions",
			"glossary",
			"introduction",
			"overview",
			"references",
			"revision history",
			"summary",
			"table of contents",
			"trademarks",
		},
	}
}

// Classifier decides, independently per run, whether the run is a heading
// and at what level. The decision folds over an ordered rule cascade
// (numbering pattern, keyword, font-size tier, all-caps), taking the first
// match, so the most specific signal always wins and each rule stays
// independently testable.
type Classifier struct {
	config ClassifierConfig
	rules  []Rule
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{
		config: config,
		rules: []Rule{
			&PatternRule{},
			NewKeywordRule(config.Keywords, config.MaxKeywordWords),
			&SizeTierRule{},
			&AllCapsRule{MaxWords: config.MaxCapsWords},
		},
	}
}

// Rules returns the cascade in priority order
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify evaluates one run. The second return is false when the run is
// rejected; rejection is a normal outcome, never an error. Body-size text
// is only ever promoted by the pattern or keyword rules; bold or caps
// alone never lift plain paragraph text into the outline.
func (c *Classifier) Classify(run model.TextRun, profile *FontProfile) (HeadingCandidate, bool) {
	if c.rejectOutright(run) {
		return HeadingCandidate{}, false
	}

	for _, rule := range c.rules {
		if level, confidence, ok := rule.Apply(run, profile); ok {
			return HeadingCandidate{
				Level:      level,
				Run:        run,
				Confidence: confidence,
				Rule:       rule.Name(),
			}, true
		}
	}

	return HeadingCandidate{}, false
}

var (
	pureDigitsRe = regexp.MustCompile(`^\d+$`)
	dotLeaderRe  = regexp.MustCompile(`\s\.{3,}\s*\d+$`)
)

// rejectOutright applies the pre-filters: degenerate lengths, bare page
// numbers, and table-of-contents lines with dot leaders
func (c *Classifier) rejectOutright(run model.TextRun) bool {
	text := strings.TrimSpace(run.Text)
	n := len([]rune(text))
	if n < c.config.MinTextLength || n > c.config.MaxTextLength {
		return true
	}
	if pureDigitsRe.MatchString(text) {
		return true
	}
	return dotLeaderRe.MatchString(text)
}

// PatternRule classifies runs whose text opens with a structural numbering
// or chapter marker. The numbering depth decides the level and takes
// precedence over the font-size tier, even for body-size text: "1.2.3
// Results" is H3 no matter how it is set.
type PatternRule struct{}

var (
	chapterRe  = regexp.MustCompile(`^(?i)(chapter|part)\s+\d+\b`)
	romanRe    = regexp.MustCompile(`^[IVXLCDM]+\.(\s|$)`)
	numberedRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.)]?(\s|$)`)
)

// Name identifies the rule
func (r *PatternRule) Name() string { return "pattern" }

// Apply matches chapter markers and roman numerals as H1, and dotted
// numbering at the depth of its components, clamped to H3
func (r *PatternRule) Apply(run model.TextRun, _ *FontProfile) (model.Level, float64, bool) {
	text := strings.TrimSpace(run.Text)

	if chapterRe.MatchString(text) || romanRe.MatchString(text) {
		return model.LevelH1, 0.95, true
	}

	if m := numberedRe.FindStringSubmatch(text); m != nil {
		depth := strings.Count(m[1], ".") + 1
		return model.ParseLevel(depth), 0.95, true
	}

	return model.LevelUnknown, 0, false
}

// matchesNumberingPattern reports whether text opens with any structural
// numbering or chapter marker
func matchesNumberingPattern(text string) bool {
	text = strings.TrimSpace(text)
	return chapterRe.MatchString(text) || romanRe.MatchString(text) || numberedRe.MatchString(text)
}

// KeywordRule classifies short runs whose whole text is a well-known
// section name ("References", "Abstract", ...) as H1, regardless of font
// size. The word cap keeps a keyword inside a body sentence from matching.
type KeywordRule struct {
	keywords map[string]struct{}
	maxWords int
}

// NewKeywordRule builds a keyword rule from a keyword list
func NewKeywordRule(keywords []string, maxWords int) *KeywordRule {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[NormalizeText(k)] = struct{}{}
	}
	return &KeywordRule{keywords: set, maxWords: maxWords}
}

// Name identifies the rule
func (r *KeywordRule) Name() string { return "keyword" }

// Apply matches the run's full normalized text against the keyword set
func (r *KeywordRule) Apply(run model.TextRun, _ *FontProfile) (model.Level, float64, bool) {
	if run.WordCount() > r.maxWords {
		return model.LevelUnknown, 0, false
	}
	normalized := NormalizeText(strings.TrimRight(strings.TrimSpace(run.Text), ":."))
	if _, ok := r.keywords[normalized]; ok {
		return model.LevelH1, 0.9, true
	}
	return model.LevelUnknown, 0, false
}

// SizeTierRule classifies runs set at one of the document's heading size
// tiers at the level that tier maps to
type SizeTierRule struct{}

// Name identifies the rule
func (r *SizeTierRule) Name() string { return "size-tier" }

// Apply looks the run's font size up in the profile's tiers
func (r *SizeTierRule) Apply(run model.TextRun, profile *FontProfile) (model.Level, float64, bool) {
	if level, ok := profile.TierLevel(run.FontSize); ok {
		return level, 0.7, true
	}
	return model.LevelUnknown, 0, false
}

// AllCapsRule classifies short, fully uppercase runs set above the body
// size. The level follows the size tier when the size matches one, and
// defaults to H2 otherwise. Body-size caps are left to the keyword rule;
// accepting them here would promote ordinary emphasized text.
type AllCapsRule struct {
	// MaxWords caps the word count for an all-caps heading
	MaxWords int
}

// Name identifies the rule
func (r *AllCapsRule) Name() string { return "all-caps" }

// Apply accepts short all-caps runs above body size
func (r *AllCapsRule) Apply(run model.TextRun, profile *FontProfile) (model.Level, float64, bool) {
	if run.WordCount() > r.MaxWords || !isAllCaps(run.Text) {
		return model.LevelUnknown, 0, false
	}
	if !profile.AboveBody(run.FontSize) {
		return model.LevelUnknown, 0, false
	}
	if level, ok := profile.TierLevel(run.FontSize); ok {
		return level, 0.6, true
	}
	return model.LevelH2, 0.5, true
}

// isAllCaps reports whether the text is essentially all capital letters.
// Requires at least three letters so initialisms in noise fragments do
// not qualify.
func isAllCaps(text string) bool {
	upper, lower := 0, 0
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0
}
