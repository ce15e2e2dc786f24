package outliner

import (
	"path/filepath"
	"strings"

	"github.com/tsawler/outliner/layout"
)

// Options holds configuration for an Extractor.
type Options struct {
	// analyzer carries the per-stage pipeline configuration
	analyzer layout.AnalyzerConfig

	// defaultTitle is substituted when no title candidate exists on the
	// first pages
	defaultTitle string
}

// defaultOptions returns the default extractor options. When a filename is
// known its stem becomes the fallback title.
func defaultOptions(filename string) Options {
	return Options{
		analyzer:     layout.DefaultAnalyzerConfig(),
		defaultTitle: titleStem(filename),
	}
}

// WithConfig replaces the pipeline configuration
func (e *Extractor) WithConfig(config layout.AnalyzerConfig) *Extractor {
	e.options.analyzer = config
	return e
}

// DefaultTitle sets the title used when none can be detected. An empty
// string disables the fallback.
func (e *Extractor) DefaultTitle(title string) *Extractor {
	e.options.defaultTitle = title
	return e
}

// titleStem derives a fallback title from a filename: the base name
// without its extension
func titleStem(filename string) string {
	if filename == "" {
		return ""
	}
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
