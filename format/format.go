// Package format serializes an [model.Outline] for downstream consumers:
// the stable JSON contract, a Markdown table of contents, and an HTML
// rendering of that Markdown (via goldmark).
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/tsawler/outliner/model"
)

// Name constants for the supported output formats
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Supported reports whether a format name is one this package can render
func Supported(name string) bool {
	switch name {
	case FormatJSON, FormatMarkdown, FormatHTML:
		return true
	}
	return false
}

// JSON renders the outline as its wire JSON. With pretty set, the output
// is indented for human reading; otherwise it is compact.
func JSON(outline *model.Outline, pretty bool) ([]byte, error) {
	if outline == nil {
		outline = &model.Outline{}
	}
	if pretty {
		return json.MarshalIndent(outline, "", "    ")
	}
	return json.Marshal(outline)
}

// MarkdownTOC renders the outline as a Markdown table of contents: the
// title as a top-level heading, entries as a nested list with page numbers
func MarkdownTOC(outline *model.Outline) string {
	if outline == nil {
		return ""
	}

	var sb strings.Builder
	if outline.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(outline.Title)
		sb.WriteString("\n\n")
	}
	for _, entry := range outline.Entries {
		indent := strings.Repeat("  ", levelDepth(entry.Level))
		sb.WriteString(indent)
		sb.WriteString("- ")
		sb.WriteString(entry.Text)
		fmt.Fprintf(&sb, " (page %d)\n", entry.Page)
	}
	return sb.String()
}

// HTML renders the outline's Markdown table of contents to HTML
func HTML(outline *model.Outline) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(MarkdownTOC(outline)), &buf); err != nil {
		return nil, fmt.Errorf("render outline html: %w", err)
	}
	return buf.Bytes(), nil
}

// Render produces the outline in the named format. JSON output is compact;
// use [JSON] directly for indented output.
func Render(outline *model.Outline, name string) ([]byte, error) {
	switch name {
	case FormatJSON:
		return JSON(outline, false)
	case FormatMarkdown:
		return []byte(MarkdownTOC(outline)), nil
	case FormatHTML:
		return HTML(outline)
	default:
		return nil, fmt.Errorf("unsupported output format %q", name)
	}
}

// ContentType returns the HTTP content type for a format name
func ContentType(name string) string {
	switch name {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json"
	}
}

// levelDepth maps a heading level to its list nesting depth
func levelDepth(level model.Level) int {
	switch level {
	case model.LevelH2:
		return 1
	case model.LevelH3:
		return 2
	default:
		return 0
	}
}
