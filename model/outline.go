package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the hierarchical level of an outline heading. Exactly
// three levels exist; they serialize to the literal strings "H1", "H2"
// and "H3".
type Level int

const (
	LevelUnknown Level = iota
	LevelH1            // top-level section or chapter
	LevelH2            // major subsection
	LevelH3            // minor subsection
)

// String returns the wire representation of the level
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the level as its wire string
func (l Level) MarshalJSON() ([]byte, error) {
	if l < LevelH1 || l > LevelH3 {
		return nil, fmt.Errorf("cannot marshal unknown heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON parses the wire string back into a Level
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// ParseLevel converts a numbering depth (1, 2, 3, ...) to a Level,
// clamping depths beyond 3 to H3
func ParseLevel(depth int) Level {
	switch {
	case depth <= 1:
		return LevelH1
	case depth == 2:
		return LevelH2
	default:
		return LevelH3
	}
}

// Entry is one heading in the final outline
type Entry struct {
	// Level is the heading level (H1, H2 or H3)
	Level Level `json:"level"`

	// Text is the heading text
	Text string `json:"text"`

	// Page is the 1-based page the heading appears on
	Page int `json:"page"`
}

// Outline is the final artifact of the pipeline: a document title plus the
// ordered heading sequence. Entries are sorted by ascending page, then by
// vertical position within a page, and no two consecutive entries share
// identical text and page.
type Outline struct {
	// Title is the detected document title. May be empty when the first
	// two pages contain no usable candidate; callers substitute their own
	// default (the CLI and fluent API use the source filename stem).
	Title string `json:"title"`

	// Entries are the detected headings in reading order. An empty list is
	// a valid result: a document with no detectable structure still
	// produces a title-only outline.
	Entries []Entry `json:"outline"`
}

// MarshalJSON guarantees the "outline" field is always a JSON array,
// never null, so the wire shape is stable for empty outlines.
func (o Outline) MarshalJSON() ([]byte, error) {
	entries := o.Entries
	if entries == nil {
		entries = []Entry{}
	}
	type wire struct {
		Title   string  `json:"title"`
		Entries []Entry `json:"outline"`
	}
	return json.Marshal(wire{Title: o.Title, Entries: entries})
}

// EntryCount returns the number of outline entries
func (o *Outline) EntryCount() int {
	if o == nil {
		return 0
	}
	return len(o.Entries)
}

// EntriesAtLevel returns all entries at a specific level, in order
func (o *Outline) EntriesAtLevel(level Level) []Entry {
	if o == nil {
		return nil
	}
	var result []Entry
	for _, e := range o.Entries {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}
