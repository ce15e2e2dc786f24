package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Builder assembles accepted heading candidates into the final outline:
// ordered by page and vertical position, with consecutive duplicates
// collapsed.
type Builder struct{}

// NewBuilder creates an outline builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build sorts candidates by (page, YTop), collapses consecutive entries
// with identical text and page (a heading duplicated by overlapping runs),
// and attaches the title. The result is deterministic for a given input.
func (b *Builder) Build(title string, candidates []HeadingCandidate) *model.Outline {
	sorted := make([]HeadingCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Run.Page != sorted[j].Run.Page {
			return sorted[i].Run.Page < sorted[j].Run.Page
		}
		return sorted[i].Run.YTop < sorted[j].Run.YTop
	})

	outline := &model.Outline{Title: title}
	for _, c := range sorted {
		entry := model.Entry{
			Level: c.Level,
			Text:  c.Run.Text,
			Page:  c.Run.Page,
		}
		if n := len(outline.Entries); n > 0 {
			prev := outline.Entries[n-1]
			if prev.Page == entry.Page && strings.EqualFold(prev.Text, entry.Text) {
				continue
			}
		}
		outline.Entries = append(outline.Entries, entry)
	}

	return outline
}
