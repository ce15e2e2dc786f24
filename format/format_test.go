package format

import (
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

func sampleOutline() *model.Outline {
	return &model.Outline{
		Title: "Field Guide",
		Entries: []model.Entry{
			{Level: model.LevelH1, Text: "Introduction", Page: 1},
			{Level: model.LevelH2, Text: "Scope", Page: 2},
			{Level: model.LevelH3, Text: "Terminology", Page: 2},
		},
	}
}

func TestSupported(t *testing.T) {
	for _, name := range []string{FormatJSON, FormatMarkdown, FormatHTML} {
		if !Supported(name) {
			t.Errorf("expected %q to be supported", name)
		}
	}
	for _, name := range []string{"yaml", "", "JSON"} {
		if Supported(name) {
			t.Errorf("expected %q to be unsupported", name)
		}
	}
}

func TestJSONCompact(t *testing.T) {
	data, err := JSON(sampleOutline(), false)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	want := `{"title":"Field Guide","outline":[{"level":"H1","text":"Introduction","page":1},{"level":"H2","text":"Scope","page":2},{"level":"H3","text":"Terminology","page":2}]}`
	if string(data) != want {
		t.Errorf("compact JSON mismatch:\ngot  %s\nwant %s", data, want)
	}
}

func TestJSONPretty(t *testing.T) {
	data, err := JSON(sampleOutline(), true)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	if !strings.Contains(string(data), "\n    ") {
		t.Error("pretty output should be indented")
	}
	if !strings.Contains(string(data), `"title": "Field Guide"`) {
		t.Errorf("pretty output missing title, got %s", data)
	}
}

func TestJSONNilOutline(t *testing.T) {
	data, err := JSON(nil, false)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	if string(data) != `{"title":"","outline":[]}` {
		t.Errorf("nil outline should render an empty contract, got %s", data)
	}
}

func TestMarkdownTOC(t *testing.T) {
	got := MarkdownTOC(sampleOutline())

	want := "# Field Guide\n\n" +
		"- Introduction (page 1)\n" +
		"  - Scope (page 2)\n" +
		"    - Terminology (page 2)\n"
	if got != want {
		t.Errorf("markdown mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdownTOCNoTitle(t *testing.T) {
	outline := &model.Outline{
		Entries: []model.Entry{{Level: model.LevelH1, Text: "Only Section", Page: 4}},
	}

	got := MarkdownTOC(outline)

	if strings.HasPrefix(got, "#") {
		t.Errorf("untitled outline should not emit a heading, got %q", got)
	}
	if !strings.Contains(got, "- Only Section (page 4)") {
		t.Errorf("missing entry line, got %q", got)
	}
}

func TestHTML(t *testing.T) {
	data, err := HTML(sampleOutline())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	html := string(data)
	if !strings.Contains(html, "<h1>Field Guide</h1>") {
		t.Errorf("expected rendered title heading, got %s", html)
	}
	if !strings.Contains(html, "<li>") {
		t.Errorf("expected list items, got %s", html)
	}
}

func TestRender(t *testing.T) {
	outline := sampleOutline()

	for _, name := range []string{FormatJSON, FormatMarkdown, FormatHTML} {
		data, err := Render(outline, name)
		if err != nil {
			t.Errorf("Render(%q): %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("Render(%q) produced no output", name)
		}
	}

	if _, err := Render(outline, "yaml"); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{FormatJSON, "application/json"},
		{FormatMarkdown, "text/markdown; charset=utf-8"},
		{FormatHTML, "text/html; charset=utf-8"},
		{"anything", "application/json"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.name); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
