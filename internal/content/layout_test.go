package content

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTrip(t *testing.T) {
	sections := Trip()
	if len(sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(sections))
	}
	for _, s := range sections {
		if s.Title == "" || len(s.Entries) == 0 {
			t.Errorf("Section %q is empty", s.Title)
		}
	}

	// Callers may mutate what they get back.
	sections[0].Title = "changed"
	if Trip()[0].Title == "changed" {
		t.Error("Trip should return a fresh copy")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "short line", 20, []string{"short line"}},
		{"wraps", "one two three four", 9, []string{"one two", "three", "four"}},
		{"long word cut", "abcdefghij xy", 4, []string{"abcd", "xy"}},
		{"wide runes", "東京 大阪", 4, []string{"東京", "大阪"}},
		{"empty", "", 10, nil},
		{"zero width", "text", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Wrap(%q, %d)[%d] = %q, want %q", tt.in, tt.width, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLayout_RespectsWidth(t *testing.T) {
	for _, width := range []int{12, 30, 80} {
		lines := Layout(Trip(), width)
		if len(lines) == 0 {
			t.Fatalf("width %d: no lines", width)
		}
		for i, l := range lines {
			w := runewidth.StringWidth(l.Text)
			if l.Kind == LineTitle || l.Kind == LineDetail {
				w += timeColumn
			}
			if w > width {
				t.Errorf("width %d: line %d %q is %d cells", width, i, l.Text, w)
			}
		}
	}
}

func TestLayout_Structure(t *testing.T) {
	lines := Layout(Trip(), 80)

	if lines[0].Kind != LineHeading {
		t.Errorf("First line should be a heading, got %v", lines[0].Kind)
	}
	if lines[1].Kind != LineTitle || lines[1].Time != "07:30" {
		t.Errorf("Second line should be the first stop, got %+v", lines[1])
	}

	headings := 0
	for _, l := range lines {
		if l.Kind == LineHeading {
			headings++
		}
	}
	if headings != len(Trip()) {
		t.Errorf("Expected %d headings, got %d", len(Trip()), headings)
	}
}

func TestPadTime(t *testing.T) {
	if got := PadTime("09:00"); got != "09:00  " {
		t.Errorf("PadTime = %q", got)
	}
	if got := PadTime(""); runewidth.StringWidth(got) != timeColumn {
		t.Errorf("PadTime(\"\") width = %d", runewidth.StringWidth(got))
	}
}
