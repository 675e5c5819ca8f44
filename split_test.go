package slidegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitterKeepsSlideUnderThresholds(t *testing.T) {
	s := NewSplitter(nil)
	got := s.Split("Intro", "- one\n- two", "https://example.com/a.png")
	want := Slides{
		{Title: "Intro", Content: "- one\n- two", ImageURL: "https://example.com/a.png"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestSplitterBulletOverflow(t *testing.T) {
	s := NewSplitter(nil)
	var lines []string
	for i := 0; i < 9; i++ {
		lines = append(lines, "- item "+strings.Repeat("x", i+1))
	}
	got := s.Split("Agenda", strings.Join(lines, "\n"), "https://example.com/a.png")

	if len(got) != 2 {
		t.Fatalf("fragments = %d, want 2", len(got))
	}
	// First six bullets fill the first fragment; the seventh opens the
	// continuation.
	if want := strings.Join(lines[:6], "\n"); got[0].Content != want {
		t.Errorf("fragment 0 content = %q, want %q", got[0].Content, want)
	}
	if want := strings.Join(lines[6:], "\n"); got[1].Content != want {
		t.Errorf("fragment 1 content = %q, want %q", got[1].Content, want)
	}
	if got[0].Title != "Agenda" {
		t.Errorf("fragment 0 title = %q, want %q", got[0].Title, "Agenda")
	}
	if got[1].Title != "Agenda (cont.)" {
		t.Errorf("fragment 1 title = %q, want %q", got[1].Title, "Agenda (cont.)")
	}
	if got[0].ImageURL == "" {
		t.Error("fragment 0 lost the image")
	}
	if got[1].ImageURL != "" {
		t.Error("continuation fragment must not carry the image")
	}
}

func TestSplitterCharOverflow(t *testing.T) {
	s := NewSplitter(nil)
	line := strings.Repeat("a", 300)
	content := strings.Join([]string{line, line, line, line, line, line}, "\n")
	got := s.Split("Long", content, "")

	if len(got) < 2 {
		t.Fatalf("fragments = %d, want at least 2", len(got))
	}
	for i, f := range got {
		if len(f.Content) > DefaultMaxChars+len(line)+1 {
			t.Errorf("fragment %d content length = %d, exceeds flush bound", i, len(f.Content))
		}
	}
}

// Concatenating the fragments must reproduce every non-empty input
// line in order, with no line lost or duplicated.
func TestSplitterPreservesLines(t *testing.T) {
	s := NewSplitter(nil)
	tests := []struct {
		name    string
		content string
	}{
		{"many bullets", strings.Repeat("- bullet line\n", 20)},
		{"mixed lines", strings.Repeat("- bullet\nplain paragraph line\n\n", 12)},
		{"long paragraphs", strings.Repeat(strings.Repeat("w", 120)+"\n", 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want []string
			for _, line := range strings.Split(tt.content, "\n") {
				if l := strings.TrimSpace(line); l != "" {
					want = append(want, l)
				}
			}
			var got []string
			for _, f := range s.Split("T", tt.content, "") {
				for _, line := range strings.Split(f.Content, "\n") {
					if l := strings.TrimSpace(line); l != "" {
						got = append(got, l)
					}
				}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}
