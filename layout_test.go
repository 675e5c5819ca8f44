package slidegen

import (
	"strings"
	"testing"
)

func TestSelectLayout(t *testing.T) {
	tests := []struct {
		name  string
		slide *Slide
		index int
		want  Archetype
	}{
		{"nil slide", nil, 0, ArchetypeTextOnly},
		{"title only", &Slide{Title: "Welcome"}, 3, ArchetypeTitleSlide},
		{"empty slide", &Slide{}, 0, ArchetypeTextOnly},
		{"plain text", &Slide{Title: "T", Content: "some prose"}, 0, ArchetypeTextOnly},
		{"bulleted text", &Slide{Title: "T", Content: "- a\n- b"}, 0, ArchetypeBulletsOnly},
		{"short image slide index 0", &Slide{Title: "T", Content: "short", ImageURL: "u"}, 0, ArchetypeImageRight},
		{"short image slide index 1", &Slide{Title: "T", Content: "short", ImageURL: "u"}, 1, ArchetypeImageLeft},
		{"short image slide index 2", &Slide{Title: "T", Content: "short", ImageURL: "u"}, 2, ArchetypeImageTop},
		{"medium image slide index 2", &Slide{Title: "T", Content: strings.Repeat("a", 250), ImageURL: "u"}, 2, ArchetypeImageBottom},
		{"long image slide even index", &Slide{Title: "T", Content: strings.Repeat("a", 501), ImageURL: "u"}, 2, ArchetypeImageRight},
		{"long image slide odd index", &Slide{Title: "T", Content: strings.Repeat("a", 501), ImageURL: "u"}, 3, ArchetypeImageLeft},
		{"bulleted image slide even index", &Slide{Title: "T", Content: "- a\n- b", ImageURL: "u"}, 0, ArchetypeImageRight},
		{"bulleted image slide odd index", &Slide{Title: "T", Content: "- a\n- b", ImageURL: "u"}, 1, ArchetypeImageLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectLayout(tt.slide, tt.index); got != tt.want {
				t.Errorf("SelectLayout() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Identical input must always produce the identical archetype.
func TestSelectLayoutDeterministic(t *testing.T) {
	slide := &Slide{Title: "T", Content: strings.Repeat("a", 300), ImageURL: "u"}
	first := SelectLayout(slide, 2)
	for i := 0; i < 100; i++ {
		if got := SelectLayout(slide, 2); got != first {
			t.Fatalf("SelectLayout() = %v, want %v", got, first)
		}
	}
}

func TestParseArchetype(t *testing.T) {
	for _, a := range Archetypes() {
		got, ok := ParseArchetype(string(a))
		if !ok || got != a {
			t.Errorf("ParseArchetype(%q) = %v, %v", a, got, ok)
		}
	}
	for _, name := range []string{"auto", "", "image_right", "TITLE"} {
		if _, ok := ParseArchetype(name); ok {
			t.Errorf("ParseArchetype(%q) = true, want false", name)
		}
	}
}

func TestArchetypes(t *testing.T) {
	if got := len(Archetypes()); got != 7 {
		t.Errorf("len(Archetypes()) = %d, want 7", got)
	}
}
