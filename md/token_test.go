package md

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{"empty", "", nil},
		{"blank lines skipped", "\n\n", nil},
		{
			"paragraph",
			"just some prose",
			[]Token{{Kind: KindParagraph, Text: "just some prose"}},
		},
		{
			"headings by level",
			"# One\n## Two\n### Three",
			[]Token{
				{Kind: KindHeading, Level: 1, Text: "One"},
				{Kind: KindHeading, Level: 2, Text: "Two"},
				{Kind: KindHeading, Level: 3, Text: "Three"},
			},
		},
		{
			"bullet markers",
			"• glyph\n* star\n- dash",
			[]Token{
				{Kind: KindBullet, Marker: "•", Text: "glyph"},
				{Kind: KindBullet, Marker: "*", Text: "star"},
				{Kind: KindBullet, Marker: "-", Text: "dash"},
			},
		},
		{
			"numbered items keep ordinals",
			"1. first\n12. twelfth",
			[]Token{
				{Kind: KindNumbered, Number: 1, Text: "first"},
				{Kind: KindNumbered, Number: 12, Text: "twelfth"},
			},
		},
		{
			"emphasis flattened to flags",
			"- **bold** item\nplain *italic* line",
			[]Token{
				{Kind: KindBullet, Marker: "-", Text: "bold item", Bold: true},
				{Kind: KindParagraph, Text: "plain italic line", Italic: true},
			},
		},
		{
			"indented bullet",
			"   - deep",
			[]Token{{Kind: KindBullet, Marker: "-", Text: "deep"}},
		},
		{
			"paragraphs grouped on blank lines",
			"l1\nl2\n\nSecond.",
			[]Token{
				{Kind: KindParagraph, Text: "l1\nl2"},
				{Kind: KindParagraph, Text: "Second."},
			},
		},
		{
			"list line closes a paragraph group",
			"intro one\nintro two\n- item\ncoda",
			[]Token{
				{Kind: KindParagraph, Text: "intro one\nintro two"},
				{Kind: KindBullet, Marker: "-", Text: "item"},
				{Kind: KindParagraph, Text: "coda"},
			},
		},
		{
			"grouped paragraph keeps emphasis flags",
			"plain start\nwith **bold** end",
			[]Token{{Kind: KindParagraph, Text: "plain start\nwith bold end", Bold: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}
