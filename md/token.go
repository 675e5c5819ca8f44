// Package md interprets the lightweight markdown dialect used in
// slide content: `#` headings, `*`/`-` bullets, `1.` numbered items
// and `**bold**`/`*italic*` spans. A line matches at most one kind;
// the only cross-line state is paragraph grouping on blank lines.
package md

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Kind is the classified shape of one content line.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindBullet
	KindNumbered
)

// Token is one classified line. Text carries the line content with
// markers and emphasis spans stripped; Bold/Italic record whether a
// span was present so consumers can style runs.
type Token struct {
	Kind   Kind   `json:"kind"`
	Level  int    `json:"level,omitempty"`  // heading level, 1-3
	Number int    `json:"number,omitempty"` // numbered item ordinal as written
	Marker string `json:"-"`                // bullet marker: "•", "*" or "-"
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

var numberedRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Classify splits text into lines and produces one token per
// non-empty line. Classification is first-match: heading, then
// bullet, then numbered, then paragraph. Consecutive paragraph lines
// form one token; a blank line or a line of any other kind closes the
// group.
func Classify(input string) []Token {
	if input == "" {
		return nil
	}
	var tokens []Token
	var para *Token
	flush := func() {
		if para != nil {
			tokens = append(tokens, *para)
			para = nil
		}
	}
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		tok := classifyLine(line, trimmed)
		if tok.Kind == KindParagraph {
			if para == nil {
				t := tok
				para = &t
			} else {
				para.Text += "\n" + tok.Text
				para.Bold = para.Bold || tok.Bold
				para.Italic = para.Italic || tok.Italic
			}
			continue
		}
		flush()
		tokens = append(tokens, tok)
	}
	flush()
	return tokens
}

var headingPrefixes = []string{"# ", "## ", "### "}

func classifyLine(line, trimmed string) Token {
	for i, prefix := range headingPrefixes {
		if strings.HasPrefix(line, prefix) {
			tok := flatten(strings.TrimPrefix(line, prefix))
			tok.Kind = KindHeading
			tok.Level = i + 1
			return tok
		}
	}
	for _, marker := range []string{"• ", "* ", "- "} {
		if strings.HasPrefix(trimmed, marker) {
			tok := flatten(strings.TrimPrefix(trimmed, marker))
			tok.Kind = KindBullet
			tok.Marker = strings.TrimSuffix(marker, " ")
			return tok
		}
	}
	if m := numberedRe.FindStringSubmatch(trimmed); m != nil {
		tok := flatten(m[2])
		tok.Kind = KindNumbered
		tok.Number = atoiSafe(m[1])
		return tok
	}
	tok := flatten(trimmed)
	tok.Kind = KindParagraph
	return tok
}

// flatten strips emphasis spans from inline text via the markdown
// parser, keeping the presence of bold/italic as flags.
func flatten(input string) Token {
	src := []byte(input)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var sb strings.Builder
	var bold, italic bool
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Emphasis:
			if v.Level == 2 {
				bold = true
			} else {
				italic = true
			}
		case *ast.Text:
			sb.Write(v.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return Token{Text: sb.String(), Bold: bold, Italic: italic}
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
