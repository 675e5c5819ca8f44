package md

import (
	"regexp"
	"strings"
)

var (
	boldRe        = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe      = regexp.MustCompile(`\*(.*?)\*`)
	bulletMarkRe  = regexp.MustCompile(`^[•*]\s+`)
	numberMarkRe  = regexp.MustCompile(`^\d+\.\s+`)
	numberCheckRe = regexp.MustCompile(`^\d+\.\s`)
)

// Clean strips the markdown dialect down to plain display text:
// leading heading markers are removed, `* ` bullets become the
// canonical `• ` glyph and bold/italic spans keep only their inner
// text. Empty input yields empty output.
func Clean(input string) string {
	if input == "" {
		return ""
	}

	cleaned := input
	switch {
	case strings.HasPrefix(cleaned, "# "):
		cleaned = cleaned[2:]
	case strings.HasPrefix(cleaned, "## "):
		cleaned = cleaned[3:]
	case strings.HasPrefix(cleaned, "### "):
		cleaned = cleaned[4:]
	}

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		if t := strings.TrimSpace(line); strings.HasPrefix(t, "* ") {
			lines[i] = "• " + t[2:]
		}
	}
	cleaned = strings.Join(lines, "\n")

	cleaned = boldRe.ReplaceAllString(cleaned, "$1")
	cleaned = italicRe.ReplaceAllString(cleaned, "$1")
	return cleaned
}

// ExtractBulletPoints returns the content of lines already recognized
// as bullets, either the canonical `• ` glyph or a raw `* ` marker.
func ExtractBulletPoints(input string) []string {
	if input == "" {
		return nil
	}
	var points []string
	for _, line := range strings.Split(input, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "• ") || strings.HasPrefix(t, "* ") {
			points = append(points, bulletMarkRe.ReplaceAllString(t, ""))
		}
	}
	return points
}

// ExtractNumberedList returns the content of lines shaped like
// `1. item`.
func ExtractNumberedList(input string) []string {
	if input == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(input, "\n") {
		t := strings.TrimSpace(line)
		if numberCheckRe.MatchString(t) {
			items = append(items, numberMarkRe.ReplaceAllString(t, ""))
		}
	}
	return items
}

// Formatting reports whether the text carries bold or italic span
// markers. A text is italic only when it has single-asterisk markers
// and no bold markers.
func Formatting(input string) (bold, italic bool) {
	if input == "" {
		return false, false
	}
	bold = strings.Contains(input, "**")
	italic = strings.Contains(input, "*") && !bold
	return bold, italic
}

// FormatAsBullets rewrites plain content as canonical bullet lines.
// Content that already carries bullet or numbered formatting is
// returned unchanged.
func FormatAsBullets(content string) string {
	if content == "" {
		return ""
	}
	if strings.Contains(content, "• ") || strings.Contains(content, "* ") || numberCheckRe.MatchString(content) {
		return content
	}
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, "• "+t)
		}
	}
	return strings.Join(lines, "\n")
}

// Section is one heading-delimited slice of a structured document.
type Section struct {
	Title        string   `json:"title"`
	Level        int      `json:"level"`
	Content      []string `json:"content"`
	BulletPoints []string `json:"bullet_points"`
}

// ParseStructure groups content lines into sections delimited by
// `#`/`##` headings. Lines before the first heading go into a
// level-0 section with an empty title.
func ParseStructure(content string) []Section {
	if content == "" {
		return nil
	}
	var sections []Section
	var current *Section
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Title: line[2:], Level: 1}
		case strings.HasPrefix(line, "## "):
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Title: line[3:], Level: 2}
		case strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "• "):
			if current != nil {
				current.BulletPoints = append(current.BulletPoints, bulletMarkRe.ReplaceAllString(line, ""))
			}
		case strings.TrimSpace(line) != "":
			if current == nil {
				current = &Section{Level: 0}
			}
			current.Content = append(current.Content, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}
