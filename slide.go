package slidegen

import (
	"regexp"
	"strings"
)

// Slides is an ordered list of slides making up one deck.
type Slides []*Slide

// Slide is the editable unit of a deck. It is produced by content
// generation or user edits and consumed read-only by the export
// pipeline; exporters work on cleaned copies and never mutate it.
type Slide struct {
	Title                 string  `json:"title"`
	Content               string  `json:"content"`
	Notes                 string  `json:"notes,omitempty"`
	ImageURL              string  `json:"image_url,omitempty"`
	ImageCredit           *Credit `json:"image_credit,omitempty"`
	BackgroundColor       string  `json:"background_color,omitempty"`
	BackgroundImage       string  `json:"background_image,omitempty"`
	BackgroundImageCredit *Credit `json:"background_image_credit,omitempty"`
}

// Credit attributes an image to its author.
type Credit struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Template supplies default colors and font when a slide does not
// carry its own background.
type Template struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Format selects the output encoder.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatImages  Format = "images"
	FormatArchive Format = "ppt"
)

// LayoutAuto lets the selector pick an archetype per slide. Any other
// preference value is an archetype name applied to every slide.
const LayoutAuto = "auto"

// ExportJob describes one user-triggered export. It is immutable for
// the duration of the job.
type ExportJob struct {
	Slides           Slides    `json:"slides"`
	Title            string    `json:"title"`
	Template         *Template `json:"template,omitempty"`
	Theme            Theme     `json:"theme,omitempty"`
	Format           Format    `json:"format"`
	LayoutPreference string    `json:"layout_preference,omitempty"`
}

var slugRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Slug converts a deck title into a safe filename stem. Runs of
// non-alphanumeric characters become underscores and the result is
// lowercased. An empty result falls back to "presentation".
func Slug(title string) string {
	s := strings.ToLower(slugRe.ReplaceAllString(title, "_"))
	if s == "" {
		return "presentation"
	}
	return s
}
