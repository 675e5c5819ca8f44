package slidegen

import "strings"

// Fragment flush limits. A buffer is flushed to its own slide as soon
// as it holds more than MaxBullets bullet lines or its joined length
// exceeds MaxChars.
const (
	DefaultMaxBullets = 6
	DefaultMaxChars   = 800
)

// Splitter partitions overlong content into an ordered sequence of
// slide fragments, each within density bounds.
type Splitter struct {
	MaxBullets int
	MaxChars   int

	analyzer *Analyzer
}

// NewSplitter returns a Splitter with default flush limits backed by
// the given analyzer. A nil analyzer gets the default thresholds.
func NewSplitter(a *Analyzer) *Splitter {
	if a == nil {
		a = NewAnalyzer()
	}
	return &Splitter{
		MaxBullets: DefaultMaxBullets,
		MaxChars:   DefaultMaxChars,
		analyzer:   a,
	}
}

// Split breaks a title/content/image triple into slide fragments.
// Content under the analyzer's split thresholds comes back as a
// single unchanged slide. Otherwise lines are accumulated in order
// and flushed whenever the running bullet count or joined length
// crosses the limits. The first fragment keeps the original title and
// image; continuation fragments are titled "{title} (cont.)" and
// carry no image. Concatenating the fragments' content reproduces
// every non-empty input line in order.
func (s *Splitter) Split(title, content, imageURL string) Slides {
	if !s.analyzer.ShouldSplit(content) {
		return Slides{{Title: title, Content: content, ImageURL: imageURL}}
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}

	var out Slides
	var buf []string
	bullets := 0
	for _, line := range lines {
		isBullet := strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
		if isBullet {
			bullets++
		}
		if bullets > s.MaxBullets || len(strings.Join(buf, "\n")) > s.MaxChars {
			out = append(out, s.fragment(title, imageURL, buf, len(out)))
			buf = nil
			// The line that forced the flush opens the next buffer, so
			// its bullet (if any) counts against the new slide.
			if isBullet {
				bullets = 1
			} else {
				bullets = 0
			}
		}
		buf = append(buf, line)
	}
	if len(buf) > 0 {
		out = append(out, s.fragment(title, imageURL, buf, len(out)))
	}
	return out
}

func (s *Splitter) fragment(title, imageURL string, lines []string, n int) *Slide {
	if n == 0 {
		return &Slide{Title: title, Content: strings.Join(lines, "\n"), ImageURL: imageURL}
	}
	return &Slide{Title: title + " (cont.)", Content: strings.Join(lines, "\n")}
}
