package slidegen

import "strings"

// Archetype names one of the fixed slide layout shapes.
type Archetype string

const (
	ArchetypeTitleSlide  Archetype = "TITLE_SLIDE"
	ArchetypeTextOnly    Archetype = "TEXT_ONLY"
	ArchetypeBulletsOnly Archetype = "BULLETS_ONLY"
	ArchetypeImageRight  Archetype = "IMAGE_RIGHT"
	ArchetypeImageLeft   Archetype = "IMAGE_LEFT"
	ArchetypeImageTop    Archetype = "IMAGE_TOP"
	ArchetypeImageBottom Archetype = "IMAGE_BOTTOM"
)

// Archetypes returns all layout archetypes in display order.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeTitleSlide,
		ArchetypeTextOnly,
		ArchetypeBulletsOnly,
		ArchetypeImageRight,
		ArchetypeImageLeft,
		ArchetypeImageTop,
		ArchetypeImageBottom,
	}
}

// ParseArchetype maps a layout preference string to an Archetype.
// Anything unrecognized (including "auto") reports false.
func ParseArchetype(name string) (Archetype, bool) {
	a := Archetype(name)
	for _, known := range Archetypes() {
		if a == known {
			return a, true
		}
	}
	return "", false
}

// SelectLayout picks the archetype for a slide at the given position.
// It is a pure function of the slide's content shape, image presence
// and index, so identical input always yields the identical
// archetype.
func SelectLayout(slide *Slide, index int) Archetype {
	if slide == nil {
		return ArchetypeTextOnly
	}
	if slide.Content == "" && slide.Title != "" {
		return ArchetypeTitleSlide
	}

	if slide.ImageURL != "" {
		contentLength := len(slide.Content)
		hasBullets := containsBulletMarker(slide.Content)

		// Long or bulleted content needs the full side column, so only
		// alternate between the left/right placements.
		if contentLength > 500 || hasBullets {
			if index%2 == 0 {
				return ArchetypeImageRight
			}
			return ArchetypeImageLeft
		}

		switch index % 3 {
		case 0:
			return ArchetypeImageRight
		case 1:
			return ArchetypeImageLeft
		default:
			if contentLength < 200 {
				return ArchetypeImageTop
			}
			return ArchetypeImageBottom
		}
	}

	if slide.Content != "" {
		if containsBulletMarker(slide.Content) {
			return ArchetypeBulletsOnly
		}
		return ArchetypeTextOnly
	}

	return ArchetypeTextOnly
}

func containsBulletMarker(content string) bool {
	return strings.Contains(content, "- ") || strings.Contains(content, "* ")
}
