package slidegen

import "strings"

// Density is a heuristic weight of a text block combining raw length
// and bullet count.
type Density struct {
	Score       float64 `json:"score"`
	BulletCount int     `json:"bullet_count"`
}

// DensityLevel buckets content length for layout decisions.
type DensityLevel string

const (
	DensityLow    DensityLevel = "low"
	DensityMedium DensityLevel = "medium"
	DensityHigh   DensityLevel = "high"
)

// Default analyzer thresholds. They are empirically fixed; changing
// them changes which decks get split, so existing decks only
// reproduce with these exact values.
const (
	DefaultSplitScore    = 15.0
	DefaultSplitBullets  = 8
	DefaultLowLength     = 150
	DefaultMediumLength  = 350
	densityLengthDivisor = 100.0
	densityBulletWeight  = 1.5
)

// Analyzer scores text blocks and decides whether they must be split
// across multiple slides. Thresholds are injected so tests and
// configuration can substitute alternates.
type Analyzer struct {
	SplitScore   float64
	SplitBullets int
	LowLength    int
	MediumLength int
}

// NewAnalyzer returns an Analyzer with the default thresholds.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		SplitScore:   DefaultSplitScore,
		SplitBullets: DefaultSplitBullets,
		LowLength:    DefaultLowLength,
		MediumLength: DefaultMediumLength,
	}
}

// Measure computes the density of a text block:
// length/100 + bulletCount*1.5. Empty input yields a zero density.
func (a *Analyzer) Measure(text string) Density {
	if text == "" {
		return Density{}
	}
	bullets := 0
	for _, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "* ") {
			bullets++
		}
	}
	return Density{
		Score:       float64(len(text))/densityLengthDivisor + float64(bullets)*densityBulletWeight,
		BulletCount: bullets,
	}
}

// ClassifyLength buckets a content length as low, medium or high.
func (a *Analyzer) ClassifyLength(n int) DensityLevel {
	switch {
	case n < a.LowLength:
		return DensityLow
	case n < a.MediumLength:
		return DensityMedium
	default:
		return DensityHigh
	}
}

// ShouldSplit reports whether the content is too dense for a single
// slide.
func (a *Analyzer) ShouldSplit(text string) bool {
	if text == "" {
		return false
	}
	d := a.Measure(text)
	return d.Score > a.SplitScore || d.BulletCount > a.SplitBullets
}
