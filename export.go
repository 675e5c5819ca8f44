package slidegen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/k1LoW/errors"
	"github.com/slidedeck/slidegen/md"
)

// ErrNoSlides is returned when an export is requested for an empty
// deck. No file is produced.
var ErrNoSlides = errors.New("no slides to export")

// Default template colors used when neither the slide nor the
// template supplies its own.
const (
	defaultPrimaryColor   = "#3b82f6"
	defaultSecondaryColor = "#f8fafc"
	defaultFontFamily     = "Arial"

	darkTextColor  = "#FFFFFF"
	lightTextColor = "#333333"
)

// LayoutRule can override the selected archetype for a slide, or
// exclude the slide from the export entirely. It is consulted after
// automatic selection; returning ok=false leaves the selection
// untouched.
type LayoutRule func(slide *Slide, index int) (a Archetype, skip bool, ok bool)

// Generator runs export jobs. Construct with New and the functional
// options; a zero Generator is not usable.
type Generator struct {
	analyzer   *Analyzer
	splitter   *Splitter
	geometry   *GeometryProvider
	fetcher    *fetcher
	logger     *slog.Logger
	rule       LayoutRule
	fontFile   string
	imageDelay time.Duration
}

type Option func(*Generator) error

// WithLogger sets the logger used for per-slide progress and
// contained asset failures.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// WithAnalyzer substitutes the density analyzer (and with it the
// split thresholds).
func WithAnalyzer(a *Analyzer) Option {
	return func(g *Generator) error {
		if a == nil {
			return fmt.Errorf("analyzer must not be nil")
		}
		g.analyzer = a
		return nil
	}
}

// WithSplitLimits overrides the fragment flush limits.
func WithSplitLimits(maxBullets, maxChars int) Option {
	return func(g *Generator) error {
		if maxBullets <= 0 || maxChars <= 0 {
			return fmt.Errorf("split limits must be positive: %d, %d", maxBullets, maxChars)
		}
		g.splitter.MaxBullets = maxBullets
		g.splitter.MaxChars = maxChars
		return nil
	}
}

// WithGeometryTable substitutes the layout geometry table.
func WithGeometryTable(table GeometryTable) Option {
	return func(g *Generator) error {
		g.geometry = NewGeometryProvider(table)
		return nil
	}
}

// WithLayoutRule installs a per-slide layout override rule.
func WithLayoutRule(rule LayoutRule) Option {
	return func(g *Generator) error {
		g.rule = rule
		return nil
	}
}

// WithFontFile sets a TrueType font file used by the raster exporter.
// Without one, a built-in bitmap face is used.
func WithFontFile(path string) Option {
	return func(g *Generator) error {
		g.fontFile = path
		return nil
	}
}

// WithImageDelay sets the pause between files written by the raster
// exporter.
func WithImageDelay(d time.Duration) Option {
	return func(g *Generator) error {
		if d < 0 {
			return fmt.Errorf("image delay must not be negative: %s", d)
		}
		g.imageDelay = d
		return nil
	}
}

// New creates a Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	analyzer := NewAnalyzer()
	g := &Generator{
		analyzer:   analyzer,
		splitter:   NewSplitter(analyzer),
		geometry:   NewGeometryProvider(nil),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		imageDelay: defaultImageDelay,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.splitter.analyzer = g.analyzer
	g.fetcher = newFetcher(g.logger)
	return g, nil
}

// plannedSlide is one output slide with its resolved archetype.
type plannedSlide struct {
	slide     *Slide
	archetype Archetype
}

// Export runs one job and writes the resulting file(s) into dir.
// It returns the paths written. An empty deck is rejected up front
// with ErrNoSlides and no side effects. Per-slide image failures are
// contained; encoder failures abort the remaining slides.
func (g *Generator) Export(ctx context.Context, job ExportJob, dir string) (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if len(job.Slides) == 0 {
		return nil, ErrNoSlides
	}

	logger := g.logger.With(slog.String("job_id", uuid.New().String()), slog.String("format", string(job.Format)))
	logger.Info("starting export", slog.Int("slides", len(job.Slides)), slog.String("title", job.Title))

	planned, err := g.plan(job)
	if err != nil {
		return nil, err
	}
	slides := make(Slides, len(planned))
	for i, p := range planned {
		slides[i] = p.slide
	}
	assets := g.fetcher.prefetch(ctx, slides, job.Format == FormatArchive)

	slug := Slug(job.Title)
	var files []string
	switch job.Format {
	case FormatPDF:
		path := filepath.Join(dir, slug+".pdf")
		if err := writeFile(path, func(f *os.File) error {
			return g.exportPDF(ctx, job, planned, assets, f)
		}); err != nil {
			return nil, err
		}
		files = append(files, path)
	case FormatImages:
		files, err = g.exportImages(ctx, job, planned, assets, dir, slug)
		if err != nil {
			return nil, err
		}
	case FormatArchive:
		path := filepath.Join(dir, slug+".pptx")
		if err := writeFile(path, func(f *os.File) error {
			return g.exportArchive(ctx, job, planned, assets, f)
		}); err != nil {
			return nil, err
		}
		files = append(files, path)
	default:
		return nil, fmt.Errorf("unknown export format: %q", job.Format)
	}

	logger.Info("export completed", slog.Int("files", len(files)))
	return files, nil
}

// plan normalizes, splits and lays out the deck into the final slide
// sequence. With an auto layout preference, dense slides are expanded
// into fragments and each output slide gets a selected archetype; a
// fixed preference skips splitting and applies one archetype
// throughout.
func (g *Generator) plan(job ExportJob) ([]plannedSlide, error) {
	forced, fixed := ParseArchetype(job.LayoutPreference)

	var expanded Slides
	if fixed {
		expanded = job.Slides
	} else {
		for _, slide := range job.Slides {
			fragments := g.splitter.Split(slide.Title, md.Clean(slide.Content), slide.ImageURL)
			for _, f := range fragments {
				f.Notes = slide.Notes
				f.ImageCredit = slide.ImageCredit
				f.BackgroundColor = slide.BackgroundColor
				f.BackgroundImage = slide.BackgroundImage
				f.BackgroundImageCredit = slide.BackgroundImageCredit
			}
			if len(fragments) > 1 {
				g.logger.Info("split dense slide", slog.String("title", slide.Title), slog.Int("fragments", len(fragments)))
			}
			expanded = append(expanded, fragments...)
		}
	}

	var planned []plannedSlide
	for i, slide := range expanded {
		archetype := SelectLayout(slide, i)
		if fixed {
			archetype = forced
		}
		if g.rule != nil {
			if a, skip, ok := g.rule(slide, i); ok {
				if skip {
					g.logger.Info("skipping slide by rule", slog.Int("slide", i+1))
					continue
				}
				archetype = a
			}
		}
		planned = append(planned, plannedSlide{slide: slide, archetype: archetype})
	}
	if len(planned) == 0 {
		return nil, ErrNoSlides
	}
	return planned, nil
}

// templateColors resolves the effective colors and font of a job.
func templateColors(job ExportJob) (primary, secondary, font, text string) {
	primary = defaultPrimaryColor
	secondary = defaultSecondaryColor
	font = defaultFontFamily
	if t := job.Template; t != nil {
		if t.PrimaryColor != "" {
			primary = t.PrimaryColor
		}
		if t.SecondaryColor != "" {
			secondary = t.SecondaryColor
		}
		if t.FontFamily != "" {
			font = t.FontFamily
		}
	}
	text = lightTextColor
	if job.Theme == ThemeDark {
		text = darkTextColor
	}
	return primary, secondary, font, text
}

// backgroundColor resolves the fill behind one slide.
func backgroundColor(slide *Slide, secondary string) string {
	if slide.BackgroundColor != "" {
		return slide.BackgroundColor
	}
	return secondary
}

func writeFile(path string, write func(*os.File) error) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return err
	}
	return nil
}
