package slidegen

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/k1LoW/errors"
	"github.com/slidedeck/slidegen/md"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Raster layout constants, 1280x720 pixels per slide.
const (
	rasterWidth  = 1280
	rasterHeight = 720

	rasterTitleX = 50.0
	rasterTitleY = 100.0
	rasterBodyX  = 50.0
	rasterBodyY  = 180.0
	rasterLine   = 40.0

	rasterFontTitle = 48.0
	rasterFontBody  = 32.0

	// Like the vector exporter, images sit in a fixed right-side
	// area rather than the archetype's image rectangle.
	rasterImageW      = 400
	rasterImageWDense = 350

	defaultImageDelay = 500 * time.Millisecond
)

// exportImages renders one PNG per slide. Files are written with a
// small delay between slides. A slide whose image fails to draw is
// rendered without it; only file-write failures abort the export.
func (g *Generator) exportImages(ctx context.Context, job ExportJob, planned []plannedSlide, assets []slideAssets, dir, slug string) (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	titleFace, bodyFace, err := g.loadFaces()
	if err != nil {
		return nil, err
	}
	primary, secondary, _, textColor := templateColors(job)

	var files []string
	for i, p := range planned {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		slide := p.slide

		cleanTitle := md.Clean(slide.Title)
		cleanContent := md.Clean(slide.Content)

		dc := gg.NewContext(rasterWidth, rasterHeight)
		bg := HexToRGB(backgroundColor(slide, secondary))
		dc.SetRGB255(bg.R, bg.G, bg.B)
		dc.DrawRectangle(0, 0, rasterWidth, rasterHeight)
		dc.Fill()

		tc := HexToRGB(primary)
		dc.SetRGB255(tc.R, tc.G, tc.B)
		dc.SetFontFace(titleFace)
		dc.DrawString(cleanTitle, rasterTitleX, rasterTitleY)

		cc := HexToRGB(textColor)
		dc.SetRGB255(cc.R, cc.G, cc.B)
		dc.SetFontFace(bodyFace)
		textAreaWidth := float64(rasterWidth - 100)
		if slide.ImageURL != "" {
			textAreaWidth = float64(rasterWidth)/2 - 75
		}
		lineCount := drawWrapped(dc, cleanContent, rasterBodyX, rasterBodyY, textAreaWidth)

		if a := assets[i].image; a != nil {
			drawRasterImage(dc, a.img, lineCount)
		} else if slide.ImageURL != "" {
			g.logger.Warn("rendering slide without its image", slog.Int("slide", i+1))
		}

		path := filepath.Join(dir, fmt.Sprintf("%s_slide_%d.png", slug, i+1))
		if err := savePNG(dc, path); err != nil {
			return files, err
		}
		files = append(files, path)
		g.logger.Info("encoded page", slog.Int("slide", i+1), slog.String("layout", string(p.archetype)))

		if i < len(planned)-1 && g.imageDelay > 0 {
			select {
			case <-ctx.Done():
				return files, ctx.Err()
			case <-time.After(g.imageDelay):
			}
		}
	}
	return files, nil
}

// drawWrapped word-wraps text into the given width using the
// context's own measurement and returns the number of lines drawn.
func drawWrapped(dc *gg.Context, text string, x, y, width float64) int {
	words := strings.Fields(text)
	line := ""
	lines := 1
	for n, word := range words {
		test := line + word + " "
		if w, _ := dc.MeasureString(test); w > width && n > 0 {
			dc.DrawString(line, x, y)
			line = word + " "
			y += rasterLine
			lines++
		} else {
			line = test
		}
	}
	dc.DrawString(line, x, y)
	return lines
}

// drawRasterImage scales the image to the fixed right-side area,
// shrinking it slightly when the body text already runs long.
func drawRasterImage(dc *gg.Context, img image.Image, lineCount int) {
	w := rasterImageW
	x := rasterWidth - w - 50
	if lineCount > 8 {
		w = rasterImageWDense
		x = rasterWidth - w - 40
	}
	b := img.Bounds()
	if b.Dx() == 0 {
		return
	}
	h := b.Dy() * w / b.Dx()
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, draw.Over, nil)
	dc.DrawImage(scaled, x, int(rasterBodyY))
}

// loadFaces prepares the title and body font faces. A configured
// TrueType file is preferred; otherwise a built-in bitmap face keeps
// the exporter functional without any font on disk.
func (g *Generator) loadFaces() (titleFace, bodyFace font.Face, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if g.fontFile == "" {
		return basicfont.Face7x13, basicfont.Face7x13, nil
	}
	b, err := os.ReadFile(g.fontFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read font file %s: %w", g.fontFile, err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse font file %s: %w", g.fontFile, err)
	}
	titleFace = truetype.NewFace(f, &truetype.Options{Size: rasterFontTitle})
	bodyFace = truetype.NewFace(f, &truetype.Options{Size: rasterFontBody})
	return titleFace, bodyFace, nil
}

func savePNG(dc *gg.Context, path string) (err error) {
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
	if err := dc.EncodePNG(f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
