package slidegen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/k1LoW/errors"
	"github.com/slidedeck/slidegen/md"
)

// PDF layout constants, landscape A4 in millimeters.
const (
	pdfMargin     = 20.0
	pdfTitleY     = 30.0
	pdfBodyY      = 50.0
	pdfLineHeight = 8.0

	pdfFontTitle = 24.0
	pdfFontBody  = 16.0

	// The vector exporter places images in a fixed top-right box
	// regardless of the selected archetype. This is a deliberate
	// format simplification, not an application of the geometry
	// table; see the archive exporter for the geometry-aware path.
	pdfImageW = 60.0
	pdfImageH = 40.0
)

// exportPDF writes one landscape page per slide: background fill,
// title in the template primary color, body text word-wrapped to the
// content width using the encoder's own text measurement, and the
// slide image in a fixed top-right box.
func (g *Generator) exportPDF(ctx context.Context, job ExportJob, planned []plannedSlide, assets []slideAssets, w io.Writer) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	pdf := gofpdf.New("L", "mm", "A4", "")
	pageW, pageH := pdf.GetPageSize()
	primary, secondary, _, textColor := templateColors(job)

	for i, p := range planned {
		if err := ctx.Err(); err != nil {
			return err
		}
		slide := p.slide
		pdf.AddPage()

		cleanTitle := md.Clean(slide.Title)
		cleanContent := md.Clean(slide.Content)

		bg := HexToRGB(backgroundColor(slide, secondary))
		pdf.SetFillColor(bg.R, bg.G, bg.B)
		pdf.Rect(0, 0, pageW, pageH, "F")

		tc := HexToRGB(primary)
		pdf.SetTextColor(tc.R, tc.G, tc.B)
		pdf.SetFont("Helvetica", "B", pdfFontTitle)
		pdf.Text(pdfMargin, pdfTitleY, cleanTitle)

		cc := HexToRGB(textColor)
		pdf.SetTextColor(cc.R, cc.G, cc.B)
		pdf.SetFont("Helvetica", "", pdfFontBody)
		y := pdfBodyY
		for _, line := range pdf.SplitText(cleanContent, pageW-2*pdfMargin) {
			pdf.Text(pdfMargin, y, line)
			y += pdfLineHeight
		}

		if a := assets[i].image; a != nil {
			if err := placePDFImage(pdf, a, i, pageW); err != nil {
				g.logger.Warn("failed to place slide image", slog.Int("slide", i+1), slog.Any("error", err))
			}
		}
		g.logger.Info("encoded page", slog.Int("slide", i+1), slog.String("layout", string(p.archetype)))
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func placePDFImage(pdf *gofpdf.Fpdf, a *asset, index int, pageW float64) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	imageType := strings.ToUpper(a.format)
	name := fmt.Sprintf("slide-image-%d", index)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	if info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(a.b)); info == nil {
		return fmt.Errorf("failed to register image")
	}
	pdf.ImageOptions(name, pageW-pdfImageW-pdfMargin, pdfBodyY, pdfImageW, pdfImageH, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to draw image: %w", err)
	}
	return nil
}
