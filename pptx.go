package slidegen

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/k1LoW/errors"
	"github.com/slidedeck/slidegen/md"
)

// Archive layout constants. The archive canvas is the encoder's
// default 10 x 5.625in widescreen page, while the geometry table is
// authored against a 10 x 7.5in canvas; vertical coordinates and
// heights scale by 0.75 when mapped to EMUs.
const (
	emuPerInch = 914400
	pptxVScale = 5.625 / CanvasHeight

	pptxFooterY    = 6.8
	pptxCreditY    = 7.0
	pptxBannerH    = 0.15
	pptxFooterFont = 10
	pptxCreditFont = 8

	pptxStepBullet    = 0.35
	pptxStepNumbered  = 0.4
	pptxStepParagraph = 0.7

	// Black at ~75% transparency, laid over background photos so
	// text stays readable.
	pptxOverlayFill = "40000000"
)

func emuX(in float64) int64 { return int64(in * emuPerInch) }
func emuY(in float64) int64 { return int64(in * pptxVScale * emuPerInch) }

func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// exportArchive writes the whole deck as one slide archive. This is
// the only exporter that applies the full geometry table: titles,
// bodies and images land at their archetype's rectangles.
func (g *Generator) exportArchive(ctx context.Context, job ExportJob, planned []plannedSlide, assets []slideAssets, w io.Writer) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	p := ppt.New()
	p.GetDocumentProperties().Title = job.Title
	p.GetDocumentProperties().Creator = "slidegen"

	primary, secondary, _, textColor := templateColors(job)

	for i, pl := range planned {
		if err := ctx.Err(); err != nil {
			return err
		}
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}

		s := pl.slide
		geo := g.geometry.Geometry(pl.archetype)
		cleanTitle := md.Clean(s.Title)
		cleanContent := md.Clean(s.Content)

		// Background: photo with a darkening overlay when one loaded,
		// flat fill otherwise. A failed background fetch degrades to
		// the flat fill for this slide only.
		titleColor := HexToRGB(primary).ARGB(0xFF)
		bodyColor := HexToRGB(textColor).ARGB(0xFF)
		if a := assets[i].background; a != nil {
			bgShape := slide.CreateDrawingShape()
			bgShape.SetImageData(a.b, a.mimeType())
			bgShape.SetOffsetX(0).SetOffsetY(0)
			bgShape.SetWidth(emuX(CanvasWidth)).SetHeight(emuY(CanvasHeight))

			overlay := slide.CreateRichTextShape()
			overlay.SetOffsetX(0).SetOffsetY(0)
			overlay.SetWidth(emuX(CanvasWidth)).SetHeight(emuY(CanvasHeight))
			overlay.SetFill(solidFill(pptxOverlayFill))

			titleColor = "FFFFFFFF"
			bodyColor = "FFFFFFFF"
		} else {
			if s.BackgroundImage != "" {
				g.logger.Warn("using flat background", slog.Int("slide", i+1))
			}
			bg := slide.CreateRichTextShape()
			bg.SetOffsetX(0).SetOffsetY(0)
			bg.SetWidth(emuX(CanvasWidth)).SetHeight(emuY(CanvasHeight))
			bg.SetFill(solidFill(HexToRGB(backgroundColor(s, secondary)).ARGB(0xFF)))
		}

		if pl.archetype == ArchetypeTitleSlide {
			banner := slide.CreateRichTextShape()
			banner.SetOffsetX(0).SetOffsetY(emuY(geo.Title.Y - pptxBannerH))
			banner.SetWidth(emuX(CanvasWidth)).SetHeight(emuY(pptxBannerH))
			banner.SetFill(solidFill(HexToRGB(primary).ARGB(0xFF)))
		}

		titleShape := slide.CreateRichTextShape()
		titleShape.SetOffsetX(emuX(geo.Title.X)).SetOffsetY(emuY(geo.Title.Y))
		titleShape.SetWidth(emuX(geo.Title.W)).SetHeight(emuY(geo.Title.H))
		tr := titleShape.CreateTextRun(cleanTitle)
		tr.GetFont().SetSize(int(geo.Title.FontSize)).SetBold(true).SetColor(ppt.NewColor(titleColor))
		if pl.archetype == ArchetypeTitleSlide {
			alignCenter(titleShape.GetActiveParagraph())
		}

		if cleanContent != "" {
			tb := g.geometry.TextLayout(pl.archetype, len(cleanContent), s.ImageURL != "")
			g.stampBody(slide, s.Content, tb, bodyColor, pl.archetype == ArchetypeTitleSlide)
		}

		if a := assets[i].image; a != nil {
			il := g.geometry.ImageLayout(pl.archetype, s.ImageURL, len(cleanContent))
			imgShape := slide.CreateDrawingShape()
			imgShape.SetImageData(a.b, a.mimeType())
			imgShape.SetOffsetX(emuX(il.X)).SetOffsetY(emuY(il.Y))
			imgShape.SetWidth(emuX(il.W)).SetHeight(emuY(il.H))
		} else if s.ImageURL != "" {
			g.logger.Warn("rendering slide without its image", slog.Int("slide", i+1))
		}

		footer := slide.CreateRichTextShape()
		footer.SetOffsetX(emuX(0.5)).SetOffsetY(emuY(pptxFooterY))
		footer.SetWidth(emuX(CanvasWidth - 1.0)).SetHeight(emuY(0.3))
		ftr := footer.CreateTextRun(fmt.Sprintf("%s | Slide %d", job.Title, i+1))
		ftr.GetFont().SetSize(pptxFooterFont).SetColor(ppt.NewColor(HexToRGB(primary).ARGB(0xFF)))
		alignCenter(footer.GetActiveParagraph())

		if c := s.BackgroundImageCredit; c != nil {
			credit := slide.CreateRichTextShape()
			credit.SetOffsetX(emuX(0.5)).SetOffsetY(emuY(pptxCreditY))
			credit.SetWidth(emuX(CanvasWidth - 1.0)).SetHeight(emuY(0.25))
			ctr := credit.CreateTextRun("Image: " + c.Name)
			ctr.GetFont().SetSize(pptxCreditFont).SetColor(ppt.ColorWhite)
		}

		g.logger.Info("encoded page", slog.Int("slide", i+1), slog.String("layout", string(pl.archetype)))
	}

	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("failed to create archive writer: %w", err)
	}
	if err := pw.(*ppt.PPTXWriter).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}

// stampBody lays the classified content lines into the body region as
// stacked shapes. Bullets keep their glyph, numbered items keep their
// ordinals and paragraphs get extra breathing room.
func (g *Generator) stampBody(slide *ppt.Slide, content string, tb TextBox, color string, centered bool) {
	y := tb.Y
	for _, tok := range md.Classify(content) {
		var text string
		var step float64
		switch tok.Kind {
		case md.KindBullet:
			text = "• " + tok.Text
			step = pptxStepBullet
		case md.KindNumbered:
			text = fmt.Sprintf("%d. %s", tok.Number, tok.Text)
			step = pptxStepNumbered
		default:
			text = tok.Text
			step = pptxStepParagraph
		}
		shape := slide.CreateRichTextShape()
		shape.SetOffsetX(emuX(tb.X)).SetOffsetY(emuY(y))
		shape.SetWidth(emuX(tb.W)).SetHeight(emuY(step))
		run := shape.CreateTextRun(text)
		font := run.GetFont().SetSize(int(tb.FontSize)).SetColor(ppt.NewColor(color))
		if tok.Bold || tok.Kind == md.KindHeading {
			font.SetBold(true)
		}
		if centered {
			alignCenter(shape.GetActiveParagraph())
		}
		y += step
	}
}
