package slidegen

// Slide canvas dimensions in inches. All geometry rectangles are
// expressed against this 10x7.5 canvas; encoders map them to their
// own units.
const (
	CanvasWidth  = 10.0
	CanvasHeight = 7.5
)

// Rect is a slide-relative rectangle in inches.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// TextBox is a positioned text region with its base font size in
// points.
type TextBox struct {
	Rect
	FontSize float64 `json:"font_size"`
}

// LayoutGeometry holds the regions of one archetype. Image is nil for
// the text-only archetypes.
type LayoutGeometry struct {
	Title   TextBox `json:"title"`
	Content TextBox `json:"content"`
	Image   *Rect   `json:"image,omitempty"`
}

// ImageLayout is a resolved image placement including the sizing hint
// used by the archive encoder.
type ImageLayout struct {
	Path   string  `json:"path"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Sizing Sizing  `json:"sizing"`
}

// Sizing mirrors the archive encoder's image fit hint.
type Sizing struct {
	Type string  `json:"type"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// GeometryTable maps archetypes to their regions.
type GeometryTable map[Archetype]LayoutGeometry

// DefaultGeometryTable returns the fixed layout table. Values are
// pinned; existing decks only reproduce with these rectangles.
func DefaultGeometryTable() GeometryTable {
	return GeometryTable{
		ArchetypeImageRight: {
			Title:   TextBox{Rect: Rect{X: 0.5, Y: 0.5, W: 9.0, H: 0.8}, FontSize: 32},
			Content: TextBox{Rect: Rect{X: 0.5, Y: 1.5, W: 5.5, H: 4.0}, FontSize: 18},
			Image:   &Rect{X: 6.5, Y: 1.8, W: 3.0, H: 3.6},
		},
		ArchetypeImageLeft: {
			Title:   TextBox{Rect: Rect{X: 0.5, Y: 0.5, W: 9.0, H: 0.8}, FontSize: 32},
			Content: TextBox{Rect: Rect{X: 4.0, Y: 1.5, W: 5.5, H: 4.0}, FontSize: 18},
			Image:   &Rect{X: 0.5, Y: 1.8, W: 3.0, H: 3.6},
		},
		ArchetypeImageTop: {
			Title:   TextBox{Rect: Rect{X: 0.5, Y: 0.5, W: 9.0, H: 0.8}, FontSize: 32},
			Content: TextBox{Rect: Rect{X: 0.5, Y: 4.0, W: 9.0, H: 2.5}, FontSize: 18},
			Image:   &Rect{X: 2.5, Y: 1.5, W: 5.0, H: 2.3},
		},
		ArchetypeImageBottom: {
			Title:   TextBox{Rect: Rect{X: 0.5, Y: 0.5, W: 9.0, H: 0.8}, FontSize: 32},
			Content: TextBox{Rect: Rect{X: 0.5, Y: 1.5, W: 9.0, H: 2.5}, FontSize: 18},
			Image:   &Rect{X: 2.5, Y: 4.2, W: 5.0, H: 2.3},
		},
		ArchetypeTextOnly: {
			Title:   TextBox{Rect: Rect{X: 0.5, Y: 0.5, W: 9.0, H: 0.8}, FontSize: 32},
			Content: TextBox{Rect: Rect{X: 0.5, Y: 1.8, W: 9.0, H: 4.5}, FontSize: 20},
		},
		ArchetypeBulletsOnly: {
			Title:   TextBox{Rect: Rect{X: 0.5, Y: 0.5, W: 9.0, H: 0.8}, FontSize: 32},
			Content: TextBox{Rect: Rect{X: 0.5, Y: 1.8, W: 9.0, H: 4.5}, FontSize: 20},
		},
		ArchetypeTitleSlide: {
			Title:   TextBox{Rect: Rect{X: 1.0, Y: 2.5, W: 8.0, H: 1.5}, FontSize: 44},
			Content: TextBox{Rect: Rect{X: 1.0, Y: 4.0, W: 8.0, H: 1.5}, FontSize: 24},
		},
	}
}

// fallbackImageRect is used when an archetype defines no image region
// but a slide carries an image anyway.
var fallbackImageRect = Rect{X: 6.0, Y: 2.0, W: 4.0, H: 3.0}

// GeometryProvider resolves archetypes to concrete regions and
// applies content-pressure adjustments. The table is injected so
// tests can substitute alternate geometry.
type GeometryProvider struct {
	table GeometryTable
}

// NewGeometryProvider returns a provider over the given table, or the
// default table when nil.
func NewGeometryProvider(table GeometryTable) *GeometryProvider {
	if table == nil {
		table = DefaultGeometryTable()
	}
	return &GeometryProvider{table: table}
}

// Geometry looks up an archetype's regions. Unknown names resolve to
// the TEXT_ONLY geometry rather than erroring.
func (g *GeometryProvider) Geometry(a Archetype) LayoutGeometry {
	if geo, ok := g.table[a]; ok {
		return geo
	}
	return g.table[ArchetypeTextOnly]
}

// TextLayout returns the content text box for an archetype with the
// font size degraded under content pressure: denser text gets smaller
// type, and slides that share space with an image start smaller.
func (g *GeometryProvider) TextLayout(a Archetype, contentLength int, hasImage bool) TextBox {
	box := g.Geometry(a).Content
	if hasImage {
		box.FontSize = 14
		if contentLength > 300 {
			box.FontSize = 12
		}
	} else {
		box.FontSize = 16
		if contentLength > 500 {
			box.FontSize = 14
		}
	}
	return box
}

// ImageLayout returns the image placement for an archetype. Both
// dimensions shrink by 10% when the content is long, so a dense slide
// gives the text more room. This is a heuristic scale, not a layout
// solver; no collision detection is performed.
func (g *GeometryProvider) ImageLayout(a Archetype, imageURL string, contentLength int) ImageLayout {
	r := fallbackImageRect
	if geo := g.Geometry(a); geo.Image != nil {
		r = *geo.Image
	}
	if contentLength > 500 {
		r.W *= 0.9
		r.H *= 0.9
	}
	return ImageLayout{
		Path: imageURL,
		X:    r.X,
		Y:    r.Y,
		W:    r.W,
		H:    r.H,
		Sizing: Sizing{
			Type: "contain",
			W:    r.W,
			H:    r.H,
		},
	}
}
