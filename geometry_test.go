package slidegen

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tenntenn/golden"
)

func TestDefaultGeometryTable(t *testing.T) {
	got, err := json.MarshalIndent(DefaultGeometryTable(), "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if os.Getenv("UPDATE_GOLDEN") != "" {
		golden.Update(t, "testdata", "geometry_table", got)
		return
	}
	if diff := golden.Diff(t, "testdata", "geometry_table", got); diff != "" {
		t.Error(diff)
	}
}

func TestGeometryUnknownArchetype(t *testing.T) {
	p := NewGeometryProvider(nil)
	got := p.Geometry(Archetype("NO_SUCH_LAYOUT"))
	want := p.Geometry(ArchetypeTextOnly)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestTextLayout(t *testing.T) {
	p := NewGeometryProvider(nil)
	tests := []struct {
		name          string
		archetype     Archetype
		contentLength int
		hasImage      bool
		wantFontSize  float64
	}{
		{"image slide", ArchetypeImageRight, 100, true, 14},
		{"dense image slide", ArchetypeImageRight, 301, true, 12},
		{"image slide at boundary", ArchetypeImageRight, 300, true, 14},
		{"text slide", ArchetypeTextOnly, 100, false, 16},
		{"dense text slide", ArchetypeTextOnly, 501, false, 14},
		{"text slide at boundary", ArchetypeTextOnly, 500, false, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.TextLayout(tt.archetype, tt.contentLength, tt.hasImage)
			if got.FontSize != tt.wantFontSize {
				t.Errorf("FontSize = %v, want %v", got.FontSize, tt.wantFontSize)
			}
			if want := p.Geometry(tt.archetype).Content.Rect; got.Rect != want {
				t.Errorf("Rect = %v, want %v", got.Rect, want)
			}
		})
	}
}

func TestImageLayout(t *testing.T) {
	p := NewGeometryProvider(nil)

	t.Run("uses archetype region", func(t *testing.T) {
		got := p.ImageLayout(ArchetypeImageRight, "u", 100)
		want := ImageLayout{
			Path: "u", X: 6.5, Y: 1.8, W: 3.0, H: 3.6,
			Sizing: Sizing{Type: "contain", W: 3.0, H: 3.6},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("shrinks for long content", func(t *testing.T) {
		got := p.ImageLayout(ArchetypeImageRight, "u", 501)
		if got.W != 3.0*0.9 || got.H != 3.6*0.9 {
			t.Errorf("W, H = %v, %v, want %v, %v", got.W, got.H, 3.0*0.9, 3.6*0.9)
		}
		if got.X != 6.5 || got.Y != 1.8 {
			t.Errorf("X, Y = %v, %v, want 6.5, 1.8", got.X, got.Y)
		}
	})

	t.Run("falls back when archetype has no image region", func(t *testing.T) {
		got := p.ImageLayout(ArchetypeTextOnly, "u", 100)
		want := ImageLayout{
			Path: "u", X: 6.0, Y: 2.0, W: 4.0, H: 3.0,
			Sizing: Sizing{Type: "contain", W: 4.0, H: 3.0},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Error(diff)
		}
	})
}
