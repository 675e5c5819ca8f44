package slidegen

import "testing"

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#3b82f6", RGB{R: 59, G: 130, B: 246}},
		{"#3B82F6", RGB{R: 59, G: 130, B: 246}},
		{"#f8fafc", RGB{R: 248, G: 250, B: 252}},
		{"#FFFFFF", RGB{R: 255, G: 255, B: 255}},
		{"#000000", RGB{}},
		{"", RGB{}},
		{"3b82f6", RGB{}},
		{"#3b82f", RGB{}},
		{"#3b82f6a", RGB{}},
		{"#gggggg", RGB{}},
		{"blue", RGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := HexToRGB(tt.in)
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBARGB(t *testing.T) {
	tests := []struct {
		c     RGB
		alpha uint8
		want  string
	}{
		{RGB{R: 59, G: 130, B: 246}, 0xFF, "FF3B82F6"},
		{RGB{}, 0xFF, "FF000000"},
		{RGB{}, 0x40, "40000000"},
		{RGB{R: 255, G: 255, B: 255}, 0xFF, "FFFFFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.ARGB(tt.alpha); got != tt.want {
				t.Errorf("ARGB() = %q, want %q", got, tt.want)
			}
		})
	}
}
