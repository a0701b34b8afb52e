package colorutil

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#D7D7D7", color.RGBA{R: 0xD7, G: 0xD7, B: 0xD7, A: 255}, false},
		{"F5F5F5", color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 255}, false},
		{"#000000", color.RGBA{A: 255}, false},
		{"#ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#FFF", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(Selection, 0x80)
	if c.A != 0x80 {
		t.Errorf("alpha = %d, want 0x80", c.A)
	}
	if c.R != Selection.R || c.G != Selection.G || c.B != Selection.B {
		t.Error("WithAlpha must not change the color channels")
	}
	if Selection.A != 255 {
		t.Error("WithAlpha must not mutate the original")
	}
}
