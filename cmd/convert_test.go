package cmd

import (
	"testing"

	"github.com/df07/go-cubotracer/pkg/core"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name                   string
		darken, lighten, gamma bool
		expected               core.Pixel
	}{
		{"none", false, false, false, core.Pixel{R: 64, G: 200, B: 0}},
		{"darken", true, false, false, core.Pixel{R: 32, G: 100, B: 0}},
		{"lighten saturates", false, true, false, core.Pixel{R: 128, G: 255, B: 0}},
		{"darken then lighten", true, true, false, core.Pixel{R: 64, G: 200, B: 0}},
		{"gamma", false, false, true, core.Pixel{R: 127, G: 225, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _ := core.NewImage(1, 1, 255)
			img.Set(0, 0, core.Pixel{R: 64, G: 200, B: 0})

			adjust(img, tt.darken, tt.lighten, tt.gamma)

			got, _ := img.PixelAt(0, 0)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
