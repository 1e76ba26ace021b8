package core

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewImage_Validation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxVal        int
		expected      error
	}{
		{"valid 8-bit", 4, 3, 255, nil},
		{"valid 16-bit", 4, 3, 65535, nil},
		{"zero width", 0, 3, 255, ErrInvalidDimensions},
		{"zero maxval", 4, 3, 0, ErrInvalidMaxVal},
		{"maxval too large", 4, 3, 65536, ErrInvalidMaxVal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImage(tt.width, tt.height, tt.maxVal)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestImage_SetAndPixelAt(t *testing.T) {
	img, err := NewImage(2, 2, 100)
	if err != nil {
		t.Fatal(err)
	}

	if err := img.Set(1, 0, Pixel{10, 20, 30}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	p, err := img.PixelAt(1, 0)
	if err != nil || p != (Pixel{10, 20, 30}) {
		t.Errorf("Expected (10,20,30), got %v (err %v)", p, err)
	}

	if err := img.Set(2, 0, Pixel{}); !errors.Is(err, ErrPixelOutOfRange) {
		t.Errorf("Expected ErrPixelOutOfRange, got %v", err)
	}
	if err := img.Set(0, 0, Pixel{101, 0, 0}); !errors.Is(err, ErrChannelOutOfRange) {
		t.Errorf("Expected ErrChannelOutOfRange, got %v", err)
	}
}

func TestImage_PostProcessing(t *testing.T) {
	img, _ := NewImage(1, 1, 255)
	_ = img.Fill(Pixel{200, 100, 64})

	img.Darken()
	if p, _ := img.PixelAt(0, 0); p != (Pixel{100, 50, 32}) {
		t.Errorf("Darken: expected (100,50,32), got %v", p)
	}

	img.Lighten()
	img.Lighten()
	if p, _ := img.PixelAt(0, 0); p != (Pixel{255, 200, 128}) {
		t.Errorf("Lighten: expected (255,200,128), got %v", p)
	}

	_ = img.Fill(Pixel{0, 255, 64})
	img.GammaCorrect()
	if p, _ := img.PixelAt(0, 0); p != (Pixel{0, 255, 127}) {
		t.Errorf("GammaCorrect: expected (0,255,127), got %v", p)
	}
}

func TestImage_AtScalesToRGBA64(t *testing.T) {
	img, _ := NewImage(1, 1, 255)
	_ = img.Set(0, 0, Pixel{255, 0, 51})

	got := img.At(0, 0).(color.RGBA64)
	expected := color.RGBA64{R: 65535, G: 0, B: 13107, A: 65535}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestImage_Rescale(t *testing.T) {
	img, err := NewImage(2, 1, 255)
	if err != nil {
		t.Fatal(err)
	}
	img.Set(0, 0, Pixel{255, 128, 0})
	img.Set(1, 0, Pixel{1, 2, 3})

	tests := []struct {
		name     string
		maxVal   int
		expected [2]Pixel
	}{
		{"same", 255, [2]Pixel{{255, 128, 0}, {1, 2, 3}}},
		{"to 16-bit", 65535, [2]Pixel{{65535, 32896, 0}, {257, 514, 771}}},
		{"to 1", 1, [2]Pixel{{1, 1, 0}, {0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := img.Rescale(tt.maxVal)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if out.MaxVal() != tt.maxVal {
				t.Errorf("Expected maxval %d, got %d", tt.maxVal, out.MaxVal())
			}
			for x, want := range tt.expected {
				got, _ := out.PixelAt(x, 0)
				if got != want {
					t.Errorf("Pixel %d: expected %v, got %v", x, want, got)
				}
			}
		})
	}

	if _, err := img.Rescale(0); !errors.Is(err, ErrInvalidMaxVal) {
		t.Errorf("Expected ErrInvalidMaxVal, got %v", err)
	}
}
