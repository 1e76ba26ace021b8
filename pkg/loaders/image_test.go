package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-cubotracer/pkg/core"
)

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	// Create a simple 2x2 test image
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	src.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	src.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	src.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	img, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 || img.MaxVal() != 255 {
		t.Fatalf("Expected 2x2 image with maxval 255, got %dx%d/%d", img.Width(), img.Height(), img.MaxVal())
	}

	expected := map[[2]int]core.Pixel{
		{0, 0}: {R: 255, G: 255, B: 255},
		{1, 0}: {R: 255},
		{0, 1}: {G: 255},
		{1, 1}: {B: 255},
	}
	for pos, want := range expected {
		got, _ := img.PixelAt(pos[0], pos[1])
		if got != want {
			t.Errorf("Pixel %v: expected %v, got %v", pos, want, got)
		}
	}
}

func TestLoadImage_NonExistent(t *testing.T) {
	if _, err := LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestDecodeImage_SniffsPPM(t *testing.T) {
	img, err := DecodeImage(bytes.NewBufferString("P3\n1 1\n15\n1 2 3\n"))
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if img.MaxVal() != 15 {
		t.Errorf("expected maxval 15 to survive, got %d", img.MaxVal())
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	img, _ := core.NewImage(3, 2, 255)
	img.Set(2, 1, core.Pixel{R: 10, G: 20, B: 30})

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	back, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if px, _ := back.PixelAt(2, 1); px != (core.Pixel{R: 10, G: 20, B: 30}) {
		t.Errorf("unexpected pixel after png round trip: %v", px)
	}
}

func TestSaveImage_Formats(t *testing.T) {
	img, _ := core.NewImage(2, 2, 255)
	img.Fill(core.Pixel{R: 1, G: 2, B: 3})
	dir := t.TempDir()

	for _, format := range []string{"png", "p3", "p6"} {
		path := filepath.Join(dir, "out."+format)
		if err := SaveImage(path, img, format); err != nil {
			t.Fatalf("SaveImage %s failed: %v", format, err)
		}
		back, err := LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage %s failed: %v", format, err)
		}
		if px, _ := back.PixelAt(1, 1); px != (core.Pixel{R: 1, G: 2, B: 3}) {
			t.Errorf("%s: unexpected pixel %v", format, px)
		}
	}

	if err := SaveImage(filepath.Join(dir, "out.bmp"), img, "bmp"); err == nil {
		t.Error("expected error for unknown format")
	}
}
