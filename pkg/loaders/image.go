package loaders

import (
	"bufio"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"

	"github.com/df07/go-cubotracer/pkg/core"
)

// LoadImage loads a PPM, PNG or JPEG file. PPM keeps its maxval; the other
// formats are reduced to 8 bits per channel.
func LoadImage(filename string) (*core.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return DecodeImage(file)
}

// DecodeImage sniffs the stream and decodes it into a core.Image
func DecodeImage(r io.Reader) (*core.Image, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && (string(magic) == "P3" || string(magic) == "P6") {
		return ReadPPM(br)
	}

	decoded, format, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	logger.Debugf("decoded %s image %v", format, decoded.Bounds())

	bounds := decoded.Bounds()
	img, err := core.NewImage(bounds.Dx(), bounds.Dy(), 255)
	if err != nil {
		return nil, err
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := decoded.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			if err := img.Set(x, y, core.Pixel{R: uint16(r >> 8), G: uint16(g >> 8), B: uint16(b >> 8)}); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}

// WritePNG encodes img as PNG, scaling channels by its maxval
func WritePNG(w io.Writer, img *core.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SaveImage writes img to filename as "png", "p3" or "p6"
func SaveImage(filename string, img *core.Image, format string) error {
	if format == "png" {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create image file: %w", err)
		}
		if err := WritePNG(file, img); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}

	ppmFormat, err := ParsePPMFormat(format)
	if err != nil {
		return err
	}
	return SavePPM(filename, img, ppmFormat)
}
