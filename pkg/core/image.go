package core

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

var (
	ErrInvalidMaxVal     = errors.New("core: image maxval must be in [1, 65535]")
	ErrInvalidDimensions = errors.New("core: image dimensions must be positive")
	ErrPixelOutOfRange   = errors.New("core: pixel out of range")
	ErrChannelOutOfRange = errors.New("core: color channel exceeds maxval")
)

// Pixel is an RGB triple stored in an Image. Channels never exceed the image maxval.
type Pixel struct {
	R, G, B uint16
}

// PixelFromColor widens an 8-bit color into a Pixel
func PixelFromColor(c Color) Pixel {
	return Pixel{R: uint16(c.R), G: uint16(c.G), B: uint16(c.B)}
}

// Image is a row-major grid of RGB pixels with a maximum channel value.
// It implements image.Image so it can be handed to any stdlib encoder.
type Image struct {
	width  int
	height int
	maxVal uint16
	pix    []Pixel
}

// NewImage creates a black image
func NewImage(width, height int, maxVal int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if maxVal < 1 || maxVal > math.MaxUint16 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxVal, maxVal)
	}
	return &Image{
		width:  width,
		height: height,
		maxVal: uint16(maxVal),
		pix:    make([]Pixel, width*height),
	}, nil
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// MaxVal returns the maximum channel value
func (img *Image) MaxVal() int { return int(img.maxVal) }

// Set replaces the pixel at (x, y)
func (img *Image) Set(x, y int, p Pixel) error {
	if !img.inside(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d image", ErrPixelOutOfRange, x, y, img.width, img.height)
	}
	if p.R > img.maxVal || p.G > img.maxVal || p.B > img.maxVal {
		return fmt.Errorf("%w: %v > %d", ErrChannelOutOfRange, p, img.maxVal)
	}
	img.pix[y*img.width+x] = p
	return nil
}

// PixelAt returns the pixel at (x, y)
func (img *Image) PixelAt(x, y int) (Pixel, error) {
	if !img.inside(x, y) {
		return Pixel{}, fmt.Errorf("%w: (%d, %d) in %dx%d image", ErrPixelOutOfRange, x, y, img.width, img.height)
	}
	return img.pix[y*img.width+x], nil
}

func (img *Image) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Fill sets every pixel to p
func (img *Image) Fill(p Pixel) error {
	if p.R > img.maxVal || p.G > img.maxVal || p.B > img.maxVal {
		return fmt.Errorf("%w: %v > %d", ErrChannelOutOfRange, p, img.maxVal)
	}
	for i := range img.pix {
		img.pix[i] = p
	}
	return nil
}

// Darken halves every channel
func (img *Image) Darken() {
	img.mapChannels(func(c uint16) uint16 { return c / 2 })
}

// Lighten doubles every channel, saturating at maxval
func (img *Image) Lighten() {
	img.mapChannels(func(c uint16) uint16 {
		return uint16(min(uint32(c)*2, uint32(img.maxVal)))
	})
}

// GammaCorrect applies gamma 2 relative to maxval: c' = maxval*sqrt(c/maxval)
func (img *Image) GammaCorrect() {
	scale := float64(img.maxVal)
	img.mapChannels(func(c uint16) uint16 {
		return uint16(scale * math.Sqrt(float64(c)/scale))
	})
}

func (img *Image) mapChannels(fn func(uint16) uint16) {
	for i, p := range img.pix {
		img.pix[i] = Pixel{R: fn(p.R), G: fn(p.G), B: fn(p.B)}
	}
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image, scaling channels from [0, maxval] to [0, 65535]
func (img *Image) At(x, y int) color.Color {
	if !img.inside(x, y) {
		return color.RGBA64{}
	}
	p := img.pix[y*img.width+x]
	scale := func(c uint16) uint16 {
		return uint16(uint32(c) * math.MaxUint16 / uint32(img.maxVal))
	}
	return color.RGBA64{R: scale(p.R), G: scale(p.G), B: scale(p.B), A: math.MaxUint16}
}

// Rescale returns a copy of the image with channels mapped to a new maxval
func (img *Image) Rescale(maxVal int) (*Image, error) {
	out, err := NewImage(img.width, img.height, maxVal)
	if err != nil {
		return nil, err
	}
	from, to := uint64(img.maxVal), uint64(maxVal)
	for i, p := range img.pix {
		scale := func(c uint16) uint16 {
			return uint16((uint64(c)*to + from/2) / from)
		}
		out.pix[i] = Pixel{R: scale(p.R), G: scale(p.G), B: scale(p.B)}
	}
	return out, nil
}
