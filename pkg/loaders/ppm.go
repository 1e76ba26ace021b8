package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/df07/go-cubotracer/pkg/core"
)

// ErrPPMParse is returned for malformed PPM streams
var ErrPPMParse = errors.New("loaders: malformed ppm stream")

// PPMFormat selects the PPM encoding
type PPMFormat string

const (
	PPMPlain  PPMFormat = "P3" // ASCII samples
	PPMBinary PPMFormat = "P6" // Raw samples, 1 byte below maxval 256 and 2 bytes big-endian above
)

// ParsePPMFormat accepts "p3"/"P3" or "p6"/"P6"
func ParsePPMFormat(s string) (PPMFormat, error) {
	switch s {
	case "p3", "P3":
		return PPMPlain, nil
	case "p6", "P6":
		return PPMBinary, nil
	}
	return "", fmt.Errorf("unknown ppm format %q", s)
}

// SavePPM writes img to filename in the requested format
func SavePPM(filename string, img *core.Image, format PPMFormat) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create ppm file: %w", err)
	}

	if err := WritePPM(file, img, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WritePPM encodes img as a PPM stream, rows top to bottom. P6 puts the
// header on one line; P3 puts magic, dimensions and maxval on separate lines
// and writes one channel value per line.
func WritePPM(w io.Writer, img *core.Image, format PPMFormat) error {
	headerFormat := "%s\n%d %d\n%d\n"
	if format == PPMBinary {
		headerFormat = "%s %d %d %d\n"
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, headerFormat, format, img.Width(), img.Height(), img.MaxVal()); err != nil {
		return fmt.Errorf("failed to write ppm header: %w", err)
	}

	wide := img.MaxVal() > 255
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			px, err := img.PixelAt(x, y)
			if err != nil {
				return err
			}

			switch format {
			case PPMPlain:
				_, err = fmt.Fprintf(bw, "%d\n%d\n%d\n", px.R, px.G, px.B)
			case PPMBinary:
				err = writeBinaryPixel(bw, px, wide)
			default:
				return fmt.Errorf("unknown ppm format %q", format)
			}
			if err != nil {
				return fmt.Errorf("failed to write pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}

func writeBinaryPixel(w io.Writer, px core.Pixel, wide bool) error {
	if wide {
		return binary.Write(w, binary.BigEndian, [3]uint16{px.R, px.G, px.B})
	}
	_, err := w.Write([]byte{byte(px.R), byte(px.G), byte(px.B)})
	return err
}

// LoadPPM reads a P3 or P6 file
func LoadPPM(filename string) (*core.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open ppm file: %w", err)
	}
	defer file.Close()

	return ReadPPM(file)
}

// ReadPPM decodes a P3 or P6 stream. Header tokens may be separated by any
// whitespace and interleaved with '#' comments.
func ReadPPM(r io.Reader) (*core.Image, error) {
	br := bufio.NewReader(r)

	magic, err := readPPMToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: magic number: %v", ErrPPMParse, err)
	}
	format, err := ParsePPMFormat(magic)
	if err != nil || magic != string(format) {
		return nil, fmt.Errorf("%w: unsupported magic number %q", ErrPPMParse, magic)
	}

	var header [3]int
	for i, field := range []string{"width", "height", "maxval"} {
		token, err := readPPMToken(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPPMParse, field, err)
		}
		if header[i], err = strconv.Atoi(token); err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrPPMParse, field, token)
		}
	}

	img, err := core.NewImage(header[0], header[1], header[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPPMParse, err)
	}

	readSample := func() (uint16, error) {
		token, err := readPPMToken(br)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseUint(token, 10, 16)
		return uint16(v), err
	}
	if format == PPMBinary {
		wide := img.MaxVal() > 255
		readSample = func() (uint16, error) {
			if wide {
				var v uint16
				err := binary.Read(br, binary.BigEndian, &v)
				return v, err
			}
			b, err := br.ReadByte()
			return uint16(b), err
		}
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			var channels [3]uint16
			for c := range channels {
				if channels[c], err = readSample(); err != nil {
					return nil, fmt.Errorf("%w: pixel (%d, %d): %v", ErrPPMParse, x, y, err)
				}
			}
			if err := img.Set(x, y, core.Pixel{R: channels[0], G: channels[1], B: channels[2]}); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPPMParse, err)
			}
		}
	}

	return img, nil
}

// readPPMToken skips whitespace and comments and returns the next token.
// The single whitespace byte ending the token is consumed.
func readPPMToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			if err == io.EOF {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}

		switch {
		case b == '#' && len(token) == 0:
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case isPPMSpace(b):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func isPPMSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
