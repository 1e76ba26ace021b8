package cmd

import (
	"errors"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/loaders"
	"github.com/urfave/cli"
)

// Convert an image between PPM and PNG, optionally adjusting brightness.
func ConvertImage(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 2 {
		return errors.New("expected input and output file arguments")
	}
	in, out := ctx.Args().Get(0), ctx.Args().Get(1)

	img, err := loaders.LoadImage(in)
	if err != nil {
		return err
	}

	adjust(img, ctx.Bool("darken"), ctx.Bool("lighten"), ctx.Bool("gamma"))

	if err := loaders.SaveImage(out, img, ctx.String("format")); err != nil {
		return err
	}
	logger.Noticef("converted %s to %s (%s)", in, out, ctx.String("format"))
	return nil
}

// adjust applies the selected filters in a fixed order
func adjust(img *core.Image, darken, lighten, gamma bool) {
	if darken {
		img.Darken()
	}
	if lighten {
		img.Lighten()
	}
	if gamma {
		img.GammaCorrect()
	}
}
