package cmd

import (
	"github.com/df07/go-cubotracer/web/server"
	"github.com/urfave/cli"
)

// Serve the HTTP preview API.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	return server.NewServer(ctx.Int("port"), ctx.String("scenes-dir")).Start()
}
