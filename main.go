package main

import (
	"fmt"
	"os"

	"github.com/df07/go-cubotracer/cmd"
	"github.com/df07/go-cubotracer/pkg/scene"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	scenesDirFlag := cli.StringFlag{
		Name:  "scenes-dir",
		Value: scene.DefaultScenesDir,
		Usage: "directory searched for obj scenes",
	}

	app := cli.NewApp()
	app.Name = "cubotracer"
	app.Usage = "render scenes of spheres, planes and triangle meshes by ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Build one of the built-in scenes (or an obj:<name> scene from the scenes
directory), trace it from the selected camera and write the averaged image.

The image is split into tiles which are traced in parallel; for a fixed seed,
tile size and worker count the output is deterministic.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "spheres",
					Usage: "scene id (see list-scenes)",
				},
				cli.StringFlag{
					Name:  "camera",
					Value: scene.DefaultCamera,
					Usage: "name of the camera to render from",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width, 0 = scene default",
				},
				cli.StringFlag{
					Name:  "mesh",
					Usage: "obj file placed in the mesh scene",
				},
				scenesDirFlag,
				cli.IntFlag{
					Name:  "bounces",
					Value: 8,
					Usage: "maximum number of bounces per ray",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers, 0 = one per cpu",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "edge length of a render tile in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base seed for the per-tile random streams",
				},
				cli.StringFlag{
					Name:  "format",
					Value: "p6",
					Usage: "output format: p6, p3 or png",
				},
				cli.IntFlag{
					Name:  "maxval",
					Usage: "rescale output to this maximum channel value, 0 = 255",
				},
				cli.BoolFlag{
					Name:  "gamma",
					Usage: "apply gamma 2 correction before writing",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.ppm",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:      "mesh-info",
			Usage:     "print statistics for wavefront obj meshes",
			ArgsUsage: "mesh1.obj mesh2.obj ...",
			Action:    cmd.MeshInfo,
		},
		{
			Name:  "convert",
			Usage: "convert between ppm and png, optionally adjusting brightness",
			Description: `
Read a PPM (P3/P6), PNG or JPEG image, apply the selected filters in the order
darken, lighten, gamma and write the result in the requested format.`,
			ArgsUsage: "in_file out_file",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "darken",
					Usage: "halve every channel",
				},
				cli.BoolFlag{
					Name:  "lighten",
					Usage: "double every channel, saturating at maxval",
				},
				cli.BoolFlag{
					Name:  "gamma",
					Usage: "apply gamma 2 correction",
				},
				cli.StringFlag{
					Name:  "format",
					Value: "png",
					Usage: "output format: p6, p3 or png",
				},
			},
			Action: cmd.ConvertImage,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available scenes",
			Flags:  []cli.Flag{scenesDirFlag},
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the http preview api",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to listen on",
				},
				scenesDirFlag,
			},
			Action: cmd.Serve,
		},
	}

	return app
}
