package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/loaders"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print triangle counts, bounds and surface area of OBJ meshes.
func MeshInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing mesh file argument")
	}

	meshes := make(map[string]*geometry.Mesh, ctx.NArg())
	files := make([]string, 0, ctx.NArg())
	for _, file := range ctx.Args() {
		mesh, err := loaders.LoadMesh(file)
		if err != nil {
			return err
		}
		meshes[file] = mesh
		files = append(files, file)
	}

	logger.Noticef("mesh statistics\n%s", meshInfoTable(files, meshes))
	return nil
}

func meshInfoTable(files []string, meshes map[string]*geometry.Mesh) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"File", "Triangles", "Min", "Max", "Surface area"})

	total := 0
	for _, file := range files {
		mesh := meshes[file]
		bounds := mesh.Bounds()
		total += len(mesh.Triangles())
		table.Append([]string{
			file,
			fmt.Sprintf("%d", len(mesh.Triangles())),
			fmt.Sprintf("(%.3f, %.3f, %.3f)", bounds.Min.X, bounds.Min.Y, bounds.Min.Z),
			fmt.Sprintf("(%.3f, %.3f, %.3f)", bounds.Max.X, bounds.Max.Y, bounds.Max.Z),
			fmt.Sprintf("%.4f", mesh.SurfaceArea()),
		})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", total), "", "", ""})

	table.Render()
	return buf.String()
}
