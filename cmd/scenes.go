package cmd

import (
	"bytes"

	"github.com/df07/go-cubotracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and the OBJ scenes found in the scenes directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	response, err := scene.ListAllScenes(ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	logger.Noticef("available scenes\n%s", scenesTable(response))
	return nil
}

func scenesTable(response scene.ScenesResponse) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "ID", "Name", "Description"})
	for _, group := range response.Groups {
		for _, info := range group.Scenes {
			table.Append([]string{group.Name, info.ID, info.DisplayName, info.Description})
		}
	}

	table.Render()
	return buf.String()
}
