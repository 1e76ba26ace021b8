package cmd

import (
	"strings"
	"testing"

	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/loaders"
	"github.com/df07/go-cubotracer/pkg/scene"
)

func TestMeshInfoTable(t *testing.T) {
	mesh, err := loaders.ParseMesh(strings.NewReader("v 0 0 0\nv 2 0 0\nv 0 2 0\nf 1 2 3\n"), "tri.obj")
	if err != nil {
		t.Fatalf("Failed to parse mesh: %v", err)
	}

	table := meshInfoTable([]string{"tri.obj"}, map[string]*geometry.Mesh{"tri.obj": mesh})
	for _, want := range []string{"tri.obj", "(0.000, 0.000, 0.000)", "(2.000, 2.000, 0.000)", "2.0000", "TOTAL"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, table)
		}
	}
}

func TestScenesTable(t *testing.T) {
	response, err := scene.ListAllScenes(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to list scenes: %v", err)
	}

	table := scenesTable(response)
	for _, info := range scene.BuiltinScenes() {
		if !strings.Contains(table, info.ID) {
			t.Errorf("Expected table to list %q:\n%s", info.ID, table)
		}
	}
}
