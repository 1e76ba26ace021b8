package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-cubotracer/pkg/core"
)

func TestParseMesh_SingleTriangle(t *testing.T) {
	src := "# a triangle\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

	mesh, err := ParseMesh(strings.NewReader(src), "tri.obj")
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}
	tris := mesh.Triangles()
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(tris))
	}
	if tris[0].V1 != core.NewVec3(0, 0, 0) || tris[0].V2 != core.NewVec3(1, 0, 0) || tris[0].V3 != core.NewVec3(0, 1, 0) {
		t.Errorf("unexpected vertices %v %v %v", tris[0].V1, tris[0].V2, tris[0].V3)
	}
}

func TestParseMesh_IndexForms(t *testing.T) {
	src := strings.Join([]string{
		"o quad",
		"v 0 0 0",
		"v 1 0 0",
		"v 1 1 0",
		"v 0 1 0",
		"vn 0 0 1",
		"vt 0 0",
		"f 1/1/1 2/1/1 3/1/1",
		"f -4//1 -2//1 -1//1",
	}, "\n")

	mesh, err := ParseMesh(strings.NewReader(src), "quad.obj")
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}
	tris := mesh.Triangles()
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
	if tris[1].V1 != core.NewVec3(0, 0, 0) || tris[1].V3 != core.NewVec3(0, 1, 0) {
		t.Errorf("negative indices resolved wrong: %v %v", tris[1].V1, tris[1].V3)
	}
}

func TestParseMesh_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"quad face", "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3 4\n", 5},
		{"index out of range", "v 0 0 0\nf 1 2 3\n", 2},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", 4},
		{"bad coordinate", "v 0 x 0\n", 1},
		{"short vertex", "\nv 0 0\n", 2},
		{"missing vertex index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf /1 2 3\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMesh(strings.NewReader(tt.src), "bad.obj")
			if !errors.Is(err, ErrMeshParse) {
				t.Fatalf("expected ErrMeshParse, got %v", err)
			}
			var parseErr *MeshParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected MeshParseError, got %T", err)
			}
			if parseErr.Line != tt.line || parseErr.File != "bad.obj" {
				t.Errorf("expected bad.obj line %d, got %s line %d", tt.line, parseErr.File, parseErr.Line)
			}
			if !strings.HasPrefix(err.Error(), "[bad.obj: ") {
				t.Errorf("unexpected error format %q", err.Error())
			}
		})
	}
}

func TestLoadMesh_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadMesh(path)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if len(mesh.Triangles()) != 1 {
		t.Errorf("expected 1 triangle, got %d", len(mesh.Triangles()))
	}

	if _, err := LoadMesh(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
