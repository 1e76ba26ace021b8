package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/log"
)

var logger = log.New("loaders")

// ErrMeshParse is wrapped by every MeshParseError
var ErrMeshParse = errors.New("loaders: malformed mesh file")

// MeshParseError reports the file and line where mesh parsing failed
type MeshParseError struct {
	File string
	Line int
	Msg  string
}

func (e *MeshParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("error: %s", e.Msg)
	}
	return fmt.Sprintf("[%s: %d] error: %s", e.File, e.Line, e.Msg)
}

func (e *MeshParseError) Unwrap() error {
	return ErrMeshParse
}

// LoadMesh reads a triangle mesh from a Wavefront OBJ file
func LoadMesh(filename string) (*geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	return ParseMesh(file, filename)
}

// ParseMesh reads the vertex ("v") and face ("f") statements of an OBJ stream.
// Faces must be triangles; "i/j/k" index groups use only the vertex index.
// Negative indices count back from the most recent vertex. Other statements
// and comment lines are ignored. name labels errors.
func ParseMesh(r io.Reader, name string) (*geometry.Mesh, error) {
	start := time.Now()
	var vertices []core.Vec3
	var triangles []*geometry.Triangle

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "v":
			v, err := parseVertex(tokens)
			if err != nil {
				return nil, &MeshParseError{File: name, Line: lineNum, Msg: err.Error()}
			}
			vertices = append(vertices, v)
		case "f":
			tri, err := parseFace(tokens, vertices)
			if err != nil {
				return nil, &MeshParseError{File: name, Line: lineNum, Msg: err.Error()}
			}
			triangles = append(triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh %s: %w", name, err)
	}

	logger.Infof("parsed mesh %s: %d vertices, %d triangles in %v", name, len(vertices), len(triangles), time.Since(start))
	return geometry.NewMesh(triangles), nil
}

func parseVertex(tokens []string) (core.Vec3, error) {
	if len(tokens) < 4 {
		return core.Vec3{}, fmt.Errorf("unsupported syntax for 'v'; expected 3 arguments; got %d", len(tokens)-1)
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("could not parse vertex coordinate %q", tokens[i+1])
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

func parseFace(tokens []string, vertices []core.Vec3) (*geometry.Triangle, error) {
	if len(tokens) != 4 {
		return nil, fmt.Errorf("unsupported syntax for 'f'; expected 3 arguments for triangular face; got %d", len(tokens)-1)
	}

	var corners [3]core.Vec3
	for arg := 0; arg < 3; arg++ {
		indexToken, _, _ := strings.Cut(tokens[arg+1], "/")
		if indexToken == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}
		offset, err := selectVertexIndex(indexToken, len(vertices))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex index for face argument %d: %s", arg, err.Error())
		}
		corners[arg] = vertices[offset]
	}
	return geometry.NewTriangle(corners[0], corners[1], corners[2]), nil
}

// selectVertexIndex converts a 1-based or negative OBJ index into a slice offset
func selectVertexIndex(indexToken string, count int) (int, error) {
	index, err := strconv.Atoi(indexToken)
	if err != nil {
		return -1, err
	}

	offset := index - 1
	if index < 0 {
		offset = count + index
	}
	if index == 0 || offset < 0 || offset >= count {
		return -1, fmt.Errorf("index %d out of bounds (%d vertices)", index, count)
	}
	return offset, nil
}
