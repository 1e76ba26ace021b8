package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/material"
	"github.com/df07/go-cubotracer/pkg/renderer"
	"github.com/df07/go-cubotracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       string                 `json:"object,omitempty"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// extractMaterialInfo describes a material for display
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color":       hexColor(mat.Color()),
		"reflectance": mat.Reflectance(),
	}

	switch mat.(type) {
	case *material.Opaque:
		return "opaque", properties
	case *material.Diffuse:
		return "diffuse", properties
	case *material.Specular:
		return "specular", properties
	default:
		return "unknown", properties
	}
}

// extractGeometryInfo describes a geometry for display
func extractGeometryInfo(geom geometry.Geometry) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch g := geom.(type) {
	case *geometry.Sphere:
		properties["radius"] = g.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vec3Array(g.Normal(core.Vec3{}, core.Vec3{}))
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vec3Array(g.V1), vec3Array(g.V2), vec3Array(g.V3)}
		return "triangle", properties

	case *geometry.Mesh:
		properties["triangleCount"] = len(g.Triangles())
		bounds := g.Bounds()
		properties["boundingBox"] = map[string]interface{}{
			"min": [3]float64{bounds.Min.X, bounds.Min.Y, bounds.Min.Z},
			"max": [3]float64{bounds.Max.X, bounds.Max.Y, bounds.Max.Z},
		}
		properties["surfaceArea"] = g.SurfaceArea()
		return "triangle_mesh", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts the center ray of a pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	params, err := parseSceneParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	world, err := scene.Build(params.Scene, scene.Options{Width: params.Width, ScenesDir: s.scenesDir})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := world.Inspect(scene.DefaultCamera, pixelX, pixelY)
	if errors.Is(err, core.ErrPixelOutOfRange) {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	writeJSON(w, http.StatusOK, describeHit(world, result))
}

func describeHit(world *renderer.World, result renderer.InspectResult) InspectResponse {
	response := InspectResponse{
		Hit:      true,
		Object:   result.Object,
		Point:    vec3Array(result.Point),
		Normal:   vec3Array(result.Normal),
		Distance: result.Distance,
	}

	obj, err := world.Object(result.Object)
	if err != nil {
		return response
	}

	materialType, materialProps := extractMaterialInfo(obj.Material)
	geometryType, geometryProps := extractGeometryInfo(obj.Geometry)
	geometryProps["position"] = vec3Array(obj.Position)

	response.MaterialType = materialType
	response.GeometryType = geometryType
	response.Properties = map[string]interface{}{
		"material": materialProps,
		"geometry": geometryProps,
	}
	return response
}
