package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/loaders"
	"github.com/df07/go-cubotracer/pkg/material"
	"github.com/df07/go-cubotracer/pkg/renderer"
)

// NewMeshScene places a triangle mesh in front of the camera above a ground
// plane. The mesh comes from opts.MeshPath, or is a built-in icosahedron
// flanked by a pyramid when no path is given.
func NewMeshScene(opts Options) (*renderer.World, error) {
	world := renderer.NewWorld(skyBackground())

	camera, err := wideCamera(opts.widthOr(400))
	if err != nil {
		return nil, err
	}
	if err := world.AddCamera(DefaultCamera, camera, core.NewVec3(0, 0, -0.7)); err != nil {
		return nil, err
	}

	purple, err := material.NewDiffuse(core.NewColor(153, 50, 204), 0.5)
	if err != nil {
		return nil, fmt.Errorf("mesh scene: %w", err)
	}
	groundGray, err := material.NewDiffuse(core.NewColor(128, 128, 128), 0.3)
	if err != nil {
		return nil, fmt.Errorf("mesh scene: %w", err)
	}

	objects := []object{{"ground", geometry.NewGround(), groundGray, core.NewVec3(0, -0.4, 0)}}

	if opts.MeshPath != "" {
		mesh, err := loaders.LoadMesh(opts.MeshPath)
		if err != nil {
			return nil, err
		}
		logger.Infof("mesh scene using %s (%d triangles)", opts.MeshPath, len(mesh.Triangles()))
		objects = append(objects, object{"mesh", mesh, purple, core.NewVec3(0, -0.1, -1)})
	} else {
		gold, err := material.NewSpecular(core.NewColor(204, 153, 51), 0.4)
		if err != nil {
			return nil, fmt.Errorf("mesh scene: %w", err)
		}
		objects = append(objects,
			object{"icosahedron", createIcosahedronMesh(0.25, math.Pi/3), purple, core.NewVec3(0, -0.1, -2)},
			object{"pyramid", createPyramidMesh(0.4, 0.5, math.Pi/4), gold, core.NewVec3(0.7, -0.15, -2.4)},
		)
	}

	if err := addObjects(world, objects); err != nil {
		return nil, err
	}
	return world, nil
}

// meshFromFaces builds a mesh from a vertex list and flat triangle index triples,
// rotating every vertex by yaw radians about the Y axis
func meshFromFaces(vertices []core.Vec3, faces []int, yaw float64) *geometry.Mesh {
	rotation := mgl64.Rotate3DY(yaw)
	rotated := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		r := rotation.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
		rotated[i] = core.NewVec3(r[0], r[1], r[2])
	}

	triangles := make([]*geometry.Triangle, 0, len(faces)/3)
	for i := 0; i+2 < len(faces); i += 3 {
		triangles = append(triangles, geometry.NewTriangle(rotated[faces[i]], rotated[faces[i+1]], rotated[faces[i+2]]))
	}
	return geometry.NewMesh(triangles)
}

// createPyramidMesh creates a square-based pyramid centered on the origin
func createPyramidMesh(baseSize, height, yaw float64) *geometry.Mesh {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		core.NewVec3(-halfBase, -halfHeight, -halfBase), // 0: left-back
		core.NewVec3(+halfBase, -halfHeight, -halfBase), // 1: right-back
		core.NewVec3(+halfBase, -halfHeight, +halfBase), // 2: right-front
		core.NewVec3(-halfBase, -halfHeight, +halfBase), // 3: left-front
		core.NewVec3(0, +halfHeight, 0),                 // 4: apex
	}

	faces := []int{
		// Base (2 triangles)
		0, 2, 1, 0, 3, 2,
		// Side faces
		0, 1, 4, // back face
		1, 2, 4, // right face
		2, 3, 4, // front face
		3, 0, 4, // left face
	}

	return meshFromFaces(vertices, faces, yaw)
}

// createIcosahedronMesh creates a 20-sided polyhedron with the given circumradius
func createIcosahedronMesh(radius, yaw float64) *geometry.Mesh {
	phi := (1.0 + math.Sqrt(5)) / 2.0
	scale := radius / math.Sqrt(1+phi*phi)

	vertices := []core.Vec3{
		core.NewVec3(-1, phi, 0).Multiply(scale),  // 0
		core.NewVec3(1, phi, 0).Multiply(scale),   // 1
		core.NewVec3(-1, -phi, 0).Multiply(scale), // 2
		core.NewVec3(1, -phi, 0).Multiply(scale),  // 3
		core.NewVec3(0, -1, phi).Multiply(scale),  // 4
		core.NewVec3(0, 1, phi).Multiply(scale),   // 5
		core.NewVec3(0, -1, -phi).Multiply(scale), // 6
		core.NewVec3(0, 1, -phi).Multiply(scale),  // 7
		core.NewVec3(phi, 0, -1).Multiply(scale),  // 8
		core.NewVec3(phi, 0, 1).Multiply(scale),   // 9
		core.NewVec3(-phi, 0, -1).Multiply(scale), // 10
		core.NewVec3(-phi, 0, 1).Multiply(scale),  // 11
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return meshFromFaces(vertices, faces, yaw)
}
