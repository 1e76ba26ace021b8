package renderer

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/df07/go-cubotracer/pkg/core"
)

// Tile represents a rectangular region of the image rendered as one unit of work
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a tile whose random stream is derived from seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid splits a width x height image into tiles of at most tileSize pixels per side
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders tiles for one camera of a world
type TileRenderer struct {
	world           *World
	camera          *Camera
	position        core.Vec3
	samplesPerPixel int
	maxBounces      int
}

// NewTileRenderer creates a tile renderer bound to a placed camera
func NewTileRenderer(world *World, camera *Camera, position core.Vec3, samplesPerPixel, maxBounces int) *TileRenderer {
	return &TileRenderer{
		world:           world,
		camera:          camera,
		position:        position,
		samplesPerPixel: samplesPerPixel,
		maxBounces:      maxBounces,
	}
}

// RenderTile samples every pixel inside the tile bounds and folds the results
// into pixelStats. Tiles never overlap so concurrent calls write disjoint cells.
// A panic while tracing is reported as ErrRenderFailed.
func (tr *TileRenderer) RenderTile(tile *Tile, pixelStats [][]PixelStats) (samples int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: tile %d %v: %v", ErrRenderFailed, tile.ID, tile.Bounds, r)
		}
	}()

	sampler := core.NewRandomSampler(tile.Random)
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			for s := 0; s < tr.samplesPerPixel; s++ {
				ray := tr.camera.PixelRay(tr.position, x, y, sampler)
				ps.AddSample(tr.world.RayColor(ray, 0, tr.maxBounces, sampler))
				samples++
			}
		}
	}

	return samples, nil
}
