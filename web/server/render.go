package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-cubotracer/pkg/loaders"
	"github.com/df07/go-cubotracer/pkg/renderer"
	"github.com/df07/go-cubotracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	sceneParams
	SamplesPerPixel int    // Rays averaged per pixel
	MaxBounces      int    // Recursion limit
	Seed            int64  // Base seed for tile random streams
	Format          string // "png" or "ppm"
}

// parseRenderRequest parses and validates the render query parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	common, err := parseSceneParams(values)
	if err != nil {
		return nil, err
	}

	req := &RenderRequest{sceneParams: common, Format: values.Get("format")}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", 4, 1, 1000); err != nil {
		return nil, err
	}
	if req.MaxBounces, err = parseIntParam(values, "bounces", 5, 0, 100); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(values, "seed", 42, 0, 1<<30)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "ppm":
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
	return req, nil
}

// handleRender renders a scene and returns the image body
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	world, err := scene.Build(req.Scene, scene.Options{Width: req.Width, ScenesDir: s.scenesDir})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	config := renderer.DefaultSamplingConfig()
	config.SamplesPerPixel = req.SamplesPerPixel
	config.MaxBounces = req.MaxBounces
	config.Seed = req.Seed

	img, stats, err := world.RenderWithConfig(scene.DefaultCamera, config)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = loaders.WritePPM(&buf, img, loaders.PPMBinary)
	} else {
		err = loaders.WritePNG(&buf, img)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warningf("failed to write render response: %v", err)
	}
}
