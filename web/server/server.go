package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-cubotracer/pkg/log"
	"github.com/df07/go-cubotracer/pkg/scene"
)

var logger = log.New("web")

// Server serves scene listings, rendered previews and pixel inspection over HTTP
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server. scenesDir is searched for OBJ scenes.
func NewServer(port int, scenesDir string) *Server {
	if scenesDir == "" {
		scenesDir = scene.DefaultScenesDir
	}
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the routed API with request logging
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return logRequests(mux)
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and discovered scenes grouped by category
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// sceneParams are the query parameters shared by render and inspect
type sceneParams struct {
	Scene string
	Width int
}

// parseSceneParams reads the scene id and image width from the query
func parseSceneParams(values url.Values) (sceneParams, error) {
	params := sceneParams{Scene: values.Get("scene")}
	if params.Scene == "" {
		params.Scene = "spheres"
	}

	var err error
	if params.Width, err = parseIntParam(values, "width", 400, 16, 2000); err != nil {
		return params, err
	}
	return params, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
