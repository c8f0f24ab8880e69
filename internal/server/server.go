package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonhef/city-generator/pkg/gen"
	"github.com/jonhef/city-generator/pkg/spec"
)

// Server is the local development server. It exposes the generation
// pipeline over HTTP for interactive parameter exploration; each
// request runs a full in-memory generation and returns the summary.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Handler builds the route table. Exposed separately from Start so
// tests can drive the mux without binding a socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("citygen server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>citygen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>citygen</h1>
<p>POST a city config to <code>/api/generate</code> to run the generator.</p>
</div>
</body></html>`)
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	cfg, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("loading project config: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleGenerate runs the pipeline for the posted config. An empty
// body falls back to the project's city.yaml.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, report, err := gen.Generate(cfg)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      err.Error(),
			"validation": report,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"summary":    result.Summary,
		"validation": report,
	})
}

func (s *Server) requestConfig(r *http.Request) (*spec.CityConfig, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if len(body) == 0 {
		cfg, err := spec.LoadProject(s.projectPath)
		if err != nil {
			return nil, fmt.Errorf("no config in request and no project config: %w", err)
		}
		return cfg, nil
	}

	cfg := spec.Default()
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config JSON: %w", err)
	}
	return cfg, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
