package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/figma"
	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/model"
	"github.com/mj1618/uibuilder/internal/output"
)

// maxBodySize allows a MaxSize image after base64 expansion.
const maxBodySize = imageinput.MaxSize*4/3 + 1<<20

// Handler returns the REST routes with the MCP streamable endpoint mounted
// at /mcp.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/frameworks", s.handleFrameworksREST)
	mux.HandleFunc("POST /api/analyze-design", s.handleAnalyzeDesign)
	mux.HandleFunc("POST /api/generate", s.handleGenerateREST)
	mux.HandleFunc("GET /api/figma/{fileKey}", s.handleFigma)
	mux.Handle("/mcp", mcpserver.NewStreamableHTTPServer(s.mcp))
	return s.withLogging(withCORS(mux))
}

type errorBody struct {
	Error string   `json:"error"`
	Hints []string `json:"hints,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = output.WriteJSON(w, v, false)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorBody{Error: err.Error(), Hints: errors.GetAllHints(err)})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var se *figma.StatusError
	switch {
	case errors.As(err, &se):
		return se.StatusCode
	case errors.IsAny(err, errors.ErrInvalidDocument, errors.ErrUnsupportedFramework,
		errors.ErrUnsupportedFormat, errors.ErrTreeTooDeep):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrAnalysisFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Mark(errors.Wrap(err, "decode request body"), errors.ErrInvalidDocument)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFrameworksREST(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, output.Frameworks())
}

type analyzeRequest struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

func (s *Server) handleAnalyzeDesign(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Image URL is required"})
		return
	}
	resp, err := s.analyze(r.Context(), req.ImageURL, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type generateRequest struct {
	Elements json.RawMessage             `json:"elements"`
	Options  model.CodeGenerationOptions `json:"options"`
}

func (s *Server) handleGenerateREST(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	var req generateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var elements []model.DesignElement
	if len(req.Elements) > 0 && string(req.Elements) != "null" {
		var err error
		if elements, err = model.DecodeDocument(req.Elements); err != nil {
			writeError(w, err)
			return
		}
	}
	gc, err := s.gen.Generate(elements, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gc)
}

func (s *Server) handleFigma(w http.ResponseWriter, r *http.Request) {
	if s.figma == nil {
		writeError(w, errors.WithHint(
			errors.Wrap(errors.ErrNotConfigured, "figma token not configured"),
			"set FIGMA_API_KEY"))
		return
	}
	doc, err := s.figma.GetFile(r.Context(), r.PathValue("fileKey"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Figma-Token, Mcp-Session-Id")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Infow("request", "method", r.Method, "path", r.URL.Path,
			"status", rec.status, "elapsed", time.Since(start))
	})
}
