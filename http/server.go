package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pagesift/pagesift"
)

// ShutdownTimeout is how long in-flight requests get to finish on Close.
const ShutdownTimeout = 5 * time.Second

// DefaultAnalyzeTimeout bounds the model call per request.
const DefaultAnalyzeTimeout = 60 * time.Second

// Server is the HTTP server for the analysis API. All dependencies are
// injected; construct with NewServer, assign fields, then call Open.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Bind address, e.g. ":3000".
	Addr string

	Fetcher  pagesift.Fetcher
	Content  pagesift.ContentExtractor
	Metadata pagesift.MetadataExtractor
	Analyzer pagesift.Analyzer
	Logger   *slog.Logger

	// Per-request deadlines for the two outbound calls. Zero values fall
	// back to the package defaults.
	FetchTimeout   time.Duration
	AnalyzeTimeout time.Duration

	// Now reports the current time. Overridable for tests.
	Now func() time.Time
}

// NewServer creates a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		Logger: slog.Default(),
		Now:    time.Now,
	}
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.server = &http.Server{
		Handler: s.requestLogger(s.recoverPanics(s.mux)),
	}
	return s
}

// ServeHTTP implements http.Handler with the full middleware chain,
// so the server can be exercised without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// Open begins listening on Addr. It returns immediately; the server runs
// until Close is called.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("server terminated", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// analyzeRequest is the POST /analyze request body.
type analyzeRequest struct {
	URL string `json:"url"`
}

// analyzeResponse is the successful POST /analyze response body.
type analyzeResponse struct {
	Success  bool               `json:"success"`
	Analysis *pagesift.Analysis `json:"analysis"`
}

// errorResponse is the error envelope for all failure responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// healthResponse is the GET /health response body.
type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := s.log(r)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "URL is required"})
		return
	}
	if u, err := url.Parse(req.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid URL"})
		return
	}

	fetchCtx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout())
	defer cancel()
	html, err := s.Fetcher.Fetch(fetchCtx, req.URL)
	if err != nil {
		logger.Error("fetch failed", "url", req.URL, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to analyze URL",
			Details: pagesift.ErrorMessage(err),
		})
		return
	}

	content, err := s.Content.Extract(html)
	if err != nil {
		logger.Error("content extraction failed", "url", req.URL, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to analyze URL",
			Details: pagesift.ErrorMessage(err),
		})
		return
	}
	meta, err := s.Metadata.ExtractMetadata(html)
	if err != nil {
		logger.Error("metadata extraction failed", "url", req.URL, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to analyze URL",
			Details: pagesift.ErrorMessage(err),
		})
		return
	}

	if len(content) < pagesift.MinContentLength {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Unable to extract meaningful content from the URL",
		})
		return
	}

	analyzeCtx, cancel := context.WithTimeout(r.Context(), s.analyzeTimeout())
	defer cancel()
	analysis, err := s.Analyzer.Analyze(analyzeCtx, pagesift.AnalysisRequest{
		URL:      req.URL,
		Metadata: meta,
		Content:  content,
	})
	if err != nil {
		logger.Error("analysis failed", "url", req.URL, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to analyze URL",
			Details: pagesift.ErrorMessage(err),
		})
		return
	}

	analysis.Metadata = &pagesift.AnalysisMetadata{
		URL:           req.URL,
		Title:         meta.Title,
		Description:   meta.Description,
		ContentLength: len(content),
		AnalyzedAt:    s.Now().UTC(),
	}

	s.writeJSON(w, http.StatusOK, analyzeResponse{Success: true, Analysis: analysis})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "Server is running",
		Timestamp: s.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Error("response encoding failed", "err", err)
	}
}

func (s *Server) fetchTimeout() time.Duration {
	if s.FetchTimeout > 0 {
		return s.FetchTimeout
	}
	return DefaultFetchTimeout
}

func (s *Server) analyzeTimeout() time.Duration {
	if s.AnalyzeTimeout > 0 {
		return s.AnalyzeTimeout
	}
	return DefaultAnalyzeTimeout
}

type contextKey int

const requestIDKey contextKey = iota

// RequestIDFromContext returns the id assigned to the request by the
// server middleware, or empty if there is none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// log returns the server logger annotated with the request id.
func (s *Server) log(r *http.Request) *slog.Logger {
	if id := RequestIDFromContext(r.Context()); id != "" {
		return s.Logger.With("request_id", id)
	}
	return s.Logger
}

// requestLogger assigns each request an id, stores it in the request
// context, and logs method, path and duration once the request completes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := s.Now()
		id := uuid.NewString()
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, id))
		next.ServeHTTP(w, r)
		s.Logger.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}

// recoverPanics converts a panicking handler into the generic failure
// response instead of tearing down the connection.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s.log(r).Error("panic in handler", "path", r.URL.Path, "panic", p)
				s.writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error:   "Failed to analyze URL",
					Details: "internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
