// Package gateway serves the five repository operations over HTTP: a REST
// adapter, a tool-invocation adapter (/execute) and the discovery surfaces
// (metadata, plugin manifest, OpenAPI document, SSE channel). Both adapters
// run through the same dispatch table, so equivalent calls produce identical
// payloads.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"gitgate/internal/github"
	"gitgate/internal/logging"

	"golang.org/x/sync/errgroup"
)

// defaultKeepAlive is the SSE keep-alive interval.
const defaultKeepAlive = 30 * time.Second

// Service is the operation layer the gateway dispatches to.
type Service interface {
	ListRepositories(ctx context.Context, visibility string) ([]github.RepositorySummary, error)
	GetFile(ctx context.Context, owner, repo, path, ref string) (*github.FileContent, error)
	CreateOrUpdateFile(ctx context.Context, in github.WriteFileInput) (*github.WriteResult, error)
	CreateBranch(ctx context.Context, in github.BranchInput) (*github.BranchResult, error)
	CreatePullRequest(ctx context.Context, in github.PullRequestInput) (*github.PullRequestResult, error)
}

// Config holds the gateway's serving parameters.
type Config struct {
	Addr    string
	Version string

	// KeepAlive overrides the SSE keep-alive interval. Zero means the
	// 30-second default; tests shorten it.
	KeepAlive time.Duration
}

// Server is the HTTP gateway. It holds no per-request state.
type Server struct {
	addr      string
	version   string
	svc       Service
	auth      Authenticator
	ops       map[string]operation
	keepAlive time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// New builds a Server. A nil auth falls back to NoopAuthenticator.
func New(cfg Config, svc Service, auth Authenticator) *Server {
	if auth == nil {
		auth = NoopAuthenticator{}
	}
	keepAlive := cfg.KeepAlive
	if keepAlive == 0 {
		keepAlive = defaultKeepAlive
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		addr:      cfg.Addr,
		version:   version,
		svc:       svc,
		auth:      auth,
		keepAlive: keepAlive,
		now:       time.Now,
		logger:    logging.New("gateway"),
	}
	s.ops = s.operations()
	return s
}

// Handler builds the route table. Exposed so tests can drive the gateway
// through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /metadata", s.handleMetadata)
	mux.HandleFunc("GET /.well-known/ai-plugin.json", s.handleManifest)
	mux.HandleFunc("GET /openapi.json", s.handleOpenAPI)
	mux.HandleFunc("GET /sse", s.handleSSE)

	mux.HandleFunc("POST /execute", s.protected(s.handleExecute))
	mux.HandleFunc("GET /repos", s.protected(s.handleListRepositories))
	mux.HandleFunc("GET /repos/{owner}/{repo}/contents/{path...}", s.protected(s.handleGetFile))
	mux.HandleFunc("PUT /repos/{owner}/{repo}/contents/{path...}", s.protected(s.handlePutFile))
	mux.HandleFunc("POST /repos/{owner}/{repo}/branches", s.protected(s.handleCreateBranch))
	mux.HandleFunc("POST /repos/{owner}/{repo}/pulls", s.protected(s.handleCreatePullRequest))

	return s.logRequests(mux)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("gateway listening", slog.String("addr", s.addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("gateway shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) protected(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.auth.Authenticate(r); err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
			return
		}
		h(w, r)
	}
}

// statusWriter records the status code for request logging. It forwards
// Flush so the SSE handler keeps working behind the middleware.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.status),
			slog.Duration("duration", time.Since(start)))
	})
}

type errorBody struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
