package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os/exec"
	"path"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/source"
	"github.com/ziadkadry99/folio/internal/surface"
)

// Config holds server configuration.
type Config struct {
	Port      int
	StaticDir string // served under /static/; empty disables the route
	AllowAll  bool   // allow all CORS origins (dev mode)
}

// Server is the development server. It renders every request from a fresh
// load of the content document, so edits show up on reload.
type Server struct {
	cfg         Config
	pages       *pages.Router
	layout      *site.Layout
	highlighter *render.ChromaHighlighter
	logger      *zap.Logger
	router      chi.Router
	httpServer  *http.Server
}

// New creates a server around a page router and the site layout.
func New(cfg Config, pr *pages.Router, layout *site.Layout, highlighter *render.ChromaHighlighter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:         cfg,
		pages:       pr,
		layout:      layout,
		highlighter: highlighter,
		logger:      logger,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  zap.NewStdLog(s.logger),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Get("/index.html", s.handleIndex)
	r.Get("/project.html", s.handleProject)
	r.Get("/api/pages", s.handlePages)

	for name, body := range site.StaticFiles() {
		r.Get("/"+name, serveText(mime.TypeByExtension(path.Ext(name)), body))
	}
	r.Get("/highlight.css", s.handleHighlightCSS)

	if s.cfg.StaticDir != "" {
		fs := http.StripPrefix("/"+site.StaticDirName+"/", http.FileServer(http.Dir(s.cfg.StaticDir)))
		r.Handle("/"+site.StaticDirName+"/*", fs)
	}

	r.NotFound(s.handleNotFound)
	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.layout.WriteIndex(w, ""); err != nil {
		s.logger.Error("writing index", zap.Error(err))
	}
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	id := s.pages.Resolve(pages.PageFromQuery(r.URL.Query()))

	surf := surface.NewMain()
	err := s.pages.Render(r.Context(), id, surf)
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("rendering page", zap.String("page", id), zap.Error(err))
	}

	title := id
	if e, ok := s.layout.Nav().Entry(id); ok {
		title = e.Title
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.layout.WritePage(w, title, id, "", surf); err != nil {
		s.logger.Error("writing page", zap.String("page", id), zap.Error(err))
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	surf := surface.NewMain()
	surf.Append(render.NotFound())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := s.layout.WritePage(w, "Not found", "", "", surf); err != nil {
		s.logger.Error("writing not found page", zap.Error(err))
	}
}

// pageInfo is one entry of the /api/pages response.
type pageInfo struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
	Image   string `json:"image,omitempty"`
	Group   string `json:"group,omitempty"`
	Href    string `json:"href"`
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	out := []pageInfo{}
	for _, g := range s.layout.Nav().Groups {
		for _, e := range g.Entries {
			out = append(out, pageInfo{
				ID:      e.ID,
				Title:   e.Title,
				Summary: e.Summary,
				Image:   e.Image,
				Group:   g.Name,
				Href:    e.Href,
			})
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Error("encoding pages", zap.Error(err))
	}
}

func (s *Server) handleHighlightCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if err := s.highlighter.WriteCSS(w); err != nil {
		s.logger.Error("writing highlight css", zap.Error(err))
	}
}

// StatusFor maps a render outcome to an HTTP status code.
func StatusFor(err error) int {
	var loadErr *source.LoadError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, pages.ErrPageNotFound), errors.Is(err, pages.ErrPageDataMissing):
		return http.StatusNotFound
	case errors.As(err, &loadErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func serveText(ctype, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ctype)
		w.Write([]byte(body))
	}
}

// URL returns the local address of the server.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.cfg.Port)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("folio server listening", zap.String("url", s.URL()))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// startCommand launches the browser process; tests replace it.
var startCommand = (*exec.Cmd).Start

func browserCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("cmd", "/c", "start", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// OpenBrowser opens the server URL in the default browser. A failure is only
// logged and the server keeps running.
func (s *Server) OpenBrowser() {
	cmd := browserCommand(runtime.GOOS, s.URL())
	if err := startCommand(cmd); err != nil {
		s.logger.Debug("could not open browser",
			zap.String("url", s.URL()),
			zap.Strings("command", cmd.Args),
			zap.Error(err),
		)
	}
}
