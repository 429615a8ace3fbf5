// Package web serves the tracker's HTML surface.
package web

import (
	"log/slog"
	"net/http"

	"github.com/kidandcat/issues/internal/auth"
	"github.com/kidandcat/issues/internal/config"
	"github.com/kidandcat/issues/internal/store"
)

type Server struct {
	cfg    config.Config
	store  *store.Store
	logger *slog.Logger
}

func New(cfg config.Config, st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, store: st, logger: logger}
}

// Handler builds the route table. Login routes are public; everything
// else sits behind the session middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
	})
	mux.HandleFunc("GET /account/login", s.handleLoginForm)
	mux.HandleFunc("POST /account/login", s.handleLogin)

	app := http.NewServeMux()
	app.HandleFunc("GET /account/logout", s.handleLogout)

	app.HandleFunc("GET /projects", s.handleListProjects)
	app.HandleFunc("POST /projects", s.require(auth.Role("admin"), s.handleCreateProject))
	app.HandleFunc("GET /projects/{name}", s.handleViewProject)
	app.HandleFunc("GET /projects/{name}/delete", s.require(auth.Role("admin"), s.handleDeleteProject))

	app.HandleFunc("POST /projects/{name}/issues", s.handleCreateIssue)
	app.HandleFunc("GET /projects/{name}/issues/{id}", s.handleViewIssue)
	app.HandleFunc("POST /projects/{name}/issues/{id}", s.handleUpdateIssue)
	app.HandleFunc("GET /projects/{name}/issues/{id}/delete", s.require(auth.Role("admin"), s.handleDeleteIssue))
	app.HandleFunc("POST /projects/{name}/issues/{id}/comment", s.handleAddComment)

	mux.Handle("/", s.withSession(app))

	return mux
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("tracker listening", "addr", s.cfg.Addr, "base_url", s.cfg.BaseURL)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
