package web

import (
	"net/http"
	"strings"

	"github.com/kidandcat/issues/internal/auth"
	"github.com/kidandcat/issues/internal/store"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects()
	if err != nil {
		s.logger.Error("list projects", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, "projects.html", map[string]any{
		"User":     auth.CurrentUser(r),
		"Projects": projects,
	})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Error(w, "Title required", http.StatusBadRequest)
		return
	}

	p := &store.Project{Name: Slugify(title), Title: title}
	if err := s.store.CreateProject(p); err != nil {
		// Duplicate slugs land here via the unique index on name.
		s.logger.Error("create project", "name", p.Name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (s *Server) handleViewProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetProjectByName(r.PathValue("name"))
	if err == store.ErrNotFound {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("load project", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	if err := s.store.ResolveAssignees(p); err != nil {
		s.logger.Error("resolve assignees", "project", p.Name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, "project.html", map[string]any{
		"User":    auth.CurrentUser(r),
		"Project": p,
	})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	err := s.store.DeleteProjectByName(name)
	if err == store.ErrNotFound {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("delete project", "name", name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}
