package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kidandcat/issues/internal/auth"
	"github.com/kidandcat/issues/internal/store"
)

// loadProject fetches the project named in the path, answering 404/500
// itself. Callers get nil when the response has already been written.
func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) *store.Project {
	p, err := s.store.GetProjectByName(r.PathValue("name"))
	if err == store.ErrNotFound {
		http.Error(w, "Not found", http.StatusNotFound)
		return nil
	}
	if err != nil {
		s.logger.Error("load project", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return nil
	}
	return p
}

func issueOrdinal(r *http.Request) (int, bool) {
	n, err := strconv.Atoi(r.PathValue("id"))
	return n, err == nil
}

func (s *Server) handleCreateIssue(w http.ResponseWriter, r *http.Request) {
	p := s.loadProject(w, r)
	if p == nil {
		return
	}
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Error(w, "Title required", http.StatusBadRequest)
		return
	}

	u := auth.CurrentUser(r)
	p.Issues = append(p.Issues, store.Issue{
		Ordinal:    p.NextOrdinal(),
		Title:      title,
		Created:    time.Now(),
		Progress:   store.DefaultProgress,
		Severity:   store.DefaultSeverity,
		AssignedID: u.ID,
	})
	if err := s.store.SaveProject(p); err != nil {
		s.logger.Error("save project", "name", p.Name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/projects/"+p.Name, http.StatusSeeOther)
}

func (s *Server) handleViewIssue(w http.ResponseWriter, r *http.Request) {
	p := s.loadProject(w, r)
	if p == nil {
		return
	}
	if err := s.store.ResolveAssignees(p); err != nil {
		s.logger.Error("resolve assignees", "project", p.Name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	ordinal, ok := issueOrdinal(r)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	issue := p.FindIssue(ordinal)
	if issue == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	// Every user is offered in the assignment dropdown.
	users, err := s.store.ListUsers()
	if err != nil {
		s.logger.Error("list users", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, "issue.html", map[string]any{
		"User":    auth.CurrentUser(r),
		"Users":   users,
		"Project": p,
		"Issue":   issue,
	})
}

func (s *Server) handleUpdateIssue(w http.ResponseWriter, r *http.Request) {
	p := s.loadProject(w, r)
	if p == nil {
		return
	}
	ordinal, ok := issueOrdinal(r)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	issue := p.FindIssue(ordinal)
	if issue == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	issue.Title = r.FormValue("title")
	issue.Text = r.FormValue("text")
	issue.Progress = r.FormValue("progress")
	if sev, err := strconv.Atoi(r.FormValue("severity")); err == nil {
		issue.Severity = sev
	}

	// The assigned field carries a username on the wire. An unknown
	// username leaves the current assignee in place.
	if username := r.FormValue("assigned"); username != "" {
		assignee, err := s.store.GetUserByUsername(username)
		if err == nil {
			issue.AssignedID = assignee.ID
		} else if err != store.ErrNotFound {
			s.logger.Error("lookup assignee", "username", username, "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}

	if err := s.store.SaveProject(p); err != nil {
		s.logger.Error("save project", "name", p.Name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/projects/"+p.Name, http.StatusSeeOther)
}

func (s *Server) handleDeleteIssue(w http.ResponseWriter, r *http.Request) {
	p := s.loadProject(w, r)
	if p == nil {
		return
	}
	ordinal, ok := issueOrdinal(r)
	if !ok || !p.RemoveIssue(ordinal) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err := s.store.SaveProject(p); err != nil {
		s.logger.Error("save project", "name", p.Name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/projects/"+p.Name, http.StatusSeeOther)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	p := s.loadProject(w, r)
	if p == nil {
		return
	}
	ordinal, ok := issueOrdinal(r)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	issue := p.FindIssue(ordinal)
	if issue == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	u := auth.CurrentUser(r)
	issue.Comments = append(issue.Comments, store.Comment{
		Text:   r.FormValue("text"),
		Date:   time.Now(),
		UserID: u.ID,
	})
	if err := s.store.SaveProject(p); err != nil {
		s.logger.Error("save project", "name", p.Name, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/projects/"+p.Name+"/issues/"+r.PathValue("id"), http.StatusSeeOther)
}
