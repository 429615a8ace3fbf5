package web

import (
	"net/http"
	"strings"

	"github.com/kidandcat/issues/internal/auth"
)

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login.html", nil)
}

// handleLogin checks the submitted credentials. Failures go back to the
// login form without detail; the reason is only logged.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := auth.Authenticate(s.store, username, password)
	if err == auth.ErrIncorrectUsername || err == auth.ErrIncorrectPassword {
		s.logger.Warn("login failed", "username", username, "reason", err)
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.logger.Error("authenticate", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	token, err := s.store.CreateSession(user.ID)
	if err != nil {
		s.logger.Error("create session", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	auth.SetSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		s.store.DeleteSession(cookie.Value)
	}
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/account/login", http.StatusSeeOther)
}
