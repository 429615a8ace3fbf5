package web

import (
	"net/http"

	"github.com/kidandcat/issues/internal/auth"
)

// withSession resolves the session cookie to a user and attaches it to
// the request context. Requests without a valid session are logged out:
// cookie cleared, redirect to the login form.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.SessionCookie)
		if err != nil {
			http.Redirect(w, r, "/account/login", http.StatusSeeOther)
			return
		}
		user, err := s.store.GetUserBySession(cookie.Value)
		if err != nil {
			auth.ClearSessionCookie(w)
			http.Redirect(w, r, "/account/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
	})
}

// require gates a handler on a role specifier. A role mismatch answers
// 403 rather than the silent no-response of the system this replaces.
func (s *Server) require(spec auth.RoleSpec, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := auth.CurrentUser(r)
		if u == nil {
			auth.ClearSessionCookie(w)
			http.Redirect(w, r, "/account/login", http.StatusSeeOther)
			return
		}
		if !spec.Allows(u.Role) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
